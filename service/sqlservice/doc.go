// Package sqlservice implements the entity services over a SQL database.
//
// All the resource kinds are stored in a single 'entity' table. The kind specific
// fields are stored as the JSON 'attributes' column. A row is visible to the caller
// when it is public or it belongs to the caller's project. The session handle passed
// to the services must be a Querier, i.e. *sql.DB, *sql.Conn or *sql.Tx.
package sqlservice

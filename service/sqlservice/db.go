package sqlservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	// sqlite driver registered as 'sqlite'.
	_ "modernc.org/sqlite"

	"github.com/neuronlabs/emodel/config"
	"github.com/neuronlabs/emodel/entity"
	"github.com/neuronlabs/emodel/errors"
	"github.com/neuronlabs/emodel/log"
)

var logger = log.NewModuleLogger("sqlservice")

// DriverName is the name of the registered sql driver.
const DriverName = "sqlite"

// timeLayout is the fixed width creation date layout so that the dates are ordered
// as strings.
const timeLayout = "2006-01-02T15:04:05.000000Z"

const schema = `
CREATE TABLE IF NOT EXISTS entity (
	id TEXT PRIMARY KEY,
	kind TEXT NOT NULL,
	name TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	creation_date TEXT NOT NULL,
	authorized_public INTEGER NOT NULL DEFAULT 0,
	authorized_project_id TEXT,
	attributes TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS idx_entity_kind ON entity(kind, creation_date);
CREATE INDEX IF NOT EXISTS idx_entity_project ON entity(authorized_project_id);
`

// Querier is the session handle used by the services.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Execer is the session handle used to migrate and insert the records.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Open opens the sqlite database for the connection 'conn'.
func Open(conn *config.Connection) (*sql.DB, error) {
	dsn := conn.DataSource()
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(entity.ClassUnavailable, err, "opening database failed")
	}
	if dsn == ":memory:" {
		// each connection has its own in memory database.
		db.SetMaxOpenConns(1)
	}
	if conn.MaxTimeout != nil {
		db.SetConnMaxLifetime(*conn.MaxTimeout)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(entity.ClassUnavailable, err, "connecting database failed")
	}
	logger.Debugf("Opened database: %s", dsn)
	return db, nil
}

// Migrate creates the entity table if it doesn't exist.
func Migrate(ctx context.Context, db Execer) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return errors.Wrapf(errors.ClassInternal, err, "migrating entity table failed")
	}
	return nil
}

// Authorization defines who can see the inserted record.
type Authorization struct {
	Public    bool
	ProjectID string
}

// Insert inserts the 'record' with the authorization 'auth'.
// The record must have the kind and the uuid id. Zero creation date is set to the current time.
func Insert(ctx context.Context, db Execer, record *entity.Record, auth Authorization) error {
	if !record.Kind.Valid() {
		return errors.NewDetf(errors.ClassInvalidArgument, "invalid record kind: '%d'", record.Kind)
	}
	if err := checkID(record.ID); err != nil {
		return err
	}
	if record.CreationDate.IsZero() {
		record.CreationDate = time.Now()
	}
	attributes := record.Attributes
	if attributes == nil {
		attributes = map[string]interface{}{}
	}
	raw, err := json.Marshal(attributes)
	if err != nil {
		return errors.Wrapf(errors.ClassInvalidArgument, err, "marshaling %s attributes failed", record.Kind)
	}

	var projectID sql.NullString
	if auth.ProjectID != "" {
		projectID = sql.NullString{String: auth.ProjectID, Valid: true}
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO entity (id, kind, name, description, creation_date, authorized_public, authorized_project_id, attributes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		string(record.ID), record.Kind.ServiceName(), record.Name, record.Description,
		formatTime(record.CreationDate), auth.Public, projectID, string(raw),
	)
	if err != nil {
		return errors.Wrapf(errors.ClassInternal, err, "inserting %s failed", record.Kind)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

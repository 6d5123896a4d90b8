package entity

// UserContext is the caller's authorization context. The access layer forwards it unchanged,
// only the entity service implementations interpret it. It may be nil.
type UserContext interface{}

// Session is the connection handle the access layer is constructed with and forwards to
// every service call, i.e. *sql.DB for the SQL service or *http.Client for the HTTP one.
type Session interface{}

// Credentials is the user context that carries the bearer token and the project scope.
type Credentials interface {
	BearerToken() string
	Scope() (virtualLabID, projectID string)
}

// TokenContext is the user context authorized with a bearer token within the optional project scope.
type TokenContext struct {
	Token        string
	VirtualLabID string
	ProjectID    string
}

var _ Credentials = TokenContext{}

// BearerToken implements Credentials interface.
func (t TokenContext) BearerToken() string {
	return t.Token
}

// Scope implements Credentials interface.
func (t TokenContext) Scope() (virtualLabID, projectID string) {
	return t.VirtualLabID, t.ProjectID
}

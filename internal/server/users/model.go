package users

// User is a row of the users table as far as login is concerned. The
// password never leaves the remote store.
type User struct {
	ID    string
	Email string
	Name  string
}

// Users table columns.
const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldName     = "Name"
)

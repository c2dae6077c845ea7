package domain

// Role classifies operator accounts.
type Role string

const (
	RoleGatekeeper    Role = "Gatekeeper"
	RoleAdministrator Role = "Administrator"
)

// User is an operator account. The national id is the login key; the password
// hash is opaque to everything except the authentication service.
type User struct {
	ID           string
	NationalID   string
	Name         string
	Role         Role
	PasswordHash string
}

package types

// Account roles. Every account is either a regular user or an administrator;
// role-based behavior branches on this field, not on a separate type.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// validRoles is the set of recognized role values.
var validRoles = map[string]bool{
	RoleUser:  true,
	RoleAdmin: true,
}

// Account represents a user or administrator identity with login credentials.
// Accounts are never mutated or deleted after creation.
type Account struct {
	ID       int    // Caller-supplied numeric ID, unique across accounts.
	Name     string // Display name.
	Email    string // Login key; matched exactly on authentication.
	Password string // Plaintext credential, stored as given.
	Role     string // One of the Role constants.
}

// NormalizeRole returns role if it is a recognized value, RoleUser otherwise.
// Unrecognized roles are coerced rather than rejected so account creation
// never fails on a typo; the safe default carries no admin privileges.
func NormalizeRole(role string) string {
	if validRoles[role] {
		return role
	}
	return RoleUser
}

// IsAdmin reports whether the account has the administrator role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

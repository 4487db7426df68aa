package domain

import "time"

// Permission names a capability an operator account can hold.
type Permission string

const (
	// PermRunCommands allows triggering registered commands from the console.
	PermRunCommands Permission = "run_commands"
	// PermViewHistory allows browsing the action history.
	PermViewHistory Permission = "view_history"
)

// User is an operator account for the admin console.
type User struct {
	ID           string
	Username     string
	FullName     string
	PasswordHash string
	Permissions  []Permission
	Active       bool
	CreatedAt    time.Time
}

// HasPermission reports whether the user holds the named permission.
func (u *User) HasPermission(p Permission) bool {
	if u == nil {
		return false
	}
	for _, have := range u.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// DisplayName returns the username with the full name appended in
// parentheses when present, e.g. `jdoe (Jane Doe)`.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName == "" {
		return u.Username
	}
	return u.Username + " (" + u.FullName + ")"
}

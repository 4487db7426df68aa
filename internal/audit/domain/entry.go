package domain

import "time"

// Flag classifies an audit entry the way the history view renders it.
type Flag int16

const (
	// FlagAddition marks a successful administrative action.
	FlagAddition Flag = 1
	// FlagDeletion marks a failed or destructive administrative action.
	FlagDeletion Flag = 3
)

// Entry is one immutable record in the admin action log.
type Entry struct {
	ID         string
	UserID     string
	Action     string
	ObjectRepr string
	Flag       Flag
	IP         string
	CreatedAt  time.Time
}

// Succeeded reports whether the entry records a successful action.
func (e *Entry) Succeeded() bool {
	return e.Flag == FlagAddition
}

// Row is an Entry joined with the acting user's display fields for the
// history view. Username is empty when the account no longer exists.
type Row struct {
	Entry
	Username string
	FullName string
}

// UserDisplay returns the username with the full name appended in
// parentheses when present. Falls back to the recorded user id.
func (r *Row) UserDisplay() string {
	if r.Username == "" {
		return r.UserID
	}
	if r.FullName == "" {
		return r.Username
	}
	return r.Username + " (" + r.FullName + ")"
}

// Package rbac gates handlers on operator permissions.
package rbac

import (
	"errors"

	"admin-command-console/internal/user/domain"
)

var (
	// ErrUnauthenticated means no operator is bound to the request.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrPermissionDenied means the operator lacks the required permission.
	ErrPermissionDenied = errors.New("permission denied")
)

// RequirePermission ensures u is an active, authenticated operator holding p.
// Returns ErrUnauthenticated or ErrPermissionDenied; the web layer maps these
// to a login redirect and 403 respectively.
func RequirePermission(u *domain.User, p domain.Permission) error {
	if u == nil || u.ID == "" {
		return ErrUnauthenticated
	}
	if !u.Active {
		return ErrPermissionDenied
	}
	if !u.HasPermission(p) {
		return ErrPermissionDenied
	}
	return nil
}

package repository

import (
	"context"

	"admin-command-console/internal/audit/domain"
)

// Repository defines persistence for the admin action log.
type Repository interface {
	Create(ctx context.Context, e *domain.Entry) error
	// ListPage returns entries newest first, joined with user display fields.
	ListPage(ctx context.Context, limit, offset int32) ([]*domain.Row, error)
	Count(ctx context.Context) (int64, error)
}

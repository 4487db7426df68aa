package repository

import (
	"context"

	"admin-command-console/internal/user/domain"
)

// Repository defines persistence for operator accounts.
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
}

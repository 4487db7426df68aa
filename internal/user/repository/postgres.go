package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"admin-command-console/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, full_name, password_hash, permissions, active, created_at
		 FROM users WHERE id = $1`, id)
	return scanUser(row)
}

// GetByUsername returns the user for username, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, full_name, password_hash, permissions, active, created_at
		 FROM users WHERE username = $1`, username)
	return scanUser(row)
}

// Create persists the user. The user must have ID and Username set.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, full_name, password_hash, permissions, active, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Username, u.FullName, u.PasswordHash, joinPermissions(u.Permissions), u.Active, u.CreatedAt)
	return err
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var perms string
	err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.PasswordHash, &perms, &u.Active, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Permissions = splitPermissions(perms)
	return &u, nil
}

// Permissions are stored as a comma-joined TEXT column; names never contain commas.
func joinPermissions(perms []domain.Permission) string {
	parts := make([]string, 0, len(perms))
	for _, p := range perms {
		if p != "" {
			parts = append(parts, string(p))
		}
	}
	return strings.Join(parts, ",")
}

func splitPermissions(s string) []domain.Permission {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.Permission, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, domain.Permission(p))
		}
	}
	return out
}

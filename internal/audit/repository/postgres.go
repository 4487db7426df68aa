package repository

import (
	"context"
	"database/sql"

	"admin-command-console/internal/audit/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an action-log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the entry. The entry must have ID set; entries are immutable once created.
func (r *PostgresRepository) Create(ctx context.Context, e *domain.Entry) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, user_id, action, object_repr, flag, ip, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.UserID, e.Action, e.ObjectRepr, int16(e.Flag), e.IP, e.CreatedAt)
	return err
}

// ListPage returns entries newest first with the acting user's display fields.
// Entries whose account was deleted come back with empty Username/FullName.
func (r *PostgresRepository) ListPage(ctx context.Context, limit, offset int32) ([]*domain.Row, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.user_id, a.action, a.object_repr, a.flag, a.ip, a.created_at,
		        COALESCE(u.username, ''), COALESCE(u.full_name, '')
		 FROM audit_log a
		 LEFT JOIN users u ON u.id = a.user_id
		 ORDER BY a.created_at DESC, a.id DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Row
	for rows.Next() {
		var row domain.Row
		var flag int16
		if err := rows.Scan(&row.ID, &row.UserID, &row.Action, &row.ObjectRepr, &flag,
			&row.IP, &row.CreatedAt, &row.Username, &row.FullName); err != nil {
			return nil, err
		}
		row.Flag = domain.Flag(flag)
		out = append(out, &row)
	}
	return out, rows.Err()
}

// Count returns the total number of entries in the action log.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM audit_log`).Scan(&n)
	return n, err
}

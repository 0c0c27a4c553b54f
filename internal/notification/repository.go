package notification

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads and prunes the admin inbox. Writing happens inside the
// reservation cancel transaction, not here, so a refund and its
// notification commit together.
type Repository interface {
	ListLatest(ctx context.Context, limit int) ([]*Notification, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListLatest(ctx context.Context, limit int) ([]*Notification, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "message", "created_at").
		From("public.admin_notifications").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list notifications query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notifications failed: %w", err)
	}
	defer rows.Close()

	var result []*Notification
	for rows.Next() {
		var n Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification failed: %w", err)
		}
		result = append(result, &n)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.admin_notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete notification query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete notification failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

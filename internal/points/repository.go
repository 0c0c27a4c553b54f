package points

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Credit applies a signed balance change and appends the matching
	// ledger entry in one transaction. Negative amounts that would push
	// the balance below zero return ErrBalanceFloor.
	Credit(ctx context.Context, userID string, amount int, description string) error

	// History returns a user's ledger entries newest first.
	History(ctx context.Context, userID string, page, pageSize int) ([]*LedgerEntry, int, error)

	// SumByUser returns the signed sum of a user's ledger entries.
	SumByUser(ctx context.Context, userID string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Credit(ctx context.Context, userID string, amount int, description string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin credit tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// The guard only bites for negative adjustments; credits always pass.
	ct, err := tx.Exec(ctx,
		`UPDATE public.users
		 SET current_points = current_points + $1
		 WHERE id = $2 AND current_points + $1 >= 0`,
		amount, userID,
	)
	if err != nil {
		return fmt.Errorf("apply balance change failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrBalanceFloor
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO public.point_ledger (user_id, amount, description) VALUES ($1, $2, $3)`,
		userID, amount, description,
	); err != nil {
		return fmt.Errorf("append ledger entry failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit credit tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) History(ctx context.Context, userID string, page, pageSize int) ([]*LedgerEntry, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, amount, description, created_at, count(*) OVER() as total_count
		 FROM public.point_ledger
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list ledger entries failed: %w", err)
	}
	defer rows.Close()

	var result []*LedgerEntry
	var total int

	for rows.Next() {
		var e LedgerEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Description, &e.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan ledger entry failed: %w", err)
		}
		result = append(result, &e)
	}

	return result, total, nil
}

func (r *pgxRepository) SumByUser(ctx context.Context, userID string) (int, error) {
	var sum int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM public.point_ledger WHERE user_id = $1`,
		userID,
	).Scan(&sum)
	if err != nil {
		return 0, fmt.Errorf("sum ledger entries failed: %w", err)
	}
	return sum, nil
}

package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository stores per-date business-hour overrides.
type Repository interface {
	// GetByDate returns the override for a date, or pgx-style not-found
	// translated to (nil, nil): absence of an override is not an error.
	GetByDate(ctx context.Context, date time.Time) (*Override, error)
	ListRange(ctx context.Context, from, to time.Time) ([]*Override, error)
	Upsert(ctx context.Context, o *Override) error
	Delete(ctx context.Context, date time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const overrideColumns = `date, to_char(open_time, 'HH24:MI'), to_char(close_time, 'HH24:MI'), is_closed`

func scanOverride(row pgx.Row) (*Override, error) {
	var o Override
	var openStr, closeStr string
	if err := row.Scan(&o.Date, &openStr, &closeStr, &o.Window.Closed); err != nil {
		return nil, err
	}

	var err error
	if o.Window.OpenMinutes, err = ParseClock(openStr); err != nil {
		return nil, fmt.Errorf("stored open_time %q is malformed: %w", openStr, err)
	}
	if o.Window.CloseMinutes, err = ParseClock(closeStr); err != nil {
		return nil, fmt.Errorf("stored close_time %q is malformed: %w", closeStr, err)
	}
	return &o, nil
}

func (r *pgxRepository) GetByDate(ctx context.Context, date time.Time) (*Override, error) {
	query := `SELECT ` + overrideColumns + ` FROM public.schedule_overrides WHERE date = $1`

	o, err := scanOverride(r.pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule override failed: %w", err)
	}
	return o, nil
}

func (r *pgxRepository) ListRange(ctx context.Context, from, to time.Time) ([]*Override, error) {
	query := `SELECT ` + overrideColumns + `
		FROM public.schedule_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list schedule overrides failed: %w", err)
	}
	defer rows.Close()

	var result []*Override
	for rows.Next() {
		o, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule override failed: %w", err)
		}
		result = append(result, o)
	}
	return result, rows.Err()
}

func (r *pgxRepository) Upsert(ctx context.Context, o *Override) error {
	const query = `
		INSERT INTO public.schedule_overrides (date, open_time, close_time, is_closed)
		VALUES ($1, $2::time, $3::time, $4)
		ON CONFLICT (date) DO UPDATE
		SET open_time = EXCLUDED.open_time,
		    close_time = EXCLUDED.close_time,
		    is_closed = EXCLUDED.is_closed
	`

	_, err := r.pool.Exec(ctx, query,
		o.Date,
		FormatClock(o.Window.OpenMinutes),
		FormatClock(o.Window.CloseMinutes),
		o.Window.Closed,
	)
	if err != nil {
		return fmt.Errorf("upsert schedule override failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, date time.Time) error {
	const query = `DELETE FROM public.schedule_overrides WHERE date = $1`

	if _, err := r.pool.Exec(ctx, query, date); err != nil {
		return fmt.Errorf("delete schedule override failed: %w", err)
	}
	return nil
}

package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// calendarLockKey is the advisory lock key serializing all writers of the
// single shared calendar. Every transaction that checks availability before
// inserting or moving a reservation must take it first, so check-then-write
// sequences from concurrent requests cannot interleave.
const calendarLockKey int64 = 727_100_1

// Repository persists reservations and owns the atomic units of work that
// couple a reservation's lifecycle to balance and ledger writes. All other
// components are read-only observers of these tables.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	// ListActiveOnDate returns non-cancelled reservations intersecting
	// [dayStart, dayEnd), ordered by start time.
	ListActiveOnDate(ctx context.Context, dayStart, dayEnd time.Time) ([]*Reservation, error)

	// CreateWithCharge inserts a confirmed reservation, decrements the
	// user's balance by price and appends the matching ledger entry, all in
	// one transaction. The balance check and the overlap check run inside
	// the transaction; returns ErrInsufficientPoints or ErrSlotConflict.
	CreateWithCharge(ctx context.Context, r *Reservation, price int, description string) error

	// CancelWithRefund flips status to cancelled, increments the balance by
	// refund and appends the matching ledger entry in one transaction. A
	// non-empty notifyMessage is appended to the admin inbox in the same
	// transaction. Returns ErrAlreadyCancelled if status was not confirmed.
	CancelWithRefund(ctx context.Context, id, userID string, refund int, description, notifyMessage string) error

	// UpdateTimes moves a reservation after re-checking overlap against all
	// other confirmed reservations. No balance change.
	UpdateTimes(ctx context.Context, id string, start, end time.Time) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const reservationColumns = `r.id, r.user_id, COALESCE(u.display_name, u.email), r.course_id, c.title,
	r.start_time, r.end_time, r.status, r.created_at, r.updated_at`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM public.reservations r
		JOIN public.users u ON r.user_id = u.id
		JOIN public.courses c ON r.course_id = c.id
		WHERE r.id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var res Reservation
	if err := row.Scan(
		&res.ID, &res.UserID, &res.UserName, &res.CourseID, &res.CourseTitle,
		&res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.user_id", "COALESCE(u.display_name, u.email)", "r.course_id", "c.title",
		"r.start_time", "r.end_time", "r.status", "r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations r").
		Join("public.users u ON r.user_id = u.id").
		Join("public.courses c ON r.course_id = c.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"r.user_id": filter.UserID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": string(filter.Status)})
	}
	if filter.StartTimeFrom != nil {
		query = query.Where(squirrel.GtOrEq{"r.start_time": filter.StartTimeFrom})
	}
	if filter.StartTimeTo != nil {
		query = query.Where(squirrel.LtOrEq{"r.start_time": filter.StartTimeTo})
	}

	query = query.OrderBy("r.start_time ASC")

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.UserName, &res.CourseID, &res.CourseTitle,
			&res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}

	return result, total, nil
}

func (r *pgxRepository) ListActiveOnDate(ctx context.Context, dayStart, dayEnd time.Time) ([]*Reservation, error) {
	query := `SELECT ` + reservationColumns + `
		FROM public.reservations r
		JOIN public.users u ON r.user_id = u.id
		JOIN public.courses c ON r.course_id = c.id
		WHERE r.status != 'cancelled'
		  AND r.start_time < $2
		  AND r.end_time > $1
		ORDER BY r.start_time`

	rows, err := r.pool.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list reservations on date failed: %w", err)
	}
	defer rows.Close()

	var result []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.UserID, &res.UserName, &res.CourseID, &res.CourseTitle,
			&res.StartTime, &res.EndTime, &res.Status, &res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation failed: %w", err)
		}
		result = append(result, &res)
	}
	return result, rows.Err()
}

func (r *pgxRepository) CreateWithCharge(ctx context.Context, res *Reservation, price int, description string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockCalendar(ctx, tx); err != nil {
		return err
	}

	// Authoritative overlap check, atomic with the insert below thanks to
	// the advisory lock held for the rest of the transaction.
	overlap, err := hasOverlap(ctx, tx, res.StartTime, res.EndTime, "")
	if err != nil {
		return err
	}
	if overlap {
		return ErrSlotConflict
	}

	// Conditional decrement makes the balance check atomic with the write.
	ct, err := tx.Exec(ctx,
		`UPDATE public.users
		 SET current_points = current_points - $1
		 WHERE id = $2 AND current_points >= $1`,
		price, res.UserID,
	)
	if err != nil {
		return fmt.Errorf("charge points failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrInsufficientPoints
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO public.point_ledger (user_id, amount, description) VALUES ($1, $2, $3)`,
		res.UserID, -price, description,
	); err != nil {
		return fmt.Errorf("append ledger entry failed: %w", err)
	}

	res.Status = StatusConfirmed
	if err := tx.QueryRow(ctx,
		`INSERT INTO public.reservations (user_id, course_id, start_time, end_time, status)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		res.UserID, res.CourseID, res.StartTime, res.EndTime, string(res.Status),
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return ErrSlotConflict
		}
		return fmt.Errorf("insert reservation failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) CancelWithRefund(ctx context.Context, id, userID string, refund int, description, notifyMessage string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin cancel tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Guarded status flip: a concurrent cancel loses here and triggers no
	// second refund (cancelled is terminal).
	ct, err := tx.Exec(ctx,
		`UPDATE public.reservations
		 SET status = 'cancelled', updated_at = now()
		 WHERE id = $1 AND status = 'confirmed'`,
		id,
	)
	if err != nil {
		return fmt.Errorf("cancel reservation failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrAlreadyCancelled
	}

	if _, err := tx.Exec(ctx,
		`UPDATE public.users SET current_points = current_points + $1 WHERE id = $2`,
		refund, userID,
	); err != nil {
		return fmt.Errorf("refund points failed: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO public.point_ledger (user_id, amount, description) VALUES ($1, $2, $3)`,
		userID, refund, description,
	); err != nil {
		return fmt.Errorf("append ledger entry failed: %w", err)
	}

	if notifyMessage != "" {
		if _, err := tx.Exec(ctx,
			`INSERT INTO public.admin_notifications (message) VALUES ($1)`,
			notifyMessage,
		); err != nil {
			return fmt.Errorf("append notification failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit cancel tx failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) UpdateTimes(ctx context.Context, id string, start, end time.Time) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reschedule tx failed: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := lockCalendar(ctx, tx); err != nil {
		return err
	}

	overlap, err := hasOverlap(ctx, tx, start, end, id)
	if err != nil {
		return err
	}
	if overlap {
		return ErrSlotConflict
	}

	ct, err := tx.Exec(ctx,
		`UPDATE public.reservations
		 SET start_time = $1, end_time = $2, updated_at = now()
		 WHERE id = $3 AND status = 'confirmed'`,
		start, end, id,
	)
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.ExclusionViolation {
			return ErrSlotConflict
		}
		return fmt.Errorf("update reservation times failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reschedule tx failed: %w", err)
	}
	return nil
}

func lockCalendar(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, calendarLockKey); err != nil {
		return fmt.Errorf("acquire calendar lock failed: %w", err)
	}
	return nil
}

// hasOverlap runs the half-open interval test
// (start < existing.end AND end > existing.start) against confirmed
// reservations, optionally excluding one reservation during reschedules.
func hasOverlap(ctx context.Context, tx pgx.Tx, start, end time.Time, excludeID string) (bool, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	subQuery := psql.Select("1").
		From("public.reservations").
		Where(squirrel.Eq{"status": string(StatusConfirmed)}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start})

	if excludeID != "" {
		subQuery = subQuery.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := subQuery.ToSql()
	if err != nil {
		return false, fmt.Errorf("build overlap query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+sql+")", args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check overlap failed: %w", err)
	}
	return exists, nil
}

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing user data from storage.
// Balance mutations are deliberately absent: current_points is only written
// by the points and reservation repositories, paired with a ledger append.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, u *User) error
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	UpdateDisplayName(ctx context.Context, id string, displayName *string) error
	UpdateAdminNotes(ctx context.Context, id string, notes *string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new Repository implementation using pgxpool.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

const userColumns = `id, email, password_hash, display_name, current_points, admin_notes, is_admin, created_at`

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.DisplayName,
		&u.CurrentPoints,
		&u.AdminNotes,
		&u.IsAdmin,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan user failed: %w", err)
	}
	return &u, nil
}

func (r *pgxRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users WHERE email = $1`
	return scanUser(r.pool.QueryRow(ctx, query, email))
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + ` FROM public.users WHERE id = $1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *pgxRepository) Create(ctx context.Context, u *User) error {
	const query = `
		INSERT INTO public.users (email, password_hash, display_name, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, current_points, created_at
	`

	if err := r.pool.QueryRow(
		ctx,
		query,
		u.Email,
		u.PasswordHash,
		u.DisplayName,
		u.IsAdmin,
	).Scan(&u.ID, &u.CurrentPoints, &u.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrEmailAlreadyUsed
		}
		return fmt.Errorf("create user failed: %w", err)
	}

	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "email", "password_hash", "display_name", "current_points",
		"admin_notes", "is_admin", "created_at",
		"count(*) OVER() as total_count",
	).From("public.users")

	if filter.Email != "" {
		query = query.Where(squirrel.ILike{"email": "%" + filter.Email + "%"})
	}
	if filter.DisplayName != "" {
		query = query.Where(squirrel.ILike{"display_name": "%" + filter.DisplayName + "%"})
	}

	query = query.OrderBy("created_at DESC")

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
		return nil, 0, fmt.Errorf("build list users query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list users failed: %w", err)
	}
	defer rows.Close()

	var users []*User
	var total int

	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CurrentPoints,
			&u.AdminNotes, &u.IsAdmin, &u.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan user failed: %w", err)
		}
		users = append(users, &u)
	}

	return users, total, nil
}

func (r *pgxRepository) UpdateDisplayName(ctx context.Context, id string, displayName *string) error {
	const query = `UPDATE public.users SET display_name = $1 WHERE id = $2`

	ct, err := r.pool.Exec(ctx, query, displayName, id)
	if err != nil {
		return fmt.Errorf("update display name failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateAdminNotes(ctx context.Context, id string, notes *string) error {
	const query = `UPDATE public.users SET admin_notes = $1 WHERE id = $2`

	ct, err := r.pool.Exec(ctx, query, notes, id)
	if err != nil {
		return fmt.Errorf("update admin notes failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

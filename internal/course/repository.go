package course

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, c *Course) error
	GetByID(ctx context.Context, id string) (*Course, error)
	List(ctx context.Context, filter Filter) ([]*Course, int, error)
	Update(ctx context.Context, c *Course) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Course) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.courses").
		Columns("title", "description", "price_points", "duration_minutes").
		Values(c.Title, c.Description, c.PricePoints, c.DurationMinutes).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create course query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Course, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "title", "description", "price_points", "duration_minutes", "created_at").
		From("public.courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get course query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var c Course
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.PricePoints, &c.DurationMinutes, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get course failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Course, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("id", "title", "description", "price_points", "duration_minutes", "created_at",
		"count(*) OVER() as total_count").
		From("public.courses")

	if filter.Keyword != "" {
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": "%" + filter.Keyword + "%"},
			squirrel.ILike{"description": "%" + filter.Keyword + "%"},
		})
	}

	query = query.OrderBy("created_at ASC")

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
		return nil, 0, fmt.Errorf("build list courses query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list courses failed: %w", err)
	}
	defer rows.Close()

	var result []*Course
	var total int

	for rows.Next() {
		var c Course
		if err := rows.Scan(
			&c.ID, &c.Title, &c.Description, &c.PricePoints, &c.DurationMinutes, &c.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan course failed: %w", err)
		}
		result = append(result, &c)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Course) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.courses").
		Set("title", c.Title).
		Set("description", c.Description).
		Set("price_points", c.PricePoints).
		Set("duration_minutes", c.DurationMinutes).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update course query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update course failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete course query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete course failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

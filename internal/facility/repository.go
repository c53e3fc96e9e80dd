package facility

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines storage access for facilities. Every read applies the
// soft-delete filter, so deleted facilities are invisible to all callers.
type Repository interface {
	Create(ctx context.Context, f *Facility) error
	GetByID(ctx context.Context, id string) (*Facility, error)
	List(ctx context.Context) ([]*Facility, error)
	Update(ctx context.Context, f *Facility) error
	SoftDelete(ctx context.Context, id string) (*Facility, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, f *Facility) error {
	const query = `
		INSERT INTO public.facilities (name, description, price_per_hour, location)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, f.Name, f.Description, f.PricePerHour, f.Location).
		Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return fmt.Errorf("create facility failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Facility, error) {
	const query = `
		SELECT id, name, description, price_per_hour, location, is_deleted, created_at
		FROM public.facilities
		WHERE id = $1 AND is_deleted = false
	`
	row := r.pool.QueryRow(ctx, query, id)

	var f Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.PricePerHour, &f.Location, &f.IsDeleted, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get facility failed: %w", err)
	}
	return &f, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Facility, error) {
	const query = `
		SELECT id, name, description, price_per_hour, location, is_deleted, created_at
		FROM public.facilities
		WHERE is_deleted = false
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities failed: %w", err)
	}
	defer rows.Close()

	var result []*Facility
	for rows.Next() {
		var f Facility
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.PricePerHour, &f.Location, &f.IsDeleted, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan facility failed: %w", err)
		}
		result = append(result, &f)
	}

	return result, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, f *Facility) error {
	const query = `
		UPDATE public.facilities
		SET name = $1, description = $2, price_per_hour = $3, location = $4
		WHERE id = $5 AND is_deleted = false
	`
	ct, err := r.pool.Exec(ctx, query, f.Name, f.Description, f.PricePerHour, f.Location, f.ID)
	if err != nil {
		return fmt.Errorf("update facility failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) SoftDelete(ctx context.Context, id string) (*Facility, error) {
	const query = `
		UPDATE public.facilities
		SET is_deleted = true
		WHERE id = $1 AND is_deleted = false
		RETURNING id, name, description, price_per_hour, location, is_deleted, created_at
	`
	row := r.pool.QueryRow(ctx, query, id)

	var f Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Description, &f.PricePerHour, &f.Location, &f.IsDeleted, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("soft delete facility failed: %w", err)
	}
	return &f, nil
}

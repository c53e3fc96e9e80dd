package booking

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

	"github.com/playvenue/sports-booking-backend/internal/facility"
)

type Repository interface {
	// CreateExclusive inserts the booking only if no confirmed booking for
	// the same facility overlaps its [start, end) window on that date. The
	// check and the insert are atomic; concurrent attempts for the same
	// window cannot both succeed. Returns ErrSlotUnavailable on conflict.
	CreateExclusive(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id string) (*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*Booking, error)

	// ListConfirmedOn returns confirmed bookings on the given day,
	// optionally scoped to one facility (empty facilityID = all).
	ListConfirmedOn(ctx context.Context, date time.Time, facilityID string) ([]*Booking, error)

	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func (r *pgxRepository) CreateExclusive(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Serialize bookings per facility for the duration of the transaction,
	// closing the read-then-write race between the overlap check and the
	// insert below.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtextextended($1, 0))", b.FacilityID); err != nil {
		return fmt.Errorf("acquire facility lock failed: %w", err)
	}

	sub := psql.Select("1").
		From("public.bookings").
		Where(squirrel.Eq{"facility_id": b.FacilityID}).
		Where(squirrel.Eq{"booking_date": b.Date}).
		Where(squirrel.Eq{"status": StatusConfirmed}).
		Where(squirrel.Lt{"start_time": b.EndTime}).
		Where(squirrel.Gt{"end_time": b.StartTime})

	subSQL, args, err := sub.ToSql()
	if err != nil {
		return fmt.Errorf("build overlap query failed: %w", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, "SELECT EXISTS ("+subSQL+")", args...).Scan(&exists); err != nil {
		return fmt.Errorf("check overlap failed: %w", err)
	}
	if exists {
		return ErrSlotUnavailable
	}

	insert, args, err := psql.Insert("public.bookings").
		Columns("facility_id", "user_id", "booking_date", "start_time", "end_time", "payable_amount", "status").
		Values(b.FacilityID, b.UserID, b.Date, b.StartTime, b.EndTime, b.PayableAmount, b.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, insert, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateEntry.WithCause(err)
		}
		return fmt.Errorf("create booking failed: %w", err)
	}

	return tx.Commit(ctx)
}

// bookingColumns are the columns selected by every joined booking read.
func bookingColumns() []string {
	return []string{
		"b.id", "b.facility_id", "b.user_id",
		"b.booking_date", "b.start_time", "b.end_time",
		"b.payable_amount", "b.status", "b.created_at",
		"f.name", "f.description", "f.price_per_hour", "f.location", "f.is_deleted",
		"u.name", "u.email", "u.phone", "u.role", "u.address",
	}
}

func scanJoined(row pgx.Row) (*Booking, error) {
	var b Booking
	var f facility.Facility
	if err := row.Scan(
		&b.ID, &b.FacilityID, &b.UserID,
		&b.Date, &b.StartTime, &b.EndTime,
		&b.PayableAmount, &b.Status, &b.CreatedAt,
		&f.Name, &f.Description, &f.PricePerHour, &f.Location, &f.IsDeleted,
		&b.UserName, &b.UserEmail, &b.UserPhone, &b.UserRole, &b.UserAddress,
	); err != nil {
		return nil, err
	}
	f.ID = b.FacilityID
	b.Facility = &f
	return &b, nil
}

func (r *pgxRepository) joinedQuery() squirrel.SelectBuilder {
	return psql.Select(bookingColumns()...).
		From("public.bookings b").
		Join("public.facilities f ON b.facility_id = f.id").
		Join("public.users u ON b.user_id = u.id")
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	query, args, err := r.joinedQuery().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanJoined(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) ListAll(ctx context.Context) ([]*Booking, error) {
	return r.list(ctx, r.joinedQuery().OrderBy("b.start_time ASC"))
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string) ([]*Booking, error) {
	return r.list(ctx, r.joinedQuery().
		Where(squirrel.Eq{"b.user_id": userID}).
		OrderBy("b.start_time ASC"))
}

func (r *pgxRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*Booking, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) ListConfirmedOn(ctx context.Context, date time.Time, facilityID string) ([]*Booking, error) {
	builder := psql.Select("id", "facility_id", "user_id", "booking_date", "start_time", "end_time", "payable_amount", "status", "created_at").
		From("public.bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": StatusConfirmed})

	if facilityID != "" {
		builder = builder.Where(squirrel.Eq{"facility_id": facilityID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build availability query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list confirmed bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.FacilityID, &b.UserID,
			&b.Date, &b.StartTime, &b.EndTime,
			&b.PayableAmount, &b.Status, &b.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, rows.Err()
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNoData
	}
	return nil
}

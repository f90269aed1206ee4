package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bookingRepository struct{ pool *pgxpool.Pool }

func NewBookingRepository(pool *pgxpool.Pool) repository.BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, trip_id, confirmation_code, customer_name, email, tickets, total_cents, status, discount_id, created_at, updated_at`

func scanBooking(row pgx.Row) (model.Booking, error) {
	var b model.Booking
	err := row.Scan(&b.ID, &b.TripID, &b.ConfirmationCode, &b.CustomerName, &b.Email, &b.Tickets, &b.TotalCents, &b.Status, &b.DiscountID, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func (r *bookingRepository) Create(ctx context.Context, b model.Booking) (model.Booking, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Booking{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO bookings (trip_id, confirmation_code, customer_name, email, tickets, total_cents, status, discount_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+bookingColumns,
		b.TripID, b.ConfirmationCode, b.CustomerName, b.Email, b.Tickets, b.TotalCents, b.Status, b.DiscountID,
	)
	out, err := scanBooking(row)
	if err != nil {
		return model.Booking{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (model.Booking, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Booking{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanBooking(exec.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, repository.ErrNotFound
		}
		return model.Booking{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *bookingRepository) GetByConfirmation(ctx context.Context, code string) (model.Booking, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Booking{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanBooking(exec.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE confirmation_code = $1`, code,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, repository.ErrNotFound
		}
		return model.Booking{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *bookingRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Booking], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Booking]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT `+bookingColumns+`, COUNT(*) OVER() AS total
		 FROM bookings
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Booking]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Booking]{Items: make([]model.Booking, 0, limit)}
	for rows.Next() {
		var b model.Booking
		var total int
		if err := rows.Scan(&b.ID, &b.TripID, &b.ConfirmationCode, &b.CustomerName, &b.Email, &b.Tickets, &b.TotalCents, &b.Status, &b.DiscountID, &b.CreatedAt, &b.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Booking]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, b)
		res.Total = total
	}
	return res, nil
}

// TicketsBooked only counts confirmed bookings; cancelled seats go back on sale.
func (r *bookingRepository) TicketsBooked(ctx context.Context, tripID int64) (int, error) {
	if err := ensurePool(r.pool); err != nil {
		return 0, err
	}
	exec := getQ(ctx, r.pool)
	var n int
	err := exec.QueryRow(ctx,
		`SELECT COALESCE(SUM(tickets), 0) FROM bookings WHERE trip_id = $1 AND status = 'confirmed'`, tripID,
	).Scan(&n)
	if err != nil {
		return 0, repository.MapPgError(err)
	}
	return n, nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id int64) (model.Booking, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Booking{}, err
	}
	exec := getQ(ctx, r.pool)
	out, err := scanBooking(exec.QueryRow(ctx,
		`UPDATE bookings SET status = 'cancelled', updated_at = now()
		 WHERE id = $1
		 RETURNING `+bookingColumns, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Booking{}, repository.ErrNotFound
		}
		return model.Booking{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.BookingRepository = (*bookingRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type tripRepository struct{ pool *pgxpool.Pool }

func NewTripRepository(pool *pgxpool.Pool) repository.TripRepository {
	return &tripRepository{pool: pool}
}

func (r *tripRepository) Create(ctx context.Context, t model.Trip) (model.Trip, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Trip{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO trips (launch_id, boat_id, departure, price_cents, capacity, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, launch_id, boat_id, departure, price_cents, capacity, status, created_at, updated_at`,
		t.LaunchID, t.BoatID, t.Departure, t.PriceCents, t.Capacity, t.Status,
	)
	var out model.Trip
	if err := row.Scan(&out.ID, &out.LaunchID, &out.BoatID, &out.Departure, &out.PriceCents, &out.Capacity, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Trip{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *tripRepository) GetByID(ctx context.Context, id int64) (model.Trip, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Trip{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, launch_id, boat_id, departure, price_cents, capacity, status, created_at, updated_at
		 FROM trips WHERE id = $1`, id,
	)
	var out model.Trip
	if err := row.Scan(&out.ID, &out.LaunchID, &out.BoatID, &out.Departure, &out.PriceCents, &out.Capacity, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Trip{}, repository.ErrNotFound
		}
		return model.Trip{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *tripRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Trip], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Trip]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, launch_id, boat_id, departure, price_cents, capacity, status, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM trips
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Trip]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Trip]{Items: make([]model.Trip, 0, limit)}
	for rows.Next() {
		var t model.Trip
		var total int
		if err := rows.Scan(&t.ID, &t.LaunchID, &t.BoatID, &t.Departure, &t.PriceCents, &t.Capacity, &t.Status, &t.CreatedAt, &t.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Trip]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, t)
		res.Total = total
	}
	return res, nil
}

func (r *tripRepository) Update(ctx context.Context, t model.Trip) (model.Trip, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Trip{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE trips SET launch_id = $2, boat_id = $3, departure = $4, price_cents = $5, capacity = $6, status = $7, updated_at = now()
		 WHERE id = $1
		 RETURNING id, launch_id, boat_id, departure, price_cents, capacity, status, created_at, updated_at`,
		t.ID, t.LaunchID, t.BoatID, t.Departure, t.PriceCents, t.Capacity, t.Status,
	)
	var out model.Trip
	if err := row.Scan(&out.ID, &out.LaunchID, &out.BoatID, &out.Departure, &out.PriceCents, &out.Capacity, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Trip{}, repository.ErrNotFound
		}
		return model.Trip{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *tripRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.TripRepository = (*tripRepository)(nil)

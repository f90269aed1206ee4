package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type launchRepository struct{ pool *pgxpool.Pool }

func NewLaunchRepository(pool *pgxpool.Pool) repository.LaunchRepository {
	return &launchRepository{pool: pool}
}

func (r *launchRepository) Create(ctx context.Context, l model.Launch) (model.Launch, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Launch{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO launches (name, vehicle, pad, window_at, status) VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, vehicle, pad, window_at, status, created_at, updated_at`,
		l.Name, l.Vehicle, l.Pad, l.Window, l.Status,
	)
	var out model.Launch
	if err := row.Scan(&out.ID, &out.Name, &out.Vehicle, &out.Pad, &out.Window, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Launch{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *launchRepository) GetByID(ctx context.Context, id int64) (model.Launch, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Launch{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, vehicle, pad, window_at, status, created_at, updated_at FROM launches WHERE id = $1`, id,
	)
	var out model.Launch
	if err := row.Scan(&out.ID, &out.Name, &out.Vehicle, &out.Pad, &out.Window, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Launch{}, repository.ErrNotFound
		}
		return model.Launch{}, repository.MapPgError(err)
	}
	return out, nil
}

// List returns launches in stable id order. Any requested sort is applied
// client-side by the list-view layer over the fetched page.
func (r *launchRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Launch], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Launch]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, vehicle, pad, window_at, status, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM launches
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Launch]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Launch]{Items: make([]model.Launch, 0, limit)}
	for rows.Next() {
		var l model.Launch
		var total int
		if err := rows.Scan(&l.ID, &l.Name, &l.Vehicle, &l.Pad, &l.Window, &l.Status, &l.CreatedAt, &l.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Launch]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, l)
		res.Total = total
	}
	return res, nil
}

func (r *launchRepository) Update(ctx context.Context, l model.Launch) (model.Launch, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Launch{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE launches SET name = $2, vehicle = $3, pad = $4, window_at = $5, status = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, vehicle, pad, window_at, status, created_at, updated_at`,
		l.ID, l.Name, l.Vehicle, l.Pad, l.Window, l.Status,
	)
	var out model.Launch
	if err := row.Scan(&out.ID, &out.Name, &out.Vehicle, &out.Pad, &out.Window, &out.Status, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Launch{}, repository.ErrNotFound
		}
		return model.Launch{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *launchRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM launches WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.LaunchRepository = (*launchRepository)(nil)

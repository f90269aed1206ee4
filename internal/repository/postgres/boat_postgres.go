package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type boatRepository struct{ pool *pgxpool.Pool }

func NewBoatRepository(pool *pgxpool.Pool) repository.BoatRepository {
	return &boatRepository{pool: pool}
}

func (r *boatRepository) Create(ctx context.Context, b model.Boat) (model.Boat, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Boat{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO boats (name, capacity) VALUES ($1, $2)
		 RETURNING id, name, capacity, created_at, updated_at`,
		b.Name, b.Capacity,
	)
	var out model.Boat
	if err := row.Scan(&out.ID, &out.Name, &out.Capacity, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Boat{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *boatRepository) GetByID(ctx context.Context, id int64) (model.Boat, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Boat{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, capacity, created_at, updated_at FROM boats WHERE id = $1`, id,
	)
	var out model.Boat
	if err := row.Scan(&out.ID, &out.Name, &out.Capacity, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Boat{}, repository.ErrNotFound
		}
		return model.Boat{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *boatRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Boat], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Boat]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, capacity, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM boats
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Boat]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Boat]{Items: make([]model.Boat, 0, limit)}
	for rows.Next() {
		var b model.Boat
		var total int
		if err := rows.Scan(&b.ID, &b.Name, &b.Capacity, &b.CreatedAt, &b.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Boat]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, b)
		res.Total = total
	}
	return res, nil
}

func (r *boatRepository) Update(ctx context.Context, b model.Boat) (model.Boat, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Boat{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE boats SET name = $2, capacity = $3, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, capacity, created_at, updated_at`,
		b.ID, b.Name, b.Capacity,
	)
	var out model.Boat
	if err := row.Scan(&out.ID, &out.Name, &out.Capacity, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Boat{}, repository.ErrNotFound
		}
		return model.Boat{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *boatRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM boats WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BoatRepository = (*boatRepository)(nil)

package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type merchandiseRepository struct{ pool *pgxpool.Pool }

func NewMerchandiseRepository(pool *pgxpool.Pool) repository.MerchandiseRepository {
	return &merchandiseRepository{pool: pool}
}

func (r *merchandiseRepository) Create(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.MerchandiseItem{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO merchandise (name, sku, price_cents, stock) VALUES ($1, $2, $3, $4)
		 RETURNING id, name, sku, price_cents, stock, created_at, updated_at`,
		m.Name, m.SKU, m.PriceCents, m.Stock,
	)
	var out model.MerchandiseItem
	if err := row.Scan(&out.ID, &out.Name, &out.SKU, &out.PriceCents, &out.Stock, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.MerchandiseItem{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *merchandiseRepository) GetByID(ctx context.Context, id int64) (model.MerchandiseItem, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.MerchandiseItem{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, sku, price_cents, stock, created_at, updated_at FROM merchandise WHERE id = $1`, id,
	)
	var out model.MerchandiseItem
	if err := row.Scan(&out.ID, &out.Name, &out.SKU, &out.PriceCents, &out.Stock, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MerchandiseItem{}, repository.ErrNotFound
		}
		return model.MerchandiseItem{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *merchandiseRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.MerchandiseItem], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.MerchandiseItem]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, sku, price_cents, stock, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM merchandise
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.MerchandiseItem]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.MerchandiseItem]{Items: make([]model.MerchandiseItem, 0, limit)}
	for rows.Next() {
		var m model.MerchandiseItem
		var total int
		if err := rows.Scan(&m.ID, &m.Name, &m.SKU, &m.PriceCents, &m.Stock, &m.CreatedAt, &m.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.MerchandiseItem]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, nil
}

func (r *merchandiseRepository) Update(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.MerchandiseItem{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE merchandise SET name = $2, sku = $3, price_cents = $4, stock = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, sku, price_cents, stock, created_at, updated_at`,
		m.ID, m.Name, m.SKU, m.PriceCents, m.Stock,
	)
	var out model.MerchandiseItem
	if err := row.Scan(&out.ID, &out.Name, &out.SKU, &out.PriceCents, &out.Stock, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.MerchandiseItem{}, repository.ErrNotFound
		}
		return model.MerchandiseItem{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *merchandiseRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM merchandise WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MerchandiseRepository = (*merchandiseRepository)(nil)

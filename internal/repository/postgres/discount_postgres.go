package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type discountRepository struct{ pool *pgxpool.Pool }

func NewDiscountRepository(pool *pgxpool.Pool) repository.DiscountRepository {
	return &discountRepository{pool: pool}
}

func (r *discountRepository) Create(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.DiscountCode{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO discount_codes (code, percent_off, active, expires_at) VALUES ($1, $2, $3, $4)
		 RETURNING id, code, percent_off, active, expires_at, created_at, updated_at`,
		d.Code, d.PercentOff, d.Active, d.ExpiresAt,
	)
	var out model.DiscountCode
	if err := row.Scan(&out.ID, &out.Code, &out.PercentOff, &out.Active, &out.ExpiresAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.DiscountCode{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *discountRepository) GetByID(ctx context.Context, id int64) (model.DiscountCode, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.DiscountCode{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, code, percent_off, active, expires_at, created_at, updated_at FROM discount_codes WHERE id = $1`, id,
	)
	var out model.DiscountCode
	if err := row.Scan(&out.ID, &out.Code, &out.PercentOff, &out.Active, &out.ExpiresAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DiscountCode{}, repository.ErrNotFound
		}
		return model.DiscountCode{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *discountRepository) GetByCode(ctx context.Context, code string) (model.DiscountCode, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.DiscountCode{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, code, percent_off, active, expires_at, created_at, updated_at FROM discount_codes WHERE code = $1`, code,
	)
	var out model.DiscountCode
	if err := row.Scan(&out.ID, &out.Code, &out.PercentOff, &out.Active, &out.ExpiresAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DiscountCode{}, repository.ErrNotFound
		}
		return model.DiscountCode{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *discountRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.DiscountCode], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.DiscountCode]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, code, percent_off, active, expires_at, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM discount_codes
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.DiscountCode]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.DiscountCode]{Items: make([]model.DiscountCode, 0, limit)}
	for rows.Next() {
		var d model.DiscountCode
		var total int
		if err := rows.Scan(&d.ID, &d.Code, &d.PercentOff, &d.Active, &d.ExpiresAt, &d.CreatedAt, &d.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.DiscountCode]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, d)
		res.Total = total
	}
	return res, nil
}

func (r *discountRepository) Update(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.DiscountCode{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE discount_codes SET code = $2, percent_off = $3, active = $4, expires_at = $5, updated_at = now()
		 WHERE id = $1
		 RETURNING id, code, percent_off, active, expires_at, created_at, updated_at`,
		d.ID, d.Code, d.PercentOff, d.Active, d.ExpiresAt,
	)
	var out model.DiscountCode
	if err := row.Scan(&out.ID, &out.Code, &out.PercentOff, &out.Active, &out.ExpiresAt, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DiscountCode{}, repository.ErrNotFound
		}
		return model.DiscountCode{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *discountRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM discount_codes WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.DiscountRepository = (*discountRepository)(nil)

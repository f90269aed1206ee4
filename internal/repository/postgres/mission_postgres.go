package postgres

import (
	"context"
	"errors"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type missionRepository struct{ pool *pgxpool.Pool }

func NewMissionRepository(pool *pgxpool.Pool) repository.MissionRepository {
	return &missionRepository{pool: pool}
}

func (r *missionRepository) Create(ctx context.Context, m model.Mission) (model.Mission, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Mission{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`INSERT INTO missions (name, agency, description) VALUES ($1, $2, $3)
		 RETURNING id, name, agency, description, created_at, updated_at`,
		m.Name, m.Agency, m.Description,
	)
	var out model.Mission
	if err := row.Scan(&out.ID, &out.Name, &out.Agency, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return model.Mission{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *missionRepository) GetByID(ctx context.Context, id int64) (model.Mission, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Mission{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`SELECT id, name, agency, description, created_at, updated_at FROM missions WHERE id = $1`, id,
	)
	var out model.Mission
	if err := row.Scan(&out.ID, &out.Name, &out.Agency, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Mission{}, repository.ErrNotFound
		}
		return model.Mission{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *missionRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Mission], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Mission]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	exec := getQ(ctx, r.pool)
	rows, err := exec.Query(ctx,
		`SELECT id, name, agency, description, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM missions
		 ORDER BY id
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Mission]{}, repository.MapPgError(err)
	}
	defer rows.Close()
	res := repository.PageResult[model.Mission]{Items: make([]model.Mission, 0, limit)}
	for rows.Next() {
		var m model.Mission
		var total int
		if err := rows.Scan(&m.ID, &m.Name, &m.Agency, &m.Description, &m.CreatedAt, &m.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Mission]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, m)
		res.Total = total
	}
	return res, nil
}

func (r *missionRepository) Update(ctx context.Context, m model.Mission) (model.Mission, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Mission{}, err
	}
	exec := getQ(ctx, r.pool)
	row := exec.QueryRow(ctx,
		`UPDATE missions SET name = $2, agency = $3, description = $4, updated_at = now()
		 WHERE id = $1
		 RETURNING id, name, agency, description, created_at, updated_at`,
		m.ID, m.Name, m.Agency, m.Description,
	)
	var out model.Mission
	if err := row.Scan(&out.ID, &out.Name, &out.Agency, &out.Description, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Mission{}, repository.ErrNotFound
		}
		return model.Mission{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *missionRepository) Delete(ctx context.Context, id int64) error {
	if err := ensurePool(r.pool); err != nil {
		return err
	}
	exec := getQ(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM missions WHERE id = $1`, id)
	if err != nil {
		return repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.MissionRepository = (*missionRepository)(nil)

package service

import (
	"context"
	"strings"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/rs/zerolog"
)

type merchandiseService struct {
	repo repository.MerchandiseRepository
	inv  *listview.Invalidator
	log  zerolog.Logger
}

func NewMerchandiseService(repo repository.MerchandiseRepository, inv *listview.Invalidator, logger zerolog.Logger) MerchandiseService {
	l := logger.With().Str("module", "service").Str("component", "merchandise").Logger()
	return &merchandiseService{repo: repo, inv: inv, log: l}
}

func (s *merchandiseService) CreateItem(ctx context.Context, name, sku string, priceCents int64, stock int) (model.MerchandiseItem, error) {
	var ferrs []FieldError
	name = validName(name, 2, 100, "name", &ferrs)
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		ferrs = append(ferrs, FieldError{Field: "sku", Message: "must not be empty"})
	}
	if priceCents < 0 {
		ferrs = append(ferrs, FieldError{Field: "price_cents", Message: "must be >= 0"})
	}
	if stock < 0 {
		ferrs = append(ferrs, FieldError{Field: "stock", Message: "must be >= 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("merchandise validation failed")
		return model.MerchandiseItem{}, err
	}

	out, err := s.repo.Create(ctx, model.MerchandiseItem{Name: name, SKU: sku, PriceCents: priceCents, Stock: stock})
	if err != nil {
		s.log.Error().Err(err).Str("sku", sku).Msg("create merchandise item failed")
		return model.MerchandiseItem{}, err
	}
	invalidate(s.inv, model.EntityMerchandise)
	return out, nil
}

func (s *merchandiseService) GetItem(ctx context.Context, id int64) (model.MerchandiseItem, error) {
	if id <= 0 {
		return model.MerchandiseItem{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *merchandiseService) ListItems(ctx context.Context, page repository.Page) (repository.PageResult[model.MerchandiseItem], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list merchandise failed")
		return repository.PageResult[model.MerchandiseItem]{}, err
	}
	return res, nil
}

func (s *merchandiseService) UpdateItem(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error) {
	var ferrs []FieldError
	if m.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	m.Name = validName(m.Name, 2, 100, "name", &ferrs)
	if m.PriceCents < 0 {
		ferrs = append(ferrs, FieldError{Field: "price_cents", Message: "must be >= 0"})
	}
	if m.Stock < 0 {
		ferrs = append(ferrs, FieldError{Field: "stock", Message: "must be >= 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.MerchandiseItem{}, err
	}

	out, err := s.repo.Update(ctx, m)
	if err != nil {
		s.log.Error().Err(err).Int64("item_id", m.ID).Msg("update merchandise item failed")
		return model.MerchandiseItem{}, err
	}
	invalidate(s.inv, model.EntityMerchandise)
	return out, nil
}

func (s *merchandiseService) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityMerchandise)
	return nil
}

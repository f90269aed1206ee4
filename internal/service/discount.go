package service

import (
	"context"
	"strings"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/rs/zerolog"
)

type discountService struct {
	repo repository.DiscountRepository
	inv  *listview.Invalidator
	log  zerolog.Logger
}

func NewDiscountService(repo repository.DiscountRepository, inv *listview.Invalidator, logger zerolog.Logger) DiscountService {
	l := logger.With().Str("module", "service").Str("component", "discount").Logger()
	return &discountService{repo: repo, inv: inv, log: l}
}

func validateDiscount(code string, percentOff int) (string, []FieldError) {
	var ferrs []FieldError
	code = strings.ToUpper(strings.TrimSpace(code))
	if ln := len(code); ln < 3 || ln > 32 {
		ferrs = append(ferrs, FieldError{Field: "code", Message: "length must be between 3 and 32"})
	}
	if percentOff < 1 || percentOff > 100 {
		ferrs = append(ferrs, FieldError{Field: "percent_off", Message: "must be between 1 and 100"})
	}
	return code, ferrs
}

func (s *discountService) CreateDiscount(ctx context.Context, code string, percentOff int, active bool, expiresAt *time.Time) (model.DiscountCode, error) {
	code, ferrs := validateDiscount(code, percentOff)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("discount validation failed")
		return model.DiscountCode{}, err
	}

	out, err := s.repo.Create(ctx, model.DiscountCode{Code: code, PercentOff: percentOff, Active: active, ExpiresAt: expiresAt})
	if err != nil {
		s.log.Error().Err(err).Str("code", code).Msg("create discount failed")
		return model.DiscountCode{}, err
	}
	invalidate(s.inv, model.EntityDiscounts)
	return out, nil
}

func (s *discountService) GetDiscount(ctx context.Context, id int64) (model.DiscountCode, error) {
	if id <= 0 {
		return model.DiscountCode{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *discountService) ListDiscounts(ctx context.Context, page repository.Page) (repository.PageResult[model.DiscountCode], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list discounts failed")
		return repository.PageResult[model.DiscountCode]{}, err
	}
	return res, nil
}

func (s *discountService) UpdateDiscount(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error) {
	code, ferrs := validateDiscount(d.Code, d.PercentOff)
	if d.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.DiscountCode{}, err
	}
	d.Code = code

	out, err := s.repo.Update(ctx, d)
	if err != nil {
		s.log.Error().Err(err).Int64("discount_id", d.ID).Msg("update discount failed")
		return model.DiscountCode{}, err
	}
	invalidate(s.inv, model.EntityDiscounts)
	return out, nil
}

func (s *discountService) DeleteDiscount(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityDiscounts)
	return nil
}

package service

import (
	"context"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/rs/zerolog"
)

type boatService struct {
	repo repository.BoatRepository
	inv  *listview.Invalidator
	log  zerolog.Logger
}

func NewBoatService(repo repository.BoatRepository, inv *listview.Invalidator, logger zerolog.Logger) BoatService {
	l := logger.With().Str("module", "service").Str("component", "boat").Logger()
	return &boatService{repo: repo, inv: inv, log: l}
}

func (s *boatService) CreateBoat(ctx context.Context, name string, capacity int) (model.Boat, error) {
	var ferrs []FieldError
	name = validName(name, 2, 50, "name", &ferrs)
	if capacity <= 0 {
		ferrs = append(ferrs, FieldError{Field: "capacity", Message: "must be > 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("boat validation failed")
		return model.Boat{}, err
	}

	out, err := s.repo.Create(ctx, model.Boat{Name: name, Capacity: capacity})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create boat failed")
		return model.Boat{}, err
	}
	invalidate(s.inv, model.EntityBoats)
	return out, nil
}

func (s *boatService) GetBoat(ctx context.Context, id int64) (model.Boat, error) {
	if id <= 0 {
		return model.Boat{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *boatService) ListBoats(ctx context.Context, page repository.Page) (repository.PageResult[model.Boat], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list boats failed")
		return repository.PageResult[model.Boat]{}, err
	}
	return res, nil
}

func (s *boatService) UpdateBoat(ctx context.Context, b model.Boat) (model.Boat, error) {
	var ferrs []FieldError
	if b.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	b.Name = validName(b.Name, 2, 50, "name", &ferrs)
	if b.Capacity <= 0 {
		ferrs = append(ferrs, FieldError{Field: "capacity", Message: "must be > 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Boat{}, err
	}

	out, err := s.repo.Update(ctx, b)
	if err != nil {
		s.log.Error().Err(err).Int64("boat_id", b.ID).Msg("update boat failed")
		return model.Boat{}, err
	}
	invalidate(s.inv, model.EntityBoats)
	return out, nil
}

func (s *boatService) DeleteBoat(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityBoats)
	return nil
}

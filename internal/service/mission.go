package service

import (
	"context"
	"strings"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/rs/zerolog"
)

type missionService struct {
	repo repository.MissionRepository
	inv  *listview.Invalidator
	log  zerolog.Logger
}

func NewMissionService(repo repository.MissionRepository, inv *listview.Invalidator, logger zerolog.Logger) MissionService {
	l := logger.With().Str("module", "service").Str("component", "mission").Logger()
	return &missionService{repo: repo, inv: inv, log: l}
}

func (s *missionService) CreateMission(ctx context.Context, name, agency, description string) (model.Mission, error) {
	var ferrs []FieldError
	name = validName(name, 2, 100, "name", &ferrs)
	agency = strings.TrimSpace(agency)
	if agency == "" {
		ferrs = append(ferrs, FieldError{Field: "agency", Message: "must not be empty"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("mission validation failed")
		return model.Mission{}, err
	}

	out, err := s.repo.Create(ctx, model.Mission{Name: name, Agency: agency, Description: strings.TrimSpace(description)})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create mission failed")
		return model.Mission{}, err
	}
	invalidate(s.inv, model.EntityMissions)
	return out, nil
}

func (s *missionService) GetMission(ctx context.Context, id int64) (model.Mission, error) {
	if id <= 0 {
		return model.Mission{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *missionService) ListMissions(ctx context.Context, page repository.Page) (repository.PageResult[model.Mission], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list missions failed")
		return repository.PageResult[model.Mission]{}, err
	}
	return res, nil
}

func (s *missionService) UpdateMission(ctx context.Context, m model.Mission) (model.Mission, error) {
	var ferrs []FieldError
	if m.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	m.Name = validName(m.Name, 2, 100, "name", &ferrs)
	if err := newInvalidInput(ferrs); err != nil {
		return model.Mission{}, err
	}

	out, err := s.repo.Update(ctx, m)
	if err != nil {
		s.log.Error().Err(err).Int64("mission_id", m.ID).Msg("update mission failed")
		return model.Mission{}, err
	}
	invalidate(s.inv, model.EntityMissions)
	return out, nil
}

func (s *missionService) DeleteMission(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityMissions)
	return nil
}

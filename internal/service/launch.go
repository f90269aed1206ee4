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

// invalidate notifies list-view caches after a mutation. Pull-based: the next
// list load refetches, nothing is pushed to readers.
func invalidate(inv *listview.Invalidator, entity string) {
	if inv != nil {
		inv.Invalidate(entity)
	}
}

// launchService holds launch use-case logic: validation + orchestration, no transport / SQL details.
type launchService struct {
	repo repository.LaunchRepository
	inv  *listview.Invalidator
	log  zerolog.Logger
}

func NewLaunchService(repo repository.LaunchRepository, inv *listview.Invalidator, logger zerolog.Logger) LaunchService {
	l := logger.With().Str("module", "service").Str("component", "launch").Logger()
	return &launchService{repo: repo, inv: inv, log: l}
}

func (s *launchService) CreateLaunch(ctx context.Context, name, vehicle, pad string, window time.Time, status string) (model.Launch, error) {
	start := time.Now()

	var ferrs []FieldError
	name = validName(name, 2, 100, "name", &ferrs)
	vehicle = strings.TrimSpace(vehicle)
	if vehicle == "" {
		ferrs = append(ferrs, FieldError{Field: "vehicle", Message: "must not be empty"})
	}
	pad = strings.TrimSpace(pad)
	if pad == "" {
		ferrs = append(ferrs, FieldError{Field: "pad", Message: "must not be empty"})
	}
	if window.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "window", Message: "must be set"})
	}
	statusNorm := strings.ToLower(strings.TrimSpace(status))
	if statusNorm == "" {
		statusNorm = "scheduled"
	}
	if !isValidLaunchStatus(statusNorm) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of scheduled|scrubbed|launched"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("launch validation failed")
		return model.Launch{}, err
	}

	out, err := s.repo.Create(ctx, model.Launch{Name: name, Vehicle: vehicle, Pad: pad, Window: window, Status: statusNorm})
	if err != nil {
		// Repository surfaces domain-level errors already, do not wrap.
		s.log.Error().Err(err).Str("name", name).Msg("create launch failed")
		return model.Launch{}, err
	}
	invalidate(s.inv, model.EntityLaunches)
	s.log.Info().Dur("took", time.Since(start)).Int64("launch_id", out.ID).Msg("launch created")
	return out, nil
}

func (s *launchService) GetLaunch(ctx context.Context, id int64) (model.Launch, error) {
	if id <= 0 {
		return model.Launch{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.repo.GetByID(ctx, id)
}

func (s *launchService) ListLaunches(ctx context.Context, page repository.Page) (repository.PageResult[model.Launch], error) {
	p := normalizePage(page)
	res, err := s.repo.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list launches failed")
		return repository.PageResult[model.Launch]{}, err
	}
	return res, nil
}

func (s *launchService) UpdateLaunch(ctx context.Context, l model.Launch) (model.Launch, error) {
	var ferrs []FieldError
	if l.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	l.Name = validName(l.Name, 2, 100, "name", &ferrs)
	if !isValidLaunchStatus(l.Status) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of scheduled|scrubbed|launched"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Launch{}, err
	}

	out, err := s.repo.Update(ctx, l)
	if err != nil {
		s.log.Error().Err(err).Int64("launch_id", l.ID).Msg("update launch failed")
		return model.Launch{}, err
	}
	invalidate(s.inv, model.EntityLaunches)
	return out, nil
}

func (s *launchService) DeleteLaunch(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityLaunches)
	s.log.Info().Int64("launch_id", id).Msg("launch deleted")
	return nil
}

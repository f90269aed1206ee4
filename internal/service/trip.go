package service

import (
	"context"
	"errors"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/rs/zerolog"
)

type tripService struct {
	trips    repository.TripRepository
	launches repository.LaunchRepository
	boats    repository.BoatRepository
	tx       repository.TxManager
	inv      *listview.Invalidator
	log      zerolog.Logger
}

func NewTripService(trips repository.TripRepository, launches repository.LaunchRepository, boats repository.BoatRepository, tx repository.TxManager, inv *listview.Invalidator, logger zerolog.Logger) TripService {
	l := logger.With().Str("module", "service").Str("component", "trip").Logger()
	return &tripService{trips: trips, launches: launches, boats: boats, tx: tx, inv: inv, log: l}
}

func (s *tripService) CreateTrip(ctx context.Context, launchID, boatID int64, departure time.Time, priceCents int64) (model.Trip, error) {
	var ferrs []FieldError
	if launchID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "launch_id", Message: "must be > 0"})
	}
	if boatID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "boat_id", Message: "must be > 0"})
	}
	if departure.IsZero() {
		ferrs = append(ferrs, FieldError{Field: "departure", Message: "must be set"})
	}
	if priceCents < 0 {
		ferrs = append(ferrs, FieldError{Field: "price_cents", Message: "must be >= 0"})
	}

	// Early exit if basic structure is invalid, do not touch the database.
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("trip validation failed (structure)")
		return model.Trip{}, err
	}

	// Existence checks before attempting persistence; the boat also supplies
	// the capacity frozen into the trip.
	var existenceErrs []FieldError
	if _, err := s.launches.GetByID(ctx, launchID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "launch_id", Message: "launch does not exist"})
		} else {
			return model.Trip{}, err
		}
	}
	var capacity int
	if boat, err := s.boats.GetByID(ctx, boatID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			existenceErrs = append(existenceErrs, FieldError{Field: "boat_id", Message: "boat does not exist"})
		} else {
			return model.Trip{}, err
		}
	} else {
		capacity = boat.Capacity
	}
	if err := newInvalidInput(existenceErrs); err != nil {
		s.log.Debug().Interface("field_errors", existenceErrs).Msg("trip validation failed (existence)")
		return model.Trip{}, err
	}

	// One INSERT today, but the tx boundary stays: trip creation will likely
	// grow companion records (crew assignments, manifests).
	var out model.Trip
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.trips.Create(ctx, model.Trip{
			LaunchID:   launchID,
			BoatID:     boatID,
			Departure:  departure,
			PriceCents: priceCents,
			Capacity:   capacity,
			Status:     "open",
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("launch_id", launchID).Int64("boat_id", boatID).Msg("create trip failed")
		return model.Trip{}, err
	}
	invalidate(s.inv, model.EntityTrips)
	return out, nil
}

func (s *tripService) GetTrip(ctx context.Context, id int64) (model.Trip, error) {
	if id <= 0 {
		return model.Trip{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.trips.GetByID(ctx, id)
}

func (s *tripService) ListTrips(ctx context.Context, page repository.Page) (repository.PageResult[model.Trip], error) {
	p := normalizePage(page)
	res, err := s.trips.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list trips failed")
		return repository.PageResult[model.Trip]{}, err
	}
	return res, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, t model.Trip) (model.Trip, error) {
	var ferrs []FieldError
	if t.ID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "id", Message: "must be > 0"})
	}
	if !isValidTripStatus(t.Status) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of open|departed|cancelled"})
	}
	if t.PriceCents < 0 {
		ferrs = append(ferrs, FieldError{Field: "price_cents", Message: "must be >= 0"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		return model.Trip{}, err
	}

	out, err := s.trips.Update(ctx, t)
	if err != nil {
		s.log.Error().Err(err).Int64("trip_id", t.ID).Msg("update trip failed")
		return model.Trip{}, err
	}
	invalidate(s.inv, model.EntityTrips)
	return out, nil
}

func (s *tripService) DeleteTrip(ctx context.Context, id int64) error {
	if id <= 0 {
		return newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	if err := s.trips.Delete(ctx, id); err != nil {
		return err
	}
	invalidate(s.inv, model.EntityTrips)
	return nil
}

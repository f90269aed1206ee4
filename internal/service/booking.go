package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type bookingService struct {
	bookings  repository.BookingRepository
	trips     repository.TripRepository
	discounts repository.DiscountRepository
	tx        repository.TxManager
	inv       *listview.Invalidator
	log       zerolog.Logger
}

func NewBookingService(bookings repository.BookingRepository, trips repository.TripRepository, discounts repository.DiscountRepository, tx repository.TxManager, inv *listview.Invalidator, logger zerolog.Logger) BookingService {
	l := logger.With().Str("module", "service").Str("component", "booking").Logger()
	return &bookingService{bookings: bookings, trips: trips, discounts: discounts, tx: tx, inv: inv, log: l}
}

// newConfirmationCode derives a short human-readable handle from a UUID.
// Collisions are caught by the unique index and surface as ErrAlreadyExists.
func newConfirmationCode() string {
	u := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[:10])
}

func (s *bookingService) CreateBooking(ctx context.Context, req BookingRequest) (model.Booking, error) {
	start := time.Now()

	var ferrs []FieldError
	if req.TripID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "trip_id", Message: "must be > 0"})
	}
	req.CustomerName = validName(req.CustomerName, 2, 100, "customer_name", &ferrs)
	if !isValidEmail(req.Email) {
		ferrs = append(ferrs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if req.Tickets < 1 {
		ferrs = append(ferrs, FieldError{Field: "tickets", Message: "must be >= 1"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("booking validation failed")
		return model.Booking{}, err
	}

	trip, err := s.trips.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Booking{}, newInvalidInput([]FieldError{{Field: "trip_id", Message: "trip does not exist"}})
		}
		return model.Booking{}, err
	}
	if trip.Status != "open" {
		return model.Booking{}, newInvalidInput([]FieldError{{Field: "trip_id", Message: "trip is not open for booking"}})
	}

	// Optional discount: inactive or expired codes are rejected rather than
	// silently ignored, so the customer knows the code did nothing.
	var discount *model.DiscountCode
	if code := strings.ToUpper(strings.TrimSpace(req.DiscountCode)); code != "" {
		d, err := s.discounts.GetByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return model.Booking{}, newInvalidInput([]FieldError{{Field: "discount_code", Message: "unknown code"}})
			}
			return model.Booking{}, err
		}
		if !d.Active || (d.ExpiresAt != nil && d.ExpiresAt.Before(time.Now())) {
			return model.Booking{}, newInvalidInput([]FieldError{{Field: "discount_code", Message: "code is no longer valid"}})
		}
		discount = &d
	}

	total := trip.PriceCents * int64(req.Tickets)
	var discountID *int64
	if discount != nil {
		total = total * int64(100-discount.PercentOff) / 100
		discountID = &discount.ID
	}

	// Capacity check and insert share one transaction so two concurrent
	// bookings cannot both squeeze into the last seats.
	var out model.Booking
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		booked, err := s.bookings.TicketsBooked(ctx, trip.ID)
		if err != nil {
			return err
		}
		if booked+req.Tickets > trip.Capacity {
			return ErrCapacityExceeded
		}
		created, err := s.bookings.Create(ctx, model.Booking{
			TripID:           trip.ID,
			ConfirmationCode: newConfirmationCode(),
			CustomerName:     req.CustomerName,
			Email:            strings.TrimSpace(req.Email),
			Tickets:          req.Tickets,
			TotalCents:       total,
			Status:           "confirmed",
			DiscountID:       discountID,
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrCapacityExceeded) {
			s.log.Info().Int64("trip_id", trip.ID).Int("tickets", req.Tickets).Msg("booking rejected, trip full")
		} else {
			s.log.Error().Err(err).Int64("trip_id", trip.ID).Msg("create booking failed")
		}
		return model.Booking{}, err
	}

	invalidate(s.inv, model.EntityBookings)
	s.log.Info().
		Dur("took", time.Since(start)).
		Int64("booking_id", out.ID).
		Str("confirmation", out.ConfirmationCode).
		Msg("booking created")
	return out, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id int64) (model.Booking, error) {
	if id <= 0 {
		return model.Booking{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.bookings.GetByID(ctx, id)
}

func (s *bookingService) LookupConfirmation(ctx context.Context, code string) (model.Booking, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return model.Booking{}, newInvalidInput([]FieldError{{Field: "code", Message: "must not be empty"}})
	}
	return s.bookings.GetByConfirmation(ctx, code)
}

func (s *bookingService) ListBookings(ctx context.Context, page repository.Page) (repository.PageResult[model.Booking], error) {
	p := normalizePage(page)
	res, err := s.bookings.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list bookings failed")
		return repository.PageResult[model.Booking]{}, err
	}
	return res, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id int64) (model.Booking, error) {
	if id <= 0 {
		return model.Booking{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	out, err := s.bookings.Cancel(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}
	invalidate(s.inv, model.EntityBookings)
	s.log.Info().Int64("booking_id", id).Msg("booking cancelled")
	return out, nil
}

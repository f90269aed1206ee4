// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// ErrCapacityExceeded marks a booking attempt for more seats than the trip has left.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 { // protective case
		return nil
	}
	return &invalidInputError{fields: fe}
}

// NewInvalidInputError is the exported constructor handlers use for request-shape errors.
func NewInvalidInputError(fe []FieldError) error { return newInvalidInput(fe) }

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// LaunchService defines launch-oriented use cases.
type LaunchService interface {
	CreateLaunch(ctx context.Context, name, vehicle, pad string, window time.Time, status string) (model.Launch, error)
	GetLaunch(ctx context.Context, id int64) (model.Launch, error)
	ListLaunches(ctx context.Context, page repository.Page) (repository.PageResult[model.Launch], error)
	UpdateLaunch(ctx context.Context, l model.Launch) (model.Launch, error)
	DeleteLaunch(ctx context.Context, id int64) error
}

// MissionService defines mission-oriented use cases.
type MissionService interface {
	CreateMission(ctx context.Context, name, agency, description string) (model.Mission, error)
	GetMission(ctx context.Context, id int64) (model.Mission, error)
	ListMissions(ctx context.Context, page repository.Page) (repository.PageResult[model.Mission], error)
	UpdateMission(ctx context.Context, m model.Mission) (model.Mission, error)
	DeleteMission(ctx context.Context, id int64) error
}

// BoatService defines boat-oriented use cases.
type BoatService interface {
	CreateBoat(ctx context.Context, name string, capacity int) (model.Boat, error)
	GetBoat(ctx context.Context, id int64) (model.Boat, error)
	ListBoats(ctx context.Context, page repository.Page) (repository.PageResult[model.Boat], error)
	UpdateBoat(ctx context.Context, b model.Boat) (model.Boat, error)
	DeleteBoat(ctx context.Context, id int64) error
}

// TripService defines trip-oriented use cases.
type TripService interface {
	CreateTrip(ctx context.Context, launchID, boatID int64, departure time.Time, priceCents int64) (model.Trip, error)
	GetTrip(ctx context.Context, id int64) (model.Trip, error)
	ListTrips(ctx context.Context, page repository.Page) (repository.PageResult[model.Trip], error)
	UpdateTrip(ctx context.Context, t model.Trip) (model.Trip, error)
	DeleteTrip(ctx context.Context, id int64) error
}

// MerchandiseService defines store item use cases.
type MerchandiseService interface {
	CreateItem(ctx context.Context, name, sku string, priceCents int64, stock int) (model.MerchandiseItem, error)
	GetItem(ctx context.Context, id int64) (model.MerchandiseItem, error)
	ListItems(ctx context.Context, page repository.Page) (repository.PageResult[model.MerchandiseItem], error)
	UpdateItem(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error)
	DeleteItem(ctx context.Context, id int64) error
}

// DiscountService defines discount code use cases.
type DiscountService interface {
	CreateDiscount(ctx context.Context, code string, percentOff int, active bool, expiresAt *time.Time) (model.DiscountCode, error)
	GetDiscount(ctx context.Context, id int64) (model.DiscountCode, error)
	ListDiscounts(ctx context.Context, page repository.Page) (repository.PageResult[model.DiscountCode], error)
	UpdateDiscount(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error)
	DeleteDiscount(ctx context.Context, id int64) error
}

// BookingRequest is the public booking payload after transport decoding.
type BookingRequest struct {
	TripID       int64
	CustomerName string
	Email        string
	Tickets      int
	DiscountCode string // optional
}

// BookingService defines booking use cases for both staff and the public flow.
type BookingService interface {
	CreateBooking(ctx context.Context, req BookingRequest) (model.Booking, error)
	GetBooking(ctx context.Context, id int64) (model.Booking, error)
	// LookupConfirmation resolves a customer's confirmation code.
	LookupConfirmation(ctx context.Context, code string) (model.Booking, error)
	ListBookings(ctx context.Context, page repository.Page) (repository.PageResult[model.Booking], error)
	CancelBooking(ctx context.Context, id int64) (model.Booking, error)
}

package repository

import (
	"context"

	"github.com/coastalops/launchtours/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
// I prefer a single entry point to keep transaction boundaries explicit and testable.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// LaunchRepository declares persistence operations for launches.
// I return domain models and surface domain errors from errors.go rather than PG codes.
type LaunchRepository interface {
	Create(ctx context.Context, l model.Launch) (model.Launch, error)
	GetByID(ctx context.Context, id int64) (model.Launch, error)
	List(ctx context.Context, p Page) (PageResult[model.Launch], error)
	Update(ctx context.Context, l model.Launch) (model.Launch, error)
	Delete(ctx context.Context, id int64) error
}

// MissionRepository declares persistence operations for missions.
type MissionRepository interface {
	Create(ctx context.Context, m model.Mission) (model.Mission, error)
	GetByID(ctx context.Context, id int64) (model.Mission, error)
	List(ctx context.Context, p Page) (PageResult[model.Mission], error)
	Update(ctx context.Context, m model.Mission) (model.Mission, error)
	Delete(ctx context.Context, id int64) error
}

// BoatRepository declares persistence operations for boats.
type BoatRepository interface {
	Create(ctx context.Context, b model.Boat) (model.Boat, error)
	GetByID(ctx context.Context, id int64) (model.Boat, error)
	List(ctx context.Context, p Page) (PageResult[model.Boat], error)
	Update(ctx context.Context, b model.Boat) (model.Boat, error)
	Delete(ctx context.Context, id int64) error
}

// TripRepository declares persistence operations for trips.
type TripRepository interface {
	Create(ctx context.Context, t model.Trip) (model.Trip, error)
	GetByID(ctx context.Context, id int64) (model.Trip, error)
	List(ctx context.Context, p Page) (PageResult[model.Trip], error)
	Update(ctx context.Context, t model.Trip) (model.Trip, error)
	Delete(ctx context.Context, id int64) error
}

// MerchandiseRepository declares persistence operations for store items.
type MerchandiseRepository interface {
	Create(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error)
	GetByID(ctx context.Context, id int64) (model.MerchandiseItem, error)
	List(ctx context.Context, p Page) (PageResult[model.MerchandiseItem], error)
	Update(ctx context.Context, m model.MerchandiseItem) (model.MerchandiseItem, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository declares persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b model.Booking) (model.Booking, error)
	GetByID(ctx context.Context, id int64) (model.Booking, error)
	// GetByConfirmation resolves the public confirmation code customers hold.
	GetByConfirmation(ctx context.Context, code string) (model.Booking, error)
	List(ctx context.Context, p Page) (PageResult[model.Booking], error)
	// TicketsBooked sums confirmed tickets on a trip for capacity checks.
	TicketsBooked(ctx context.Context, tripID int64) (int, error)
	Cancel(ctx context.Context, id int64) (model.Booking, error)
}

// DiscountRepository declares persistence operations for discount codes.
type DiscountRepository interface {
	Create(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error)
	GetByID(ctx context.Context, id int64) (model.DiscountCode, error)
	GetByCode(ctx context.Context, code string) (model.DiscountCode, error)
	List(ctx context.Context, p Page) (PageResult[model.DiscountCode], error)
	Update(ctx context.Context, d model.DiscountCode) (model.DiscountCode, error)
	Delete(ctx context.Context, id int64) error
}

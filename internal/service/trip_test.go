package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
)

type fakeBoatRepo struct {
	items map[int64]model.Boat
}

func (f *fakeBoatRepo) Create(_ context.Context, b model.Boat) (model.Boat, error) { return b, nil }
func (f *fakeBoatRepo) GetByID(_ context.Context, id int64) (model.Boat, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Boat{}, repository.ErrNotFound
	}
	return it, nil
}
func (f *fakeBoatRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Boat], error) {
	return repository.PageResult[model.Boat]{}, nil
}
func (f *fakeBoatRepo) Update(_ context.Context, b model.Boat) (model.Boat, error) { return b, nil }
func (f *fakeBoatRepo) Delete(_ context.Context, id int64) error                   { return nil }

var _ repository.BoatRepository = (*fakeBoatRepo)(nil)

// recordingTripRepo returns what it is given and keeps the last created trip.
type recordingTripRepo struct {
	fakeTripRepo
	created model.Trip
}

func (r *recordingTripRepo) Create(_ context.Context, t model.Trip) (model.Trip, error) {
	t.ID = 42
	r.created = t
	return t, nil
}

func newTripFixture() (*recordingTripRepo, service.TripService) {
	launches := newFakeLaunchRepo()
	launches.items[1] = model.Launch{ID: 1, Name: "Starlink 12", Status: "scheduled"}
	boats := &fakeBoatRepo{items: map[int64]model.Boat{1: {ID: 1, Name: "Osprey", Capacity: 48}}}
	trips := &recordingTripRepo{}
	svc := service.NewTripService(trips, launches, boats, noopTx{}, nil, discardLogger())
	return trips, svc
}

func TestTripService_CreateTrip(t *testing.T) {
	trips, svc := newTripFixture()

	departure := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
	out, err := svc.CreateTrip(context.Background(), 1, 1, departure, 15000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "open" {
		t.Fatalf("new trips must open for booking, got %q", out.Status)
	}
	// Capacity is frozen from the boat at creation time.
	if out.Capacity != 48 || trips.created.Capacity != 48 {
		t.Fatalf("expected capacity 48 from boat, got %d", out.Capacity)
	}
}

func TestTripService_CreateTrip_Validation(t *testing.T) {
	_, svc := newTripFixture()
	ctx := context.Background()
	departure := time.Now().Add(48 * time.Hour)

	if _, err := svc.CreateTrip(ctx, 0, 1, departure, 100); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("zero launch id: %v", err)
	}
	if _, err := svc.CreateTrip(ctx, 1, 1, time.Time{}, 100); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("zero departure: %v", err)
	}
	if _, err := svc.CreateTrip(ctx, 1, 1, departure, -1); !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("negative price: %v", err)
	}

	// Referenced rows must exist; both failures are reported together.
	_, err := svc.CreateTrip(ctx, 99, 98, departure, 100)
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	fields := map[string]bool{}
	for _, fe := range service.FieldErrors(err) {
		fields[fe.Field] = true
	}
	if !fields["launch_id"] || !fields["boat_id"] {
		t.Fatalf("expected launch_id and boat_id errors, got %v", service.FieldErrors(err))
	}
}

func TestTripService_UpdateTrip_StatusValidation(t *testing.T) {
	_, svc := newTripFixture()

	_, err := svc.UpdateTrip(context.Background(), model.Trip{ID: 1, Status: "sunk", PriceCents: 100})
	if !errors.Is(err, service.ErrInvalidInput) {
		t.Fatalf("expected invalid status rejection, got %v", err)
	}
	if _, err := svc.UpdateTrip(context.Background(), model.Trip{ID: 1, Status: "departed", PriceCents: 100}); err != nil {
		t.Fatalf("valid status must pass: %v", err)
	}
}

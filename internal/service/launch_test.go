package service_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
)

type fakeLaunchRepo struct {
	nextID    int64
	items     map[int64]model.Launch
	createErr error
	lastPage  repository.Page // capture last page for pagination normalization tests
}

func newFakeLaunchRepo() *fakeLaunchRepo {
	return &fakeLaunchRepo{nextID: 1, items: map[int64]model.Launch{}}
}

func (f *fakeLaunchRepo) Create(_ context.Context, l model.Launch) (model.Launch, error) {
	if f.createErr != nil {
		return model.Launch{}, f.createErr
	}
	l.ID = f.nextID
	f.nextID++
	f.items[l.ID] = l
	return l, nil
}
func (f *fakeLaunchRepo) GetByID(_ context.Context, id int64) (model.Launch, error) {
	it, ok := f.items[id]
	if !ok {
		return model.Launch{}, repository.ErrNotFound
	}
	return it, nil
}
func (f *fakeLaunchRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Launch], error) {
	f.lastPage = p
	res := repository.PageResult[model.Launch]{}
	for _, v := range f.items {
		res.Items = append(res.Items, v)
	}
	res.Total = len(res.Items)
	return res, nil
}
func (f *fakeLaunchRepo) Update(_ context.Context, l model.Launch) (model.Launch, error) {
	if _, ok := f.items[l.ID]; !ok {
		return model.Launch{}, repository.ErrNotFound
	}
	f.items[l.ID] = l
	return l, nil
}
func (f *fakeLaunchRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

var _ repository.LaunchRepository = (*fakeLaunchRepo)(nil)

func discardLogger() zerolog.Logger { return zerolog.New(io.Discard) }

func TestLaunchService_CreateLaunch_Validation(t *testing.T) {
	svc := service.NewLaunchService(newFakeLaunchRepo(), nil, discardLogger())
	window := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		launch    model.Launch
		wantField string
	}{
		{"empty name", model.Launch{Vehicle: "Falcon 9", Pad: "LC-39A", Window: window}, "name"},
		{"short name", model.Launch{Name: "X", Vehicle: "Falcon 9", Pad: "LC-39A", Window: window}, "name"},
		{"empty vehicle", model.Launch{Name: "Starlink 12", Pad: "LC-39A", Window: window}, "vehicle"},
		{"empty pad", model.Launch{Name: "Starlink 12", Vehicle: "Falcon 9", Window: window}, "pad"},
		{"zero window", model.Launch{Name: "Starlink 12", Vehicle: "Falcon 9", Pad: "LC-39A"}, "window"},
		{"bad status", model.Launch{Name: "Starlink 12", Vehicle: "Falcon 9", Pad: "LC-39A", Window: window, Status: "lost"}, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateLaunch(context.Background(), tc.launch.Name, tc.launch.Vehicle, tc.launch.Pad, tc.launch.Window, tc.launch.Status)
			if err == nil {
				t.Fatalf("expected validation error")
			}
			fes := service.FieldErrors(err)
			if len(fes) == 0 {
				t.Fatalf("expected field errors, got %v", err)
			}
			found := false
			for _, fe := range fes {
				if fe.Field == tc.wantField {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in %v", tc.wantField, fes)
			}
		})
	}
}

func TestLaunchService_CreateLaunch_DefaultsStatus(t *testing.T) {
	repo := newFakeLaunchRepo()
	svc := service.NewLaunchService(repo, nil, discardLogger())

	out, err := svc.CreateLaunch(context.Background(), "Starlink 12", "Falcon 9", "LC-39A", time.Now().Add(24*time.Hour), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != "scheduled" {
		t.Fatalf("expected default status scheduled, got %q", out.Status)
	}
}

func TestLaunchService_ListLaunches_NormalizesPage(t *testing.T) {
	repo := newFakeLaunchRepo()
	svc := service.NewLaunchService(repo, nil, discardLogger())

	if _, err := svc.ListLaunches(context.Background(), repository.Page{Limit: -5, Offset: -3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPage.Limit != 50 || repo.lastPage.Offset != 0 {
		t.Fatalf("expected normalized page 50/0, got %+v", repo.lastPage)
	}

	if _, err := svc.ListLaunches(context.Background(), repository.Page{Limit: 10, Offset: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPage.Limit != 10 || repo.lastPage.Offset != 20 {
		t.Fatalf("valid page must pass through, got %+v", repo.lastPage)
	}
}

func TestLaunchService_MutationsInvalidateListCache(t *testing.T) {
	inv := listview.NewInvalidator()
	hits := &countingInvalidatable{}
	inv.Register(model.EntityLaunches, hits)

	repo := newFakeLaunchRepo()
	svc := service.NewLaunchService(repo, inv, discardLogger())
	ctx := context.Background()

	created, err := svc.CreateLaunch(ctx, "Starlink 12", "Falcon 9", "LC-39A", time.Now().Add(24*time.Hour), "scheduled")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	created.Name = "Starlink 12A"
	if _, err := svc.UpdateLaunch(ctx, created); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := svc.DeleteLaunch(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if hits.n != 3 {
		t.Fatalf("expected 3 invalidations (create/update/delete), got %d", hits.n)
	}
}

type countingInvalidatable struct{ n int }

func (c *countingInvalidatable) Invalidate() { c.n++ }

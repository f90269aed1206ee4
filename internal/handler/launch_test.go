package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/coastalops/launchtours/internal/handler"
	"github.com/coastalops/launchtours/internal/listview"
	"github.com/coastalops/launchtours/internal/model"
	"github.com/coastalops/launchtours/internal/repository"
	"github.com/coastalops/launchtours/internal/service"
)

// stubLaunchService controls each outcome and records the page it was asked for.
type stubLaunchService struct {
	mu       sync.Mutex
	lastPage repository.Page
	listRes  repository.PageResult[model.Launch]
	listErr  error
	get      model.Launch
	getErr   error
}

func (s *stubLaunchService) CreateLaunch(ctx context.Context, name, vehicle, pad string, window time.Time, status string) (model.Launch, error) {
	return model.Launch{ID: 1, Name: name, Vehicle: vehicle, Pad: pad, Window: window, Status: status}, nil
}
func (s *stubLaunchService) GetLaunch(ctx context.Context, id int64) (model.Launch, error) {
	return s.get, s.getErr
}
func (s *stubLaunchService) ListLaunches(ctx context.Context, page repository.Page) (repository.PageResult[model.Launch], error) {
	s.mu.Lock()
	s.lastPage = page
	s.mu.Unlock()
	if s.listErr != nil {
		return repository.PageResult[model.Launch]{}, s.listErr
	}
	return s.listRes, nil
}
func (s *stubLaunchService) UpdateLaunch(ctx context.Context, l model.Launch) (model.Launch, error) {
	return l, nil
}
func (s *stubLaunchService) DeleteLaunch(ctx context.Context, id int64) error { return nil }

var _ service.LaunchService = (*stubLaunchService)(nil)

type listEnvelope struct {
	Data     []model.Launch `json:"data"`
	Count    int            `json:"count"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Empty    bool           `json:"empty"`
	Stale    bool           `json:"stale"`
}

func launchRouter(svc service.LaunchService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group(handler.APIV1Prefix)
	env := listview.Env{Logger: zerolog.New(io.Discard)}
	handler.NewLaunchHandler(svc, env).Register(api)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func launches(names ...string) []model.Launch {
	out := make([]model.Launch, len(names))
	for i, n := range names {
		out[i] = model.Launch{ID: int64(i + 1), Name: n}
	}
	return out
}

func TestListLaunches_Envelope(t *testing.T) {
	svc := &stubLaunchService{listRes: repository.PageResult[model.Launch]{Items: launches("a", "b"), Total: 12}}
	r := launchRouter(svc)

	w := doGet(t, r, "/api/v1/launches?page=2&pageSize=10")
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", w.Code, w.Body.String())
	}
	var env listEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Count != 12 || env.Page != 2 || env.PageSize != 10 {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if len(env.Data) != 2 || env.Empty || env.Stale {
		t.Fatalf("unexpected envelope body: %+v", env)
	}

	// Page 2 at size 10 asks the upstream for rows 10..19.
	if svc.lastPage.Limit != 10 || svc.lastPage.Offset != 10 {
		t.Fatalf("expected limit=10 offset=10, got %+v", svc.lastPage)
	}
}

func TestListLaunches_MalformedQueryFallsBack(t *testing.T) {
	svc := &stubLaunchService{listRes: repository.PageResult[model.Launch]{Items: launches("a"), Total: 1}}
	r := launchRouter(svc)

	w := doGet(t, r, "/api/v1/launches?page=-4&pageSize=banana")
	if w.Code != http.StatusOK {
		t.Fatalf("malformed query must not fail, got %d", w.Code)
	}
	var env listEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Page != 1 || env.PageSize != 10 {
		t.Fatalf("expected defaults 1/10, got %+v", env)
	}
	if svc.lastPage.Limit != 10 || svc.lastPage.Offset != 0 {
		t.Fatalf("expected limit=10 offset=0, got %+v", svc.lastPage)
	}
}

func TestListLaunches_SortAppliedToPage(t *testing.T) {
	svc := &stubLaunchService{listRes: repository.PageResult[model.Launch]{Items: launches("cherry", "apple", "banana"), Total: 3}}
	r := launchRouter(svc)

	w := doGet(t, r, "/api/v1/launches?sortBy=name&sortDirection=desc")
	var env listEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := []string{env.Data[0].Name, env.Data[1].Name, env.Data[2].Name}
	if got[0] != "cherry" || got[1] != "banana" || got[2] != "apple" {
		t.Fatalf("unexpected sort order: %v", got)
	}
}

func TestListLaunches_RemoteFailureWithNoDataIs500(t *testing.T) {
	svc := &stubLaunchService{listErr: errors.New("db down")}
	r := launchRouter(svc)

	w := doGet(t, r, "/api/v1/launches")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 with nothing to show, got %d", w.Code)
	}
}

func TestListLaunches_RemoteFailureServesStalePage(t *testing.T) {
	svc := &stubLaunchService{listRes: repository.PageResult[model.Launch]{Items: launches("a", "b"), Total: 2}}
	r := launchRouter(svc)

	// Seed the last-known-good page.
	if w := doGet(t, r, "/api/v1/launches"); w.Code != http.StatusOK {
		t.Fatalf("seed request failed: %d", w.Code)
	}

	// The next window fails; the previous page renders marked stale.
	svc.mu.Lock()
	svc.listErr = errors.New("db down")
	svc.mu.Unlock()

	w := doGet(t, r, "/api/v1/launches?page=2")
	if w.Code != http.StatusOK {
		t.Fatalf("expected stale 200, got %d: %s", w.Code, w.Body.String())
	}
	var env listEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Stale || len(env.Data) != 2 {
		t.Fatalf("expected stale retained data, got %+v", env)
	}
}

func TestGetLaunch_ErrorMapping(t *testing.T) {
	svc := &stubLaunchService{getErr: repository.ErrNotFound}
	r := launchRouter(svc)

	w := doGet(t, r, "/api/v1/launches/7")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = doGet(t, r, "/api/v1/launches/seven")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid_input") {
		t.Fatalf("expected invalid_input payload, got %s", w.Body.String())
	}
}

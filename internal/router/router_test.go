package router_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
	"github.com/iliyamo/seat-inventory/internal/handler"
	"github.com/iliyamo/seat-inventory/internal/middleware"
	"github.com/iliyamo/seat-inventory/internal/repository"
	"github.com/iliyamo/seat-inventory/internal/router"
	"github.com/iliyamo/seat-inventory/internal/service"
	"github.com/iliyamo/seat-inventory/internal/utils"
)

func newEcho(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := config.NewTestConfig()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewInventoryService(
		repository.NewSeatRepo(db), repository.NewVenueRepo(db), nil,
		clock.NewRealClock(), cfg.Inventory, logger,
	)
	cache := middleware.NewSeatMapCache(cfg.Cache, nil, logger)
	h := handler.NewInventoryHandler(svc, cache, logger)

	e := echo.New()
	router.RegisterRoutes(e, db)
	limiter := middleware.NewTokenBucket(cfg.RateLimit, nil, clock.NewRealClock(), logger)
	router.RegisterInventory(e, h, cache, limiter, cfg.JWT.Secret)
	router.RegisterHolds(e, h, limiter, cfg.JWT.Secret)
	return e, mock
}

func TestRoutesRegistered(t *testing.T) {
	e, _ := newEcho(t)

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /healthz",
		"GET /metrics",
		"POST /v1/venues/:venue_id/seats",
		"POST /v1/venues/:venue_id/seats/bulk",
		"GET /v1/venues/:venue_id/seats",
		"GET /v1/venues/:venue_id/seats/map",
		"GET /v1/venues/:venue_id/stats",
		"GET /v1/venues/:venue_id/seats/resolve",
		"PATCH /v1/venues/:venue_id/seats",
		"DELETE /v1/venues/:venue_id/seats",
		"POST /v1/seats/:id/hold",
		"DELETE /v1/seats/:id/hold",
		"DELETE /v1/venues/:venue_id/holds/mine",
		"POST /v1/internal/holds/reclaim",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	e, mock := newEcho(t)
	mock.ExpectPing()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccessControl(t *testing.T) {
	e, mock := newEcho(t)
	customer, err := utils.NewAccessToken("test-secret", "user1", "CUSTOMER", time.Minute)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		method string
		path   string
		bearer string
		want   int
	}{
		{name: "no token on read", method: http.MethodGet, path: "/v1/venues/7/seats", want: http.StatusUnauthorized},
		{name: "no token on hold", method: http.MethodPost, path: "/v1/seats/1/hold", want: http.StatusUnauthorized},
		{name: "customer cannot generate", method: http.MethodPost, path: "/v1/venues/7/seats/bulk", bearer: customer.Token, want: http.StatusForbidden},
		{name: "customer cannot reclaim", method: http.MethodPost, path: "/v1/internal/holds/reclaim", bearer: customer.Token, want: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			if tc.bearer != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tc.bearer)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

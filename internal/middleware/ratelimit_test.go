package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/seat-inventory/internal/clock"
	"github.com/iliyamo/seat-inventory/internal/config"
)

func testRateConfig() config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       5,
		RefillTokens:   1,
		RefillInterval: 2 * time.Second,
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip",
		Prefix:         "rl",
	}
}

func TestTokenBucket(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	cfg := testRateConfig()
	key := "rl:ip:192.0.2.1"
	args := []interface{}{now.UnixMilli(), cfg.Capacity, cfg.RefillTokens, cfg.RefillInterval.Milliseconds(), int64(600)}

	testCases := []struct {
		name          string
		setup         func(mock redismock.ClientMock)
		wantStatus    int
		wantRemaining string
		wantRetry     string
	}{
		{
			name: "success: token taken",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectEvalSha(limiterScript.Hash(), []string{key}, args...).
					SetVal([]interface{}{int64(1), int64(4), int64(0)})
			},
			wantStatus:    http.StatusOK,
			wantRemaining: "4",
		},
		{
			name: "error: bucket empty",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectEvalSha(limiterScript.Hash(), []string{key}, args...).
					SetVal([]interface{}{int64(0), int64(0), int64(1500)})
			},
			wantStatus:    http.StatusTooManyRequests,
			wantRemaining: "0",
			wantRetry:     "2",
		},
		{
			name: "success: redis down fails open",
			setup: func(mock redismock.ClientMock) {
				mock.ExpectEvalSha(limiterScript.Hash(), []string{key}, args...).
					SetErr(errors.New("connection refused"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			tc.setup(mock)

			e := echo.New()
			e.POST("/v1/seats/:id/hold", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, NewTokenBucket(cfg, db, clock.NewMockClock(now), discardLogger()))

			req := httptest.NewRequest(http.MethodPost, "/v1/seats/9/hold", nil)
			req.RemoteAddr = "192.0.2.1:5555"
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantRemaining, rec.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tc.wantRetry, rec.Header().Get("Retry-After"))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/seats/9/hold", nil)
	req.RemoteAddr = "192.0.2.1:5555"
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/seats/:id/hold")
	c.Set(ctxActorKey, "user1")

	cfg := testRateConfig()
	cfg.KeyStrategy = "user_route"
	assert.Equal(t, "rl:user:user1:route:POST /v1/seats/:id/hold", buildRateKey(cfg, c))

	cfg.KeyStrategy = ""
	assert.Equal(t, "rl:ip:192.0.2.1:user:user1:route:POST /v1/seats/:id/hold", buildRateKey(cfg, c))
}

package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/seat-inventory/internal/config"
)

// captureWriter captures response body/status while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int64
	limit  int64
}

func (cw *captureWriter) WriteHeader(code int) { cw.status = code; cw.ResponseWriter.WriteHeader(code) }

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.limit <= 0 {
		cw.buf.Write(b)
	} else if remain := cw.limit - cw.size; remain > 0 {
		if int64(len(b)) <= remain {
			cw.buf.Write(b)
		} else {
			cw.buf.Write(b[:remain])
		}
	}
	cw.size += int64(len(b))
	return cw.ResponseWriter.Write(b)
}

// SeatMapCache caches read responses of venue-scoped routes in Redis and
// drops a venue's entries when its inventory changes.  Keys look like
// <prefix>:venue:<venue_id>:<sha1 of route/query>.  A nil client disables it.
type SeatMapCache struct {
	cfg    config.CacheConfig
	rdb    *redis.Client
	logger *slog.Logger
}

func NewSeatMapCache(cfg config.CacheConfig, rdb *redis.Client, logger *slog.Logger) *SeatMapCache {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * time.Second
	}
	return &SeatMapCache{cfg: cfg, rdb: rdb, logger: logger}
}

func (sc *SeatMapCache) enabled() bool { return sc != nil && sc.cfg.Enabled && sc.rdb != nil }

func (sc *SeatMapCache) venuePrefix(venueID uint64) string {
	return fmt.Sprintf("%s:venue:%d:", sc.cfg.Prefix, venueID)
}

// keyFor builds a stable cache key honouring the configured strategy.  The
// venue segment is the parsed id, so "007" and "7" share one namespace.
func (sc *SeatMapCache) keyFor(c echo.Context, venueID uint64) string {
	r := c.Request()
	var parts []string
	switch strings.ToLower(sc.cfg.KeyStrategy) {
	case "route":
		parts = []string{"route", c.Path()}
	case "method_route":
		parts = []string{"method", r.Method, "route", c.Path()}
	case "method_route_query":
		parts = []string{"method", r.Method, "route", c.Path(), "q", r.URL.RawQuery}
	default: // "route_query"
		parts = []string{"route", c.Path(), "q", r.URL.RawQuery}
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s%x", sc.venuePrefix(venueID), sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:8+len(hdrJSON)], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// Middleware serves cached 200 responses and stores fresh ones.  Headers are
// stored with the body so clients see identical responses on a hit.
func (sc *SeatMapCache) Middleware() echo.MiddlewareFunc {
	if !sc.enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	maxBody := int64(sc.cfg.MaxBodyBytes)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !sc.cfg.AllowsMethod(c.Request().Method) {
				return next(c)
			}
			venueID, err := strconv.ParseUint(c.Param("venue_id"), 10, 64)
			if err != nil || venueID == 0 {
				return next(c)
			}
			ctx := c.Request().Context()
			key := sc.keyFor(c, venueID)

			if bs, err := sc.rdb.Get(ctx, key).Bytes(); err == nil {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range hdr {
						if strings.EqualFold(k, echo.HeaderContentLength) || strings.EqualFold(k, "X-Cache") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(status)
					if len(body) > 0 {
						_, _ = c.Response().Write(body)
					}
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: maxBody}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			// Truncated bodies are never stored.
			if cw.status != http.StatusOK || (maxBody > 0 && cw.size > maxBody) {
				return nil
			}
			hdr := c.Response().Header().Clone()
			if payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes()); err == nil {
				if err := sc.rdb.SetEx(context.WithoutCancel(ctx), key, payload, sc.cfg.TTL).Err(); err != nil {
					sc.logger.Debug("seat map cache store failed", "key", key, "error", err)
				}
			}
			return nil
		}
	}
}

// InvalidateVenue deletes every cached response of the venue.
func (sc *SeatMapCache) InvalidateVenue(ctx context.Context, venueID uint64) error {
	if !sc.enabled() {
		return nil
	}
	pattern := sc.venuePrefix(venueID) + "*"
	var cursor uint64
	for {
		keys, next, err := sc.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := sc.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// HeaderIdempotencyKey carries the client-chosen key that makes a
	// mutating request safe to retry.
	HeaderIdempotencyKey = "X-Idempotency-Key"
	// HeaderRequestAt, when present, must be close to server time.
	HeaderRequestAt = "X-Request-At"

	// How long the "in-progress" lock is held before it must be replaced
	// by the final response.
	provisionalLockTTL = 60 * time.Second
	// Allowed client/server clock skew for X-Request-At (in UTC).
	maxClockSkew = 10 * time.Minute
)

type idempEntry struct {
	InProgress bool      `json:"in_progress"`
	Code       int       `json:"code"`
	Body       []byte    `json:"body"`
	BodySHA256 string    `json:"body_sha256"`
	Key        string    `json:"key"`
	CreatedAt  time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency de-duplicates mutating requests keyed by method + route +
// X-Idempotency-Key. The first request takes a provisional lock; retries
// with the same key and body replay the stored response, retries with a
// different body are rejected.
//
// X-Request-At is optional. When the client sends it, it must be epoch
// (seconds or ms) or RFC3339/RFC3339Nano with a timezone, within
// maxClockSkew of server time.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := req.Method

			// Only enforce on mutating methods
			switch method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			idemKey := strings.TrimSpace(req.Header.Get(HeaderIdempotencyKey))
			if idemKey == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing X-Idempotency-Key"})
			}
			if !validIdemKey(idemKey) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid X-Idempotency-Key format"})
			}

			if raw := req.Header.Get(HeaderRequestAt); strings.TrimSpace(raw) != "" {
				reqAt, err := parseRequestAt(raw)
				if err != nil {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
				}
				now := nowUTC()
				if reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "X-Request-At too skewed"})
				}
			}

			// Buffer & hash body so retries can be compared
			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			key := buildKey(method, c.Path(), idemKey)
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()

			entry := idempEntry{
				InProgress: true,
				BodySHA256: bhash,
				Key:        idemKey,
				CreatedAt:  nowUTC(),
			}
			ok, err := provisionalSet(ctx, rdb, key, entry)
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !ok {
				// Key exists: body must match, and we may be able to replay
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil {
					log.Printf("idempotency: load %s: %v", key, errLoad)
				}

				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": "X-Idempotency-Key reused with different body"})
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			// Call next and record the final response for replay
			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			final := idempEntry{
				InProgress: false,
				Code:       rec.code,
				Body:       rec.buf.Bytes(),
				BodySHA256: bhash,
				Key:        idemKey,
				CreatedAt:  nowUTC(),
			}
			_ = saveFinal(context.Background(), rdb, key, final, ttl)
			return nil
		}
	}
}

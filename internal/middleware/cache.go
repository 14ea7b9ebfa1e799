package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/ademirsantosjr/todo-minimal-api/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cache entry.
// The body is base64-encoded by encoding/json.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter captures the response body and status while forwarding
// everything to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	size   int
	limit  int
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if cw.size+len(b) <= cw.limit {
		cw.buf.Write(b)
	}
	cw.size += len(b)
	return cw.ResponseWriter.Write(b)
}

// TodoCache caches successful GET responses per authenticated user.
// Keys are namespaced by the caller's id, and any mutating request from
// that caller deletes the caller's entries after the handler succeeds,
// so a user always reads their own writes. Entries from other writers
// (another instance, manual DB edits) age out via the TTL. When Redis
// is unavailable the middleware is a pass-through.
func TodoCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, ok := c.Get(CtxUserID).(string)
			if !ok || uid == "" {
				return next(c)
			}
			if c.Request().Method != http.MethodGet {
				err := next(c)
				if err == nil && c.Response().Status < 400 {
					bustUserCache(cfg, rdb, uid)
				}
				return err
			}

			key := cacheKey(cfg, uid, c)
			ctx := c.Request().Context()
			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var entry cachedResponse
				if json.Unmarshal(raw, &entry) == nil {
					c.Response().Header().Set(echo.HeaderContentType, entry.ContentType)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					_, _ = c.Response().Write(entry.Body)
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}
			if cw.status == http.StatusOK && cw.size <= cw.limit {
				entry := cachedResponse{
					Status:      cw.status,
					ContentType: c.Response().Header().Get(echo.HeaderContentType),
					Body:        cw.buf.Bytes(),
				}
				if raw, err := json.Marshal(entry); err == nil {
					_ = rdb.SetEx(context.Background(), key, raw, ttl).Err()
				}
			}
			return nil
		}
	}
}

func cacheKey(cfg config.CacheConfig, uid string, c echo.Context) string {
	r := c.Request()
	sum := sha1.Sum([]byte(c.Path() + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:%s:%x", cfg.Prefix, uid, sum)
}

// bustUserCache deletes every cache entry of one user. SCAN keeps the
// walk incremental; entry counts per user are tiny here.
func bustUserCache(cfg config.CacheConfig, rdb *redis.Client, uid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pattern := fmt.Sprintf("%s:%s:*", cfg.Prefix, uid)
	iter := rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		_ = rdb.Del(ctx, iter.Val()).Err()
	}
}

package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/HammerMeetNail/plantcare/internal/logging"
	"github.com/HammerMeetNail/plantcare/internal/metrics"
)

// windowCounter counts hits for a key within a fixed window.
type windowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	client *redis.Client
}

func (c redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	pipe := c.client.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// RateLimiter is a fixed-window limiter keyed by client IP. With no redis
// client it lets every request through.
type RateLimiter struct {
	counter windowCounter
	limit   int
	window  time.Duration
	prefix  string
	logger  *logging.Logger
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration, prefix string, logger *logging.Logger) *RateLimiter {
	if logger == nil {
		logger = logging.Default
	}
	rl := &RateLimiter{
		limit:  limit,
		window: window,
		prefix: prefix,
		logger: logger,
	}
	if client != nil {
		rl.counter = redisCounter{client: client}
	}
	return rl
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.counter == nil || rl.limit <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		now := time.Now()
		windowStart := now.Truncate(rl.window)
		resetTime := windowStart.Add(rl.window).Unix()
		key := fmt.Sprintf("%s:%s:%d", rl.prefix, GetClientIP(r), windowStart.Unix())

		count, err := rl.counter.Incr(r.Context(), key, rl.window)
		if err != nil {
			logging.FromContext(r.Context(), rl.logger).Warn("Rate limiter unavailable, allowing request", map[string]interface{}{
				"error": err.Error(),
			})
			next.ServeHTTP(w, r)
			return
		}

		remaining := rl.limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

		if int(count) > rl.limit {
			metrics.RateLimitedTotal.Inc()
			w.Header().Set("Retry-After", strconv.FormatInt(resetTime-now.Unix(), 10))
			writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the connection address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/image-gateway/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-gateway/internal/pkg/httputil"
)

const rateLimitKeyPrefix = "image-gateway:ratelimit:"

// RateLimiter is a per-client sliding window over a Redis sorted set. Requests
// are let through when Redis is unavailable.
type RateLimiter struct {
	client         redis.Cmdable
	requestsPerMin int
	windowSize     time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

func NewRateLimiter(client redis.Cmdable, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:         client,
		requestsPerMin: cfg.RequestsPerMin,
		windowSize:     time.Minute,
		logger:         logger,
		now:            time.Now,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := rateLimitKeyPrefix + c.ClientIP()

		allowed, remaining, err := rl.isAllowed(ctx, key)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.requestsPerMin))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowSize.Seconds())))
			httputil.ErrorWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := rl.now()
	windowStart := now.Add(-rl.windowSize).UnixNano()

	pipe := rl.client.TxPipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})

	countCmd := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.requestsPerMin, fmt.Errorf("executing rate limit pipeline: %w", err)
	}

	count := int(countCmd.Val())
	remaining := max(rl.requestsPerMin-count, 0)

	return count <= rl.requestsPerMin, remaining, nil
}

package middleware

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter is a fixed-window counter per key. A nil limiter (no Redis
// configured) allows everything, so auth endpoints keep working without it.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
	}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{key}, ttl, limit).Int64()
	if err != nil {
		// Redis trouble must not lock users out.
		return true
	}
	return allowed == 1
}

// RateLimit guards an endpoint group with a per-IP window.
func RateLimit(limiter *RedisLimiter, name string, limit int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !limiter.Allow("rl:"+name+":"+c.IP(), limit, window) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"message": "Too many requests, try again later",
				"object":  nil,
				"errors":  []string{"Rate limit exceeded"},
			})
		}
		return c.Next()
	}
}

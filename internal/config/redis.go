package config

// Redis backs the login rate limiter and the list response cache.  Both
// features are optional: when REDIS_URL and REDIS_ADDR are unset, or the
// server does not answer a ping, NewRedisClient returns nil and the
// middlewares degrade to pass-through.

import (
    "context"
    "os"
    "time"

    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog/log"
)

// NewRedisClient instantiates a Redis client from the environment.
// Supported variables are:
//   REDIS_URL – redis:// or rediss:// URL (takes precedence)
//   REDIS_ADDR – host:port of the server
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
func NewRedisClient() *redis.Client {
    var opts *redis.Options
    if raw := os.Getenv("REDIS_URL"); raw != "" {
        parsed, err := redis.ParseURL(raw)
        if err != nil {
            log.Warn().Err(err).Msg("invalid REDIS_URL, cache and rate limit disabled")
            return nil
        }
        opts = parsed
    } else {
        addr := os.Getenv("REDIS_ADDR")
        if addr == "" {
            return nil
        }
        opts = &redis.Options{Addr: addr, Password: os.Getenv("REDIS_PASSWORD"), DB: envInt("REDIS_DB", 0)}
    }
    client := redis.NewClient(opts)
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        log.Warn().Err(err).Str("addr", opts.Addr).Msg("redis unreachable, cache and rate limit disabled")
        _ = client.Close()
        return nil
    }
    return client
}

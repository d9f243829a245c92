package config

import "time"

// RateLimitConfig sizes the token bucket in front of POST /login.
type RateLimitConfig struct {
	Enabled        bool
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	TTL            time.Duration
	KeyStrategy    string // ip, route or ip_route
	Prefix         string
	Debug          bool
}

// LoadRateLimitConfig reads LOGIN_RATE_LIMIT_* variables. The defaults allow
// a burst of ten attempts per client address, refilled one every six seconds.
func LoadRateLimitConfig() RateLimitConfig {
	cfg := RateLimitConfig{
		Enabled:        envBool("LOGIN_RATE_LIMIT_ENABLED", true),
		Capacity:       envInt("LOGIN_RATE_LIMIT_CAPACITY", 10),
		RefillTokens:   envInt("LOGIN_RATE_LIMIT_REFILL_TOKENS", 1),
		RefillInterval: envDur("LOGIN_RATE_LIMIT_REFILL_INTERVAL", 6*time.Second),
		TTL:            envDur("LOGIN_RATE_LIMIT_TTL", 10*time.Minute),
		KeyStrategy:    getenv("LOGIN_RATE_LIMIT_KEY_STRATEGY", "ip_route"),
		Prefix:         getenv("LOGIN_RATE_LIMIT_PREFIX", "club:rl"),
		Debug:          envBool("LOGIN_RATE_LIMIT_DEBUG", false),
	}
	cfg.Capacity = max(cfg.Capacity, 1)
	cfg.RefillTokens = max(cfg.RefillTokens, 1)
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	// A bucket must outlive a few refills or it resets to full too early.
	cfg.TTL = max(cfg.TTL, 5*cfg.RefillInterval)
	return cfg
}

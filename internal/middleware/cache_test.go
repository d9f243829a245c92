package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/sports-club/internal/config"
)

func cacheCfg() config.CacheConfig {
	return config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "test:cache",
		MaxBodyBytes: 1 << 20,
	}
}

// listServer counts how often the list handler really runs.
func listServer(rdb *redis.Client, calls *int) *echo.Echo {
	cfg := cacheCfg()
	e := echo.New()
	e.GET("/items", func(c echo.Context) error {
		*calls++
		return c.JSON(http.StatusOK, []string{"a", "b"})
	}, NewRedisCache(cfg, rdb, "items"))
	e.POST("/items", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, echo.Map{"ok": true})
	}, PurgeCache(cfg, rdb, "items"))
	e.POST("/items/fail", func(c echo.Context) error {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "nope"})
	}, PurgeCache(cfg, rdb, "items"))
	return e
}

func serve(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRedisCacheHitAndPurge(t *testing.T) {
	_, rdb := newRedis(t)
	calls := 0
	e := listServer(rdb, &calls)

	first := serve(e, http.MethodGet, "/items")
	if first.Header().Get("X-Cache") != "MISS" || calls != 1 {
		t.Fatalf("first GET: X-Cache=%q calls=%d", first.Header().Get("X-Cache"), calls)
	}
	second := serve(e, http.MethodGet, "/items")
	if second.Header().Get("X-Cache") != "HIT" || calls != 1 {
		t.Fatalf("second GET: X-Cache=%q calls=%d", second.Header().Get("X-Cache"), calls)
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached body %q differs from %q", second.Body.String(), first.Body.String())
	}
	if got, want := second.Header().Get(echo.HeaderContentType), first.Header().Get(echo.HeaderContentType); got != want {
		t.Errorf("cached content type = %q, want %q", got, want)
	}

	// A rejected write leaves the cache alone.
	serve(e, http.MethodPost, "/items/fail")
	serve(e, http.MethodGet, "/items")
	if calls != 1 {
		t.Fatalf("failed write purged the cache: calls=%d", calls)
	}

	serve(e, http.MethodPost, "/items")
	third := serve(e, http.MethodGet, "/items")
	if third.Header().Get("X-Cache") != "MISS" || calls != 2 {
		t.Fatalf("GET after write: X-Cache=%q calls=%d", third.Header().Get("X-Cache"), calls)
	}
}

func TestRedisCacheQueryIsPartOfKey(t *testing.T) {
	for _, strategy := range []string{"route_query", "route", "method_route", ""} {
		t.Run("strategy="+strategy, func(t *testing.T) {
			_, rdb := newRedis(t)
			cfg := cacheCfg()
			cfg.KeyStrategy = strategy
			e := echo.New()
			e.GET("/my-courts", func(c echo.Context) error {
				return c.JSON(http.StatusOK, []string{c.QueryParam("email")})
			}, NewRedisCache(cfg, rdb, "courts"))

			serve(e, http.MethodGet, "/my-courts?email=a@b.c")
			rec := serve(e, http.MethodGet, "/my-courts?email=x@y.z")
			if rec.Header().Get("X-Cache") != "MISS" || !strings.Contains(rec.Body.String(), "x@y.z") {
				t.Fatalf("X-Cache=%q body=%s, want a fresh answer for the second member",
					rec.Header().Get("X-Cache"), rec.Body.String())
			}
			if rec := serve(e, http.MethodGet, "/my-courts?email=a@b.c"); !strings.Contains(rec.Body.String(), "a@b.c") {
				t.Errorf("cached answer for first member = %s", rec.Body.String())
			}
		})
	}
}

func TestRedisCacheDisabledWithoutRedis(t *testing.T) {
	calls := 0
	e := listServer(nil, &calls)
	serve(e, http.MethodGet, "/items")
	rec := serve(e, http.MethodGet, "/items")
	if calls != 2 || rec.Header().Get("X-Cache") != "" {
		t.Fatalf("calls=%d X-Cache=%q, want pass-through", calls, rec.Header().Get("X-Cache"))
	}
}

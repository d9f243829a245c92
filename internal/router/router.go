package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/iliyamo/sports-club/internal/config"
	"github.com/iliyamo/sports-club/internal/handler"
	"github.com/iliyamo/sports-club/internal/middleware"
	"github.com/iliyamo/sports-club/internal/model"
)

// Cache tags, one per collection whose lists are cached.
const (
	tagCourts        = "courts"
	tagAdminCourts   = "admin-courts"
	tagAnnouncements = "announcements"
)

// Deps carries everything the routes need. Redis may be nil, which turns
// the response cache and the login rate limiter into pass-throughs.
type Deps struct {
	Courts        *handler.CourtHandler
	AdminCourts   *handler.AdminCourtHandler
	Announcements *handler.AnnouncementHandler
	Coupons       *handler.CouponHandler
	Auth          *handler.AuthHandler
	Tokens        middleware.TokenVerifier

	Redis     *redis.Client
	Cache     config.CacheConfig
	RateLimit config.RateLimitConfig
	Logger    zerolog.Logger

	// AdminAuthAll puts every /admin route behind the admin token check.
	// When false only /admin/all-courts is gated.
	AdminAuthAll bool
}

// New builds the echo instance with global middleware and every route.
func New(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()

	// The logger wraps Recover so panics still get an access-log line.
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS()) // any origin
	e.Use(echomw.BodyLimit("1M"))

	RegisterRoutes(e)
	RegisterPublic(e, d)
	RegisterAuth(e, d)
	RegisterAdmin(e, d)
	return e
}

// RegisterRoutes registers the liveness endpoints.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/healthz", handler.Health)
}

// RegisterPublic registers the member-facing court routes. Reads are cached
// and every successful write purges the court lists.
func RegisterPublic(e *echo.Echo, d Deps) {
	cache := middleware.NewRedisCache(d.Cache, d.Redis, tagCourts)
	purge := middleware.PurgeCache(d.Cache, d.Redis, tagCourts)
	h := d.Courts

	e.GET("/all-court", h.ListCourts, cache)
	e.GET("/all-court/:id", h.GetCourt, cache)
	e.GET("/my-courts", h.MyCourts, cache)
	e.POST("/all-court", h.CreateCourt, purge)
	e.PUT("/all-court/:id", h.UpdateCourtStatus, purge)
	e.DELETE("/all-court/:id", h.DeleteCourt, purge)
}

// RegisterAuth registers the login route behind the login rate limiter.
func RegisterAuth(e *echo.Echo, d Deps) {
	e.POST("/login", d.Auth.Login, middleware.NewTokenBucket(d.RateLimit, d.Redis))
}

// RegisterAdmin registers the /admin routes. /admin/all-courts always
// requires an admin token; the rest only when AdminAuthAll is set.
func RegisterAdmin(e *echo.Echo, d Deps) {
	requireAdmin := []echo.MiddlewareFunc{
		middleware.JWTAuth(d.Tokens),
		middleware.RequireRole(model.RoleAdmin),
	}
	g := e.Group("/admin")
	if d.AdminAuthAll {
		g.Use(requireAdmin...)
		g.GET("/all-courts", d.Auth.ListAccounts)
	} else {
		g.GET("/all-courts", d.Auth.ListAccounts, requireAdmin...)
	}

	// ---- Admin courts ----
	cacheCourts := middleware.NewRedisCache(d.Cache, d.Redis, tagAdminCourts)
	purgeCourts := middleware.PurgeCache(d.Cache, d.Redis, tagAdminCourts)
	g.GET("/courts", d.AdminCourts.List, cacheCourts)
	g.GET("/courts/:id", d.AdminCourts.Get, cacheCourts)
	g.POST("/courts", d.AdminCourts.Create, purgeCourts)
	g.PUT("/courts/:id", d.AdminCourts.Update, purgeCourts)
	g.DELETE("/courts/:id", d.AdminCourts.Delete, purgeCourts)

	// ---- Announcements ----
	cacheAnn := middleware.NewRedisCache(d.Cache, d.Redis, tagAnnouncements)
	purgeAnn := middleware.PurgeCache(d.Cache, d.Redis, tagAnnouncements)
	g.GET("/announcement", d.Announcements.List, cacheAnn)
	g.GET("/announcement/:id", d.Announcements.Get, cacheAnn)
	g.POST("/announcement", d.Announcements.Create, purgeAnn)
	g.PUT("/announcement/:id", d.Announcements.Update, purgeAnn)
	g.DELETE("/announcement/:id", d.Announcements.Delete, purgeAnn)

	// ---- Coupons (create only) ----
	g.POST("/coupons", d.Coupons.Create)
}

package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/sports-club/internal/config"
	"github.com/iliyamo/sports-club/internal/database"
	"github.com/iliyamo/sports-club/internal/handler"
	"github.com/iliyamo/sports-club/internal/queue"
	"github.com/iliyamo/sports-club/internal/repository"
	"github.com/iliyamo/sports-club/internal/router"
	"github.com/iliyamo/sports-club/internal/service"
	"github.com/iliyamo/sports-club/internal/utils"
)

func main() {
	_ = godotenv.Load() // .env is optional
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	cfg := config.Load()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Open(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("document store connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	log.Info().Str("db", cfg.DBName).Msg("pinged deployment, connected to document store")
	db := client.Database(cfg.DBName)

	tokens, err := utils.NewTokenService(cfg.JWTSecret, utils.DefaultAccessTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service")
	}

	var events handler.EventPublisher
	if cfg.EventsOn {
		events = service.NewPublisher(cfg.AMQPURL)
		go func() {
			if err := queue.StartCourtEventConsumer(ctx, cfg.AMQPURL, "logs"); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("court event consumer stopped")
			}
		}()
	}

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	e := router.New(router.Deps{
		Courts:        handler.NewCourtHandler(repository.NewCourtRepo(db.Collection(database.CourtsCollection)), events),
		AdminCourts:   handler.NewAdminCourtHandler(repository.NewAdminCourtRepo(db.Collection(database.AdminCourtsCollection))),
		Announcements: handler.NewAnnouncementHandler(repository.NewAnnouncementRepo(db.Collection(database.AnnouncementsCollection))),
		Coupons:       handler.NewCouponHandler(repository.NewCouponRepo(db.Collection(database.CouponsCollection))),
		Auth:          handler.NewAuthHandler(repository.NewUserRepo(db.Collection(database.UsersCollection)), tokens),
		Tokens:        tokens,
		Redis:         rdb,
		Cache:         config.LoadCacheConfig(),
		RateLimit:     config.LoadRateLimitConfig(),
		Logger:        log.Logger,
		AdminAuthAll:  cfg.AdminAuthAll,
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Bool("admin_auth_all", cfg.AdminAuthAll).Msg("sports server is running")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}

package main // Entry point package

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/himalayancrown/hotel-reservation/internal/config"
	"github.com/himalayancrown/hotel-reservation/internal/handler"
	"github.com/himalayancrown/hotel-reservation/internal/metrics"
	appmw "github.com/himalayancrown/hotel-reservation/internal/middleware"
	"github.com/himalayancrown/hotel-reservation/internal/notify"
	"github.com/himalayancrown/hotel-reservation/internal/queue"
	"github.com/himalayancrown/hotel-reservation/internal/repository"
	"github.com/himalayancrown/hotel-reservation/internal/router"
	"github.com/himalayancrown/hotel-reservation/internal/seed"
	"github.com/himalayancrown/hotel-reservation/internal/service"
	"github.com/himalayancrown/hotel-reservation/internal/store"
	"github.com/himalayancrown/hotel-reservation/internal/validation"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	setupLogging(cfg.Env)

	st, rdb := openStore(cfg)

	users := repository.NewUserRepo(st)
	sessions := repository.NewSessionRepo(st)
	menu := repository.NewMenuRepo(st)
	roomTypes := repository.NewRoomTypeRepo(st)
	tables := repository.NewTableBookingRepo(st)
	stays := repository.NewRoomBookingRepo(st)

	// Provider selection happens once at boot: real credentials mean EmailJS,
	// anything else means every send becomes a log line.
	var provider notify.Provider
	if cfg.EmailJS.Configured() {
		provider = notify.NewEmailJSProvider(cfg.EmailJS.ServiceID, cfg.EmailJS.TemplateID, cfg.EmailJS.PublicKey)
		log.Info().Msg("notifications: emailjs provider active")
	} else {
		provider = notify.LogProvider{}
		log.Info().Msg("notifications: no email credentials, using log provider")
	}
	gateway := notify.NewGateway(provider)

	publisher := queue.NewPublisher()
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Warn().Err(err).Msg("booking event consumer not running")
		}
	}()

	authSvc := service.NewAuthService(users, sessions, cfg.AdminEmailDomain)
	catalogSvc := service.NewCatalogService(menu, roomTypes)
	resSvc := service.NewReservationService(users, tables, stays, gateway, publisher)

	metrics.Register()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := seed.Run(seedCtx, seed.Repos{Users: users, Menu: menu, Rooms: roomTypes, Tables: tables, Stays: stays}); err != nil {
		log.Warn().Err(err).Msg("seeding failed, continuing with whatever the store holds")
	}
	cancelSeed()

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(echomw.Recover())

	router.Register(e, router.Handlers{
		Auth:    handler.NewAuthHandler(cfg, authSvc),
		Booking: handler.NewBookingHandler(resSvc),
		Catalog: handler.NewCatalogHandler(catalogSvc),
		Admin:   handler.NewAdminHandler(resSvc, authSvc, gateway),
	}, router.Middlewares{
		Cache:     appmw.NewRedisCache(config.LoadCacheConfig(), rdb),
		RateLimit: appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	}, cfg.JWTSecret)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Str("store", cfg.StoreDriver).Msg("listening")
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	// Block until SIGINT/SIGTERM, then stop accepting requests and let the
	// in-flight notification and publish tasks finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	resSvc.Drain()
	log.Info().Msg("bye")
}

// setupLogging configures zerolog globally: human-readable console output in
// dev, JSON elsewhere.
func setupLogging(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if env == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// openStore picks the persistence backend from STORE_DRIVER.  The returned
// Redis client may be nil (mysql/memory drivers, or Redis unreachable); the
// cache and rate-limit middleware degrade to pass-through in that case.
func openStore(cfg config.Config) (store.Store, *redis.Client) {
	switch cfg.StoreDriver {
	case "mysql":
		ms, err := store.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("mysql store unavailable")
		}
		return ms, nil
	case "memory":
		log.Warn().Msg("memory store active, data is lost on restart")
		return store.NewMemoryStore(), nil
	default:
		rdb := config.NewRedisClient()
		if rdb == nil {
			log.Warn().Msg("redis unreachable, falling back to memory store")
			return store.NewMemoryStore(), nil
		}
		return store.NewRedisStore(rdb), rdb
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/database"
	"github.com/iliyamo/eventsphere/internal/handler"
	"github.com/iliyamo/eventsphere/internal/logger"
	"github.com/iliyamo/eventsphere/internal/queue"
	"github.com/iliyamo/eventsphere/internal/router"
	"github.com/iliyamo/eventsphere/internal/seed"
	"github.com/iliyamo/eventsphere/internal/service"
)

func main() {
	cfg, err := config.Load()
	log, logCloser := logger.New(logger.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logCloser.Close()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Error("open store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	if store.Close != nil {
		defer func() { _ = store.Close(context.Background()) }()
	}
	if cfg.StoreDriver == config.DriverMemory {
		n, err := seed.Load(ctx, store.Catalog)
		if err != nil {
			log.Error("seed memory store", "err", err)
			os.Exit(1)
		}
		log.Info("memory store seeded", "events", n.Events, "services", n.Services)
	}

	rdb := config.NewRedisClient(config.LoadRedisConfig())
	if rdb != nil {
		defer rdb.Close()
	} else {
		log.Info("redis disabled or unreachable; cache and rate limit off")
	}

	var events service.BookingEvents = service.NopBookingEvents{}
	if cfg.RabbitMQURL != "" {
		events = queue.NewPublisher(cfg.RabbitMQURL, log)
		if cfg.BookingConsumerEnabled {
			out := logger.NewRotatingFile(cfg.BookingLogFile)
			defer out.Close()
			go func() {
				if err := queue.NewConsumer(cfg.RabbitMQURL, out, log).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("booking consumer stopped", "err", err)
				}
			}()
		}
	}
	if cfg.GoogleClientID == "" {
		log.Warn("GOOGLE_CLIENT_ID not set; Google sign-in will be rejected")
	}

	accounts := service.NewAccountService(store.Accounts,
		service.GoogleVerifier{ClientID: cfg.GoogleClientID},
		service.DomainAllowList(cfg.AllowedEmailDomains...),
		cfg.BcryptCost)
	bookings := service.NewBookingService(store.Bookings, store.Catalog, events)
	catalog := service.NewCatalogService(store.Catalog)
	dashboard := service.NewDashboardService(store.Bookings, store.Catalog)

	e := router.New(router.Deps{
		Cfg:       cfg,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Redis:     rdb,
		Log:       log,
		Auth:      handler.NewAuthHandler(cfg, accounts, log),
		Catalog:   handler.NewCatalogHandler(catalog, log),
		Booking:   handler.NewBookingHandler(bookings, log),
		Admin:     handler.NewAdminHandler(bookings, dashboard, log),
	})

	addr := ":" + cfg.Port
	go func() {
		log.Info("listening", "addr", addr, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

// Command seed loads the sample catalog into the configured store.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/iliyamo/eventsphere/internal/config"
	"github.com/iliyamo/eventsphere/internal/database"
	"github.com/iliyamo/eventsphere/internal/logger"
	"github.com/iliyamo/eventsphere/internal/seed"
)

func main() {
	force := flag.Bool("force", false, "seed even when the store already has events")
	flag.Parse()

	cfg, err := config.Load()
	log, closer := logger.New(logger.Options{Level: cfg.LogLevel})
	defer closer.Close()
	if err != nil {
		log.Error("load config", "err", err)
		os.Exit(1)
	}
	if cfg.StoreDriver == config.DriverMemory {
		log.Error("STORE_DRIVER=memory is seeded on server start; choose mongo or mysql")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, err := database.OpenStore(ctx, cfg)
	if err != nil {
		log.Error("open store", "err", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close(context.Background()) }()

	existing, err := store.Catalog.ListEvents(ctx)
	if err != nil {
		log.Error("check existing events", "err", err)
		os.Exit(1)
	}
	if len(existing) > 0 && !*force {
		log.Info("catalog already seeded; use -force to add the sample data again", "events", len(existing))
		return
	}

	n, err := seed.Load(ctx, store.Catalog)
	if err != nil {
		log.Error("seed", "err", err)
		os.Exit(1)
	}
	log.Info("catalog seeded",
		"driver", cfg.StoreDriver,
		"events", n.Events,
		"testimonials", n.Testimonials,
		"services", n.Services,
		"team", n.Team)
}

// Command api runs the storefront/CRM backend.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staysoft_backend/internal/catalog"
	"staysoft_backend/internal/events"
	apphttp "staysoft_backend/internal/http"
	"staysoft_backend/internal/http/router"
	"staysoft_backend/internal/leads"
	leadsservice "staysoft_backend/internal/leads/service"
	"staysoft_backend/internal/notification"
	"staysoft_backend/internal/stores"
	"staysoft_backend/internal/webhook"
	"staysoft_backend/internal/whatsapp"
	"staysoft_backend/migrations"
	"staysoft_backend/platform/cache"
	"staysoft_backend/platform/config"
	"staysoft_backend/platform/db"
	"staysoft_backend/platform/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("development").Error("load config", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
		return err
	}
	log.Info("migrations applied")

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	var statsCache leadsservice.StatsCache
	if cfg.IsRedisEnabled() {
		redisCache := cache.New(cache.Config{
			Addr:     cfg.GetRedisAddr(),
			Password: cfg.GetRedisPassword(),
			DB:       cfg.GetRedisDB(),
		})
		if err := redisCache.Ping(ctx); err != nil {
			return err
		}
		defer redisCache.Close()
		statsCache = redisCache
		log.Info("redis cache connected", "addr", cfg.GetRedisAddr())
	} else {
		log.Warn("redis not configured, stats caching disabled")
	}

	bus := events.NewInMemoryBus(log)

	catalogModule := catalog.NewModule(pool, log)
	catalogModule.RegisterSubscribers(bus)

	leadsModule := leads.NewModule(pool, catalogModule.Service(), bus, statsCache, cfg.GetStatsCacheTTL(), log)
	storesModule := stores.NewModule(pool, catalogModule.Service(), log)
	webhookModule := webhook.NewModule(leadsModule.Service(), storesModule.Service(), cfg, log)

	sender := whatsapp.New(cfg, log)
	notification.New(storesModule.Service(), sender, log).RegisterSubscribers(bus)

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   pool,
		EventBus: bus,
		Modules: []apphttp.Module{
			leadsModule,
			catalogModule,
			storesModule,
			webhookModule,
		},
	}

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", cfg.GetHTTPAddr())
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
	}

	return nil
}

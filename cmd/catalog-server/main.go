package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-catalog/internal/cache/memcache"
	"github.com/goliatone/go-catalog/internal/cache/rediscache"
	"github.com/goliatone/go-catalog/internal/di"
	"github.com/goliatone/go-catalog/pkg/config"
	"github.com/goliatone/go-catalog/pkg/interfaces/cache"
	"github.com/goliatone/go-catalog/pkg/interfaces/logger"
	"github.com/goliatone/go-catalog/pkg/storage"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func main() {
	ctx := context.Background()
	lgr := logger.New()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	backend, closeCache := buildCache(ctx, cfg.Redis, lgr)
	defer closeCache()

	container, err := di.New(di.Options{
		Config:  cfg,
		Storage: storage.NewBunProviders(db),
		Logger:  lgr,
		Cache:   backend,
	})
	if err != nil {
		log.Fatalf("build container: %v", err)
	}

	app := fiber.New(fiber.Config{AppName: "catalog"})
	container.Handlers.SetupRoutes(app)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if container.Reconciler != nil {
		go func() {
			if err := container.Reconciler.Run(runCtx); err != nil && runCtx.Err() == nil {
				lgr.Error("reconciler stopped", logger.Field{Key: "error", Value: err})
			}
		}()
	}

	go func() {
		lgr.Info("server listening", logger.Field{Key: "addr", Value: cfg.Server.Addr})
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lgr.Info("shutting down")
	cancel()
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		lgr.Error("shutdown", logger.Field{Key: "error", Value: err})
	}
}

// loadConfig assembles the runtime configuration from the environment,
// leaving unset sections to their defaults.
func loadConfig() (config.Config, error) {
	return config.Load(map[string]any{
		"server": map[string]any{
			"addr": os.Getenv("CATALOG_SERVER_ADDR"),
		},
		"database": map[string]any{
			"driver": os.Getenv("CATALOG_DB_DRIVER"),
			"dsn":    os.Getenv("CATALOG_DB_DSN"),
		},
		"redis": map[string]any{
			"enabled":  os.Getenv("CATALOG_REDIS_ADDR") != "",
			"addr":     os.Getenv("CATALOG_REDIS_ADDR"),
			"password": os.Getenv("CATALOG_REDIS_PASSWORD"),
		},
		"reconciler": map[string]any{
			"enabled":     os.Getenv("CATALOG_SHEET_PATH") != "",
			"source_path": os.Getenv("CATALOG_SHEET_PATH"),
			"sheet_name":  os.Getenv("CATALOG_SHEET_NAME"),
		},
	})
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*bun.DB, error) {
	switch cfg.Driver {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.DSN)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite":
		sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DSN)
		if err != nil {
			return nil, err
		}
		db := bun.NewDB(sqldb, sqlitedialect.New())
		if err := storage.CreateTables(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// buildCache prefers Redis when configured, falling back to the in-process
// cache when Redis is disabled or unreachable at boot.
func buildCache(ctx context.Context, cfg config.RedisConfig, lgr logger.Logger) (cache.Cache, func()) {
	if !cfg.Enabled {
		return memcache.New(), func() {}
	}

	client := rediscache.New(rediscache.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		lgr.Warn("redis unreachable, using in-process cache",
			logger.Field{Key: "addr", Value: cfg.Addr},
			logger.Field{Key: "error", Value: err})
		client.Close()
		return memcache.New(), func() {}
	}

	return client, func() {
		if err := client.Close(); err != nil {
			lgr.Error("close redis", logger.Field{Key: "error", Value: err})
		}
	}
}

// Package app wires configuration, storage adapters, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/possale/internal/api"
	"github.com/nikolayk812/possale/internal/cache"
	"github.com/nikolayk812/possale/internal/catalog"
	"github.com/nikolayk812/possale/internal/checkout"
	"github.com/nikolayk812/possale/internal/config"
	"github.com/nikolayk812/possale/internal/logging"
	"github.com/nikolayk812/possale/internal/memory"
	"github.com/nikolayk812/possale/internal/port"
	"github.com/nikolayk812/possale/internal/repository"
	"github.com/nikolayk812/possale/internal/sales"
	"github.com/nikolayk812/possale/internal/transfer"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/currency"
)

const startupTimeout = 10 * time.Second

type App struct {
	Router   *gin.Engine
	Registry *prometheus.Registry
}

type adapters struct {
	catalog  port.CatalogRepository
	carts    port.CartRepository
	transfer port.TransferChannel
}

// InitWithConfig builds the application. The returned cleanup releases external connections.
func InitWithConfig(ctx context.Context, cfg config.Config) (*App, func(), error) {
	log := logging.New("bootstrap")

	cur, err := cfg.Currency()
	if err != nil {
		return nil, nil, err
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.Storage.Driver == config.DriverPostgres || cfg.Checkout.TransferDriver == config.DriverPostgres {
		pool, err = newPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, pool.Close)
	}

	var rdb *redis.Client
	if cfg.Checkout.TransferDriver == config.DriverRedis {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() { _ = rdb.Close() })

		if err := rdb.Ping(ctx).Err(); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("rdb.Ping: %w", err)
		}
	}

	ad, err := newAdapters(ctx, cfg, cur, pool, rdb)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	log.Info("adapters ready",
		"storage", cfg.Storage.Driver,
		"transfer", cfg.Checkout.TransferDriver,
		"currency", cur.String(),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	salesSvc := sales.NewService(ad.catalog, ad.carts, ad.transfer, logging.New("sales"))
	checkoutSvc := checkout.NewService(ad.transfer, ad.carts, logging.New("checkout"),
		checkout.WithMaxSnapshotAge(cfg.Checkout.MaxSnapshotAge),
		checkout.WithSubmissionDelay(cfg.Checkout.SubmissionDelay),
		checkout.WithMetrics(checkout.NewMetrics(reg)),
	)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logging.New("http"),
		Registry:       reg,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	},
		api.NewCatalogHandler(ad.catalog),
		api.NewSalesHandler(salesSvc),
		api.NewCheckoutHandler(checkoutSvc),
	)

	return &App{Router: router, Registry: reg}, cleanup, nil
}

func newPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.ParseConfig: %w", err)
	}
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.NewWithConfig: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}

	return pool, nil
}

func newAdapters(ctx context.Context, cfg config.Config, cur currency.Unit, pool *pgxpool.Pool, rdb *redis.Client) (adapters, error) {
	var ad adapters
	codec := transfer.NewCodec(cur)

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		if cfg.Storage.SeedCatalog {
			if err := repository.SeedCatalog(ctx, pool, catalog.Default(cur)); err != nil {
				return adapters{}, fmt.Errorf("repository.SeedCatalog: %w", err)
			}
		}
		ad.catalog = repository.NewCatalog(pool)
		ad.carts = repository.NewCart(pool, cur)
	default:
		items, err := memory.NewCatalog(catalog.Default(cur))
		if err != nil {
			return adapters{}, fmt.Errorf("memory.NewCatalog: %w", err)
		}
		ad.catalog = items
		ad.carts = memory.NewCart(cur)
	}

	switch cfg.Checkout.TransferDriver {
	case config.DriverPostgres:
		ad.transfer = repository.NewTransfer(pool, codec)
	case config.DriverRedis:
		ad.transfer = cache.NewRedisTransfer(rdb, codec, cfg.Checkout.MaxSnapshotAge)
	default:
		ad.transfer = memory.NewTransfer(codec)
	}

	return ad, nil
}

// LoggingOptions maps the log section of cfg onto logging.Options.
func LoggingOptions(cfg config.Config) logging.Options {
	return logging.Options{
		Component:  cfg.App.Name,
		Level:      cfg.Log.Level,
		FilePath:   cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}
}

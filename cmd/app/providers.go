package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/domain/planner"
	"github.com/yanqian/carbon-planner/internal/domain/quickwins"
	"github.com/yanqian/carbon-planner/internal/infra/catalogrepo"
	"github.com/yanqian/carbon-planner/internal/infra/config"
	"github.com/yanqian/carbon-planner/internal/infra/planrepo"
	"github.com/yanqian/carbon-planner/internal/infra/trendstore"
)

func providePlannerConfig(cfg *config.Config) planner.Config {
	return planner.Config{
		RegenCooldown: cfg.Planner.RegenCooldown,
		PlanTTL:       cfg.Planner.PlanTTL,
		TopPopular:    cfg.Planner.TopPopular,
	}
}

func provideOptimizerConfig(cfg *config.Config) quickwins.Config {
	return quickwins.Config{
		MinBudget: cfg.Optimizer.MinBudget,
		MaxBudget: cfg.Optimizer.MaxBudget,
	}
}

// providePgxPool returns a verified connection pool, or nil when Postgres is
// not configured or unreachable. Repositories fall back to memory on nil.
func providePgxPool(cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	dsn := strings.TrimSpace(cfg.Storage.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory repositories")
		return nil
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repositories", "error", err)
		return nil
	}
	if cfg.Storage.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Storage.Postgres.MaxConns
	}
	if cfg.Storage.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Storage.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repositories", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repositories", "error", err)
		pool.Close()
		return nil
	}
	logger.Info("postgres storage enabled")
	return pool
}

func provideCatalogRepository(pool *pgxpool.Pool) catalog.Repository {
	if pool == nil {
		return catalogrepo.NewMemoryRepository()
	}
	return catalogrepo.NewPostgresRepository(pool)
}

func providePlanRepository(pool *pgxpool.Pool) planner.Repository {
	if pool == nil {
		return planrepo.NewMemoryRepository()
	}
	return planrepo.NewPostgresRepository(pool)
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) planner.TrendStore {
	if cfg.Storage.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory trend store", "error", err)
			return trendstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory trend store", "error", err)
			return trendstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory trend store", "error", err)
		} else {
			logger.Info("valkey trend store enabled", "addr", cfg.Storage.Redis.Addr)
			return trendstore.NewValkeyStore(client, "planner")
		}
	}
	return trendstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Storage.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Storage.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Storage.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

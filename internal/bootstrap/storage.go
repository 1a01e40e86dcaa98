package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/QuestCraft_Go/internal/config"
	"github.com/osse101/QuestCraft_Go/internal/database"
	"github.com/osse101/QuestCraft_Go/internal/storage"
)

// OpenStore opens the configured state store and wraps durable backends in the LRU cache
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.StorageDriver {
	case config.DriverMemory:
		store = storage.NewMemoryStore()

	case config.DriverSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf(ErrMsgCreateDataDirFmt, err)
			}
		}
		store, err = storage.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenSQLiteFmt, err)
		}

	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns:        cfg.DBMaxConns,
			MaxConnIdleTime: cfg.DBMaxConnIdleTime,
			MaxConnLifetime: cfg.DBMaxConnLifetime,
			ConnectAttempts: cfg.DBConnectAttempts,
		})
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenPostgresFmt, err)
		}
		if err := database.MigratePool(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgMigratePostgresFmt, err)
		}
		store = storage.NewPostgresStore(pool)

	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriverFmt, cfg.StorageDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StorageDriver)

	if cfg.StorageDriver != config.DriverMemory && cfg.CacheSize > 0 {
		slog.Info(LogMsgCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
		store = storage.NewCachedStore(store, cfg.CacheSize, cfg.CacheTTL)
	}

	return store, nil
}

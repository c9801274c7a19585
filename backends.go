package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gameface/payloadstore/internal/config"
	"github.com/gameface/payloadstore/internal/database"
	"github.com/gameface/payloadstore/internal/payload/repository"
	"github.com/gameface/payloadstore/internal/storage"
	"github.com/gameface/payloadstore/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

const (
	mongoConnectAttempts = 5
	redisConnectTimeout  = 5 * time.Second
)

// backends holds the opened storage repository plus any shared clients.
type backends struct {
	repo    repository.Repository
	redis   *redis.Client
	closers []func(context.Context) error
}

// Close releases every client opened by openBackends.
func (b *backends) Close(ctx context.Context) error {
	var err error
	for i := len(b.closers) - 1; i >= 0; i-- {
		err = multierr.Append(err, b.closers[i](ctx))
	}
	return err
}

// openBackends selects the repository named by STORE_BACKEND and connects Redis
// when either the repository or the rate limiter needs it. fsys is only used by
// the file backend; nil means the OS filesystem.
func openBackends(ctx context.Context, cfg *config.Config, fsys afero.Fs) (_ *backends, err error) {
	b := &backends{}
	defer func() {
		if err != nil {
			err = multierr.Append(err, b.Close(context.Background()))
		}
	}()

	name := filepath.Base(cfg.Store.Path)

	needRedis := cfg.Store.Backend == config.BackendRedis || (cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis)
	if needRedis {
		client, err := database.ConnectRedis(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB, redisConnectTimeout)
		if err != nil {
			return nil, err
		}
		logger.Infof("connected to Redis at %s", cfg.RedisAddr())
		b.redis = client
		b.closers = append(b.closers, func(context.Context) error { return client.Close() })
	}

	switch cfg.Store.Backend {
	case config.BackendFile:
		b.repo = repository.NewFileRepo(fsys, cfg.Store.Path, cfg.Store.AtomicWrite)
	case config.BackendMemory:
		b.repo = repository.NewMemoryRepo()
	case config.BackendRedis:
		b.repo = repository.NewRedisRepo(b.redis, cfg.Redis.KeyPrefix, name)
	case config.BackendMongo:
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, mongoConnectAttempts)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, client.Disconnect)
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		b.repo = repository.NewMongoRepo(col, name)
	case config.BackendMinIO:
		store, err := storage.NewMinIOStorage(ctx, &cfg.MinIO)
		if err != nil {
			return nil, err
		}
		b.repo = repository.NewMinIORepo(store, name)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	logger.Infof("payload storage backend: %s", cfg.Store.Backend)
	return b, nil
}

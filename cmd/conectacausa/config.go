package main

import (
	"context"
	"fmt"

	"conectacausa/internal/db"
	"conectacausa/internal/kv"
	"conectacausa/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func loadConfig(cCtx *cli.Context) (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process(cCtx.String("env-prefix"), c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	switch c.StoreDriver {
	case types.StoreDriverMemory:
	case types.StoreDriverPostgres:
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("set DATABASE_URL for the postgres store")
		}
	case types.StoreDriverS3:
		if c.S3Bucket == "" {
			return nil, fmt.Errorf("set S3_BUCKET for the s3 store")
		}
	case types.StoreDriverRedis:
		if c.RedisAddr == "" {
			return nil, fmt.Errorf("set REDIS_ADDR for the redis store")
		}
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 15
	}

	return c, nil
}

func newLogger(cfg *types.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithError(err).Warn("invalid LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	config, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	return config, nil
}

// openCollections connects the configured backend. The returned func
// releases it.
func openCollections(ctx context.Context, cfg *types.Config) (*kv.Collections, func(), error) {
	var (
		store   kv.Store
		cleanup = func() {}
	)

	switch cfg.StoreDriver {
	case types.StoreDriverPostgres:
		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}

		pg := kv.NewPostgresStore(pool)
		if err := pg.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}

		store, cleanup = pg, pool.Close

	case types.StoreDriverS3:
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return nil, nil, err
		}

		store = kv.NewS3Store(s3.NewFromConfig(awsConfig), cfg.S3Bucket)

	case types.StoreDriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}

		store = kv.NewRedisStore(client)
		cleanup = func() { _ = client.Close() }

	default:
		store = kv.NewMemoryStore()
	}

	return kv.NewCollections(store, cfg.KeyPrefix), cleanup, nil
}

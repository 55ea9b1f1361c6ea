package main

import (
	"context"
	"flag"
	"testing"

	"conectacausa/internal/kv"
	"conectacausa/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func testContext(t *testing.T) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("env-prefix", "CAUSA", "")
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(testContext(t))
	require.NoError(t, err)

	assert.Equal(t, types.StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, kv.DefaultPrefix, cfg.KeyPrefix)
	assert.Equal(t, uint(8080), cfg.ServerPort)
}

func TestLoadConfigDriverRequirements(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr bool
	}{
		{name: "postgres without url", env: map[string]string{"STORE_DRIVER": "postgres"}, wantErr: true},
		{name: "postgres with url", env: map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "postgres://localhost/causa"}},
		{name: "s3 without bucket", env: map[string]string{"STORE_DRIVER": "s3"}, wantErr: true},
		{name: "redis with prefixed addr", env: map[string]string{"CAUSA_STORE_DRIVER": "redis", "CAUSA_REDIS_ADDR": "localhost:6379"}},
		{name: "unknown driver", env: map[string]string{"STORE_DRIVER": "sqlite"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := loadConfig(testContext(t))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOpenCollectionsMemory(t *testing.T) {
	ctx := context.Background()
	collections, closeStore, err := openCollections(ctx, &types.Config{
		StoreDriver: types.StoreDriverMemory,
		KeyPrefix:   kv.DefaultPrefix,
	})
	require.NoError(t, err)
	defer closeStore()

	users, err := kv.Load[types.User](ctx, collections, kv.UsersKey, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

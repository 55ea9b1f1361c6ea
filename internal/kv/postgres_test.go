package kv

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCollectionQuery(t *testing.T) {
	query, args, err := selectCollectionQuery("connect_causa_users")
	require.NoError(t, err)

	assert.Contains(t, query, "FROM conectacausa.collections")
	assert.Contains(t, query, "WHERE key = $1")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"connect_causa_users"}, args)
}

func TestUpsertCollectionQuery(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	query, args, err := upsertCollectionQuery(&collectionRow{
		Key:       "connect_causa_users",
		Value:     []byte("[]"),
		UpdatedAt: now,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO conectacausa.collections")
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value")
	assert.Len(t, args, 3)
	assert.Contains(t, args, "connect_causa_users")
	assert.Contains(t, args, now)
}

func TestCollectionColumns(t *testing.T) {
	assert.Equal(t, []string{"key", "value", "updated_at"}, collectionColumns)
}

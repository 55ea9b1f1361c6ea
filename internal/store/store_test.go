package store

import (
	"context"
	"testing"

	"conectacausa/internal/kv"
	"conectacausa/pkg/types"

	"github.com/stretchr/testify/require"
)

func newCollections(t *testing.T) *kv.Collections {
	t.Helper()
	return kv.NewCollections(kv.NewMemoryStore(), kv.DefaultPrefix)
}

func mustLoad[T kv.Record](t *testing.T, c *kv.Collections, key string) []T {
	t.Helper()
	records, err := kv.Load[T](context.Background(), c, key, nil)
	require.NoError(t, err)
	return records
}

func volunteer(email string) types.NewUser {
	return types.NewUser{
		Name:         "Carla Souza",
		Email:        email,
		Role:         types.RoleVolunteer,
		Skills:       []string{"Inglês"},
		Location:     "Rio de Janeiro, RJ",
		Availability: "Noites",
	}
}

package store

import (
	"context"
	"strings"
	"testing"

	"conectacausa/internal/kv"
	"conectacausa/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSeedUser(t *testing.T) {
	accounts := NewAccountService(newCollections(t))

	user, err := accounts.Login(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, types.RoleVolunteer, user.Role)
}

func TestLoginIsCaseSensitive(t *testing.T) {
	accounts := NewAccountService(newCollections(t))

	_, err := accounts.Login(context.Background(), "ANA@example.com")
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	c := newCollections(t)
	accounts := NewAccountService(c)

	user, err := accounts.Register(ctx, volunteer("carla@example.com"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))
	assert.Equal(t, "carla@example.com", user.Email)

	loggedIn, err := accounts.Login(ctx, "carla@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, loggedIn)

	byID, err := accounts.User(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	users := mustLoad[types.User](t, c, kv.UsersKey)
	assert.Len(t, users, 3, "seed users plus the new one")
}

func TestRegisterDuplicateEmailLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	c := newCollections(t)
	accounts := NewAccountService(c)

	_, err := accounts.Register(ctx, volunteer("carla@example.com"))
	require.NoError(t, err)
	before := mustLoad[types.User](t, c, kv.UsersKey)

	_, err = accounts.Register(ctx, volunteer("carla@example.com"))
	assert.ErrorIs(t, err, types.ErrEmailTaken)

	_, err = accounts.Register(ctx, volunteer("ana@example.com"))
	assert.ErrorIs(t, err, types.ErrEmailTaken, "seed emails count as taken")

	assert.Equal(t, before, mustLoad[types.User](t, c, kv.UsersKey))
}

func TestRegisterGeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	accounts := NewAccountService(newCollections(t))

	a, err := accounts.Register(ctx, volunteer("a@example.com"))
	require.NoError(t, err)
	b, err := accounts.Register(ctx, volunteer("b@example.com"))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input types.NewUser
	}{
		{name: "blank name", input: types.NewUser{Email: "x@example.com", Role: types.RoleVolunteer}},
		{name: "blank email", input: types.NewUser{Name: "X", Role: types.RoleVolunteer}},
		{name: "unknown role", input: types.NewUser{Name: "X", Email: "x@example.com", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCollections(t)
			_, err := NewAccountService(c).Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, types.ErrInvalidInput)

			has, err := c.Has(context.Background(), kv.UsersKey)
			require.NoError(t, err)
			assert.False(t, has)
		})
	}
}

func TestRegisterStoresEmptySkills(t *testing.T) {
	ctx := context.Background()
	input := volunteer("org@example.com")
	input.Role = types.RoleOrganization
	input.Skills = nil

	user, err := NewAccountService(newCollections(t)).Register(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, user.Skills)
}

func TestUserNotFound(t *testing.T) {
	_, err := NewAccountService(newCollections(t)).User(context.Background(), "missing")
	assert.ErrorIs(t, err, types.ErrUserNotFound)
}

func TestAccountCorruptStorage(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore()
	require.NoError(t, store.Put(ctx, kv.DefaultPrefix+kv.UsersKey, []byte(`{"oops":true}`)))

	accounts := NewAccountService(kv.NewCollections(store, kv.DefaultPrefix))

	_, err := accounts.Login(ctx, "ana@example.com")
	assert.ErrorIs(t, err, types.ErrStorageCorruption)

	_, err = accounts.Register(ctx, volunteer("new@example.com"))
	assert.ErrorIs(t, err, types.ErrStorageCorruption)
}

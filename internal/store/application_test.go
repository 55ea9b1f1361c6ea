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

func TestApplyCreatesPendingApplication(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(newCollections(t))

	app, err := repo.Apply(ctx, "user-1", "opp-1")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(app.ID, "app-"))
	assert.Equal(t, types.ApplicationStatusPending, app.Status)
	assert.False(t, app.CreatedAt.IsZero())
}

func TestApplyRejectsBlankIDs(t *testing.T) {
	tests := []struct {
		name          string
		userID        string
		opportunityID string
	}{
		{"blank user", "", "opp-1"},
		{"blank opportunity", "user-1", ""},
		{"whitespace user", "   ", "opp-1"},
		{"both blank", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			c := newCollections(t)
			repo := NewApplicationRepository(c)

			app, err := repo.Apply(ctx, tt.userID, tt.opportunityID)
			require.ErrorIs(t, err, types.ErrInvalidInput)
			assert.Nil(t, app)

			written, err := c.Has(ctx, kv.ApplicationsKey)
			require.NoError(t, err)
			assert.False(t, written)

			views, err := repo.ListForUser(ctx, "user-1")
			require.NoError(t, err)
			assert.Empty(t, views)
		})
	}
}

func TestApplyTwiceKeepsOneApplication(t *testing.T) {
	ctx := context.Background()
	c := newCollections(t)
	repo := NewApplicationRepository(c)

	_, err := repo.Apply(ctx, "user-1", "opp-1")
	require.NoError(t, err)

	_, err = repo.Apply(ctx, "user-1", "opp-1")
	assert.ErrorIs(t, err, types.ErrDuplicateApplication)

	apps := mustLoad[types.Application](t, c, kv.ApplicationsKey)
	assert.Len(t, apps, 1)
}

func TestApplySamePairConcurrently(t *testing.T) {
	ctx := context.Background()
	c := newCollections(t)
	repo := NewApplicationRepository(c)

	errs := make(chan error, 20)
	for range 20 {
		go func() {
			_, err := repo.Apply(ctx, "user-1", "opp-2")
			errs <- err
		}()
	}

	succeeded := 0
	for range 20 {
		if err := <-errs; err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, types.ErrDuplicateApplication)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, mustLoad[types.Application](t, c, kv.ApplicationsKey), 1)
}

func TestApplyDifferentPairs(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(newCollections(t))

	_, err := repo.Apply(ctx, "user-1", "opp-1")
	require.NoError(t, err)
	_, err = repo.Apply(ctx, "user-1", "opp-2")
	require.NoError(t, err)
	_, err = repo.Apply(ctx, "user-2", "opp-1")
	require.NoError(t, err)
}

func TestListForUserHydratesTitlesInInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(newCollections(t))

	_, err := repo.Apply(ctx, "user-1", "opp-3")
	require.NoError(t, err)
	_, err = repo.Apply(ctx, "someone-else", "opp-2")
	require.NoError(t, err)
	_, err = repo.Apply(ctx, "user-1", "opp-1")
	require.NoError(t, err)

	views, err := repo.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "opp-3", views[0].OpportunityID)
	assert.Equal(t, "Desenvolvedor Web (Site Institucional)", views[0].OpportunityTitle)
	assert.Equal(t, "opp-1", views[1].OpportunityID)
	assert.Equal(t, "Professor de Matemática Voluntário", views[1].OpportunityTitle)
}

func TestListForUserDanglingOpportunity(t *testing.T) {
	ctx := context.Background()
	repo := NewApplicationRepository(newCollections(t))

	_, err := repo.Apply(ctx, "user-1", "opp-gone")
	require.NoError(t, err)

	views, err := repo.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, types.RemovedOpportunityTitle, views[0].OpportunityTitle)
}

func TestListForUserWithoutApplications(t *testing.T) {
	views, err := NewApplicationRepository(newCollections(t)).ListForUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestSummary(t *testing.T) {
	ctx := context.Background()
	c := newCollections(t)
	require.NoError(t, kv.Save(ctx, c, kv.ApplicationsKey, []types.Application{
		{ID: "app-1", UserID: "user-1", OpportunityID: "opp-1", Status: types.ApplicationStatusPending},
		{ID: "app-2", UserID: "user-1", OpportunityID: "opp-2", Status: types.ApplicationStatusAccepted},
		{ID: "app-3", UserID: "user-1", OpportunityID: "opp-3", Status: types.ApplicationStatusRejected},
		{ID: "app-4", UserID: "user-2", OpportunityID: "opp-1", Status: types.ApplicationStatusPending},
	}))

	summary, err := NewApplicationRepository(c).Summary(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, types.ApplicationSummary{Total: 3, Pending: 1, Accepted: 1, Rejected: 1}, summary)
}

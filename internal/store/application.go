package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conectacausa/internal/kv"
	"conectacausa/internal/seed"
	"conectacausa/internal/utils"
	"conectacausa/pkg/types"
)

type ApplicationRepository struct {
	collections *kv.Collections
}

func NewApplicationRepository(collections *kv.Collections) *ApplicationRepository {
	return &ApplicationRepository{collections: collections}
}

func (r *ApplicationRepository) applications(ctx context.Context) ([]types.Application, error) {
	apps, err := kv.Load(ctx, r.collections, kv.ApplicationsKey, seed.Applications())
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	return apps, nil
}

// Apply records a pending application. A user can apply to a given
// opportunity at most once; a second attempt fails with
// types.ErrDuplicateApplication. Blank ids fail with types.ErrInvalidInput
// before anything is written.
func (r *ApplicationRepository) Apply(ctx context.Context, userID, opportunityID string) (*types.Application, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(opportunityID) == "" {
		return nil, fmt.Errorf("%w: user id and opportunity id are required", types.ErrInvalidInput)
	}

	app := types.Application{
		ID:            utils.NewID("app"),
		UserID:        userID,
		OpportunityID: opportunityID,
		Status:        types.ApplicationStatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	err := kv.Update(ctx, r.collections, kv.ApplicationsKey, seed.Applications(), func(apps []types.Application) ([]types.Application, error) {
		for _, existing := range apps {
			if existing.UserID == userID && existing.OpportunityID == opportunityID {
				return nil, types.ErrDuplicateApplication
			}
		}
		return append(apps, app), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply: %w", err)
	}

	return &app, nil
}

// ListForUser returns the user's applications in the order they were made,
// each carrying its opportunity's title. Applications pointing at an
// opportunity that no longer exists get types.RemovedOpportunityTitle.
func (r *ApplicationRepository) ListForUser(ctx context.Context, userID string) ([]types.ApplicationView, error) {
	apps, err := r.applications(ctx)
	if err != nil {
		return nil, err
	}

	opps, err := kv.Load(ctx, r.collections, kv.OpportunitiesKey, seed.Opportunities())
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}

	titles := make(map[string]string, len(opps))
	for _, opp := range opps {
		if _, ok := titles[opp.ID]; !ok {
			titles[opp.ID] = opp.Title
		}
	}

	out := make([]types.ApplicationView, 0)
	for _, app := range apps {
		if app.UserID != userID {
			continue
		}

		title, ok := titles[app.OpportunityID]
		if !ok {
			title = types.RemovedOpportunityTitle
		}

		out = append(out, types.ApplicationView{Application: app, OpportunityTitle: title})
	}

	return out, nil
}

// Summary counts the user's applications by status.
func (r *ApplicationRepository) Summary(ctx context.Context, userID string) (types.ApplicationSummary, error) {
	var summary types.ApplicationSummary

	apps, err := r.applications(ctx)
	if err != nil {
		return summary, err
	}

	for _, app := range apps {
		if app.UserID != userID {
			continue
		}

		summary.Total++
		switch app.Status {
		case types.ApplicationStatusPending:
			summary.Pending++
		case types.ApplicationStatusAccepted:
			summary.Accepted++
		case types.ApplicationStatusRejected:
			summary.Rejected++
		}
	}

	return summary, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"conectacausa/internal/kv"
	"conectacausa/internal/seed"
	"conectacausa/internal/utils"
	"conectacausa/pkg/types"
)

type OpportunityRepository struct {
	collections *kv.Collections
}

func NewOpportunityRepository(collections *kv.Collections) *OpportunityRepository {
	return &OpportunityRepository{collections: collections}
}

// List returns every opportunity in storage order.
func (r *OpportunityRepository) List(ctx context.Context) ([]types.Opportunity, error) {
	opps, err := kv.Load(ctx, r.collections, kv.OpportunitiesKey, seed.Opportunities())
	if err != nil {
		return nil, fmt.Errorf("failed to load opportunities: %w", err)
	}
	return opps, nil
}

func (r *OpportunityRepository) Opportunity(ctx context.Context, opportunityID string) (*types.Opportunity, error) {
	opps, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, opp := range opps {
		if opp.ID == opportunityID {
			return &opp, nil
		}
	}

	return nil, types.ErrOpportunityNotFound
}

// Create appends a new opportunity. creatorName is copied onto the record as
// the organization's display name and is not kept in sync afterwards. The
// organization id is trusted as given.
func (r *OpportunityRepository) Create(ctx context.Context, input types.NewOpportunity, creatorName string) (*types.Opportunity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	skills := input.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	opp := types.Opportunity{
		ID:               utils.NewID("opp"),
		OrganizationID:   input.OrganizationID,
		OrganizationName: creatorName,
		Title:            input.Title,
		Description:      input.Description,
		RequiredSkills:   skills,
		Location:         input.Location,
		Schedule:         input.Schedule,
		CreatedAt:        time.Now().UTC(),
	}

	err := kv.Update(ctx, r.collections, kv.OpportunitiesKey, seed.Opportunities(), func(opps []types.Opportunity) ([]types.Opportunity, error) {
		return append(opps, opp), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create opportunity: %w", err)
	}

	return &opp, nil
}

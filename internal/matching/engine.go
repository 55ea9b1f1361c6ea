// Package matching scores and ranks opportunities against a volunteer's
// skills and location.
package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"conectacausa/pkg/types"
)

const (
	// LocationBonus is added when the opportunity is in the volunteer's
	// location or is remote.
	LocationBonus = 20
	MaxScore      = 100
)

type OpportunityLister interface {
	List(ctx context.Context) ([]types.Opportunity, error)
}

// Engine ranks the stored opportunities for a profile. It never writes.
type Engine struct {
	opportunities OpportunityLister
}

func NewEngine(opportunities OpportunityLister) *Engine {
	return &Engine{opportunities: opportunities}
}

func (e *Engine) Matches(ctx context.Context, profile *types.User) ([]types.MatchResult, error) {
	opps, err := e.opportunities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return Rank(profile, opps), nil
}

// Rank scores every opportunity and orders the results by score, highest
// first. Equal scores keep the order of opps.
func Rank(profile *types.User, opps []types.Opportunity) []types.MatchResult {
	skills := make(map[string]struct{}, len(profile.Skills))
	for _, skill := range profile.Skills {
		skills[strings.ToLower(skill)] = struct{}{}
	}

	results := make([]types.MatchResult, 0, len(opps))
	for _, opp := range opps {
		results = append(results, score(profile, skills, opp))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

func score(profile *types.User, skills map[string]struct{}, opp types.Opportunity) types.MatchResult {
	matched := 0
	reasons := make([]string, 0)

	for _, required := range opp.RequiredSkills {
		required = strings.ToLower(required)
		if _, ok := skills[required]; ok {
			matched++
			reasons = append(reasons, fmt.Sprintf("Habilidade compatível: %s", required))
		}
	}

	value := float64(matched) / float64(max(len(opp.RequiredSkills), 1)) * 100

	if opp.Location == profile.Location || opp.Location == types.RemoteLocation {
		value += LocationBonus
		reasons = append(reasons, fmt.Sprintf("Localização favorável: %s", opp.Location))
	}

	return types.MatchResult{
		Opportunity:  opp,
		MatchScore:   clamp(int(math.Round(value))),
		MatchReasons: reasons,
	}
}

func clamp(v int) int {
	return max(0, min(v, MaxScore))
}

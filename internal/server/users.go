package server

import (
	"net/http"

	"conectacausa/internal/metrics"

	"github.com/alexedwards/flow"
)

func (s *Service) handleGetMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := s.accounts.User(ctx, flow.Param(ctx, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	results, err := s.matcher.Matches(ctx, user)
	if err != nil {
		s.writeError(w, err)
		return
	}

	scores := make([]int, 0, len(results))
	for _, result := range results {
		scores = append(scores, result.MatchScore)
	}
	metrics.RecordMatches(scores...)

	s.writeJSON(w, http.StatusOK, results)
}

func (s *Service) handleGetApplications(w http.ResponseWriter, r *http.Request) {
	views, err := s.applications.ListForUser(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, views)
}

func (s *Service) handleGetApplicationSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.applications.Summary(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, summary)
}

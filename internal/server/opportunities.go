package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"conectacausa/internal/metrics"
	"conectacausa/internal/utils"
	"conectacausa/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/sirupsen/logrus"
)

// newOpportunityForm is the posted form. The creating organization comes
// from the URL, not the form.
type newOpportunityForm struct {
	Title          string   `form:"title"`
	Description    string   `form:"description"`
	RequiredSkills []string `form:"required_skills"`
	Location       string   `form:"location"`
	Schedule       string   `form:"schedule"`
}

func (s *Service) handleListOpportunities(w http.ResponseWriter, r *http.Request) {
	opps, err := s.opportunities.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, opps)
}

func (s *Service) handleGetOpportunity(w http.ResponseWriter, r *http.Request) {
	opp, err := s.opportunities.Opportunity(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, opp)
}

func (s *Service) handlePostOpportunity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creator, err := s.accounts.User(ctx, flow.Param(ctx, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	if creator.Role != types.RoleOrganization {
		s.writeError(w, fmt.Errorf("%w: only organization accounts can post opportunities", types.ErrInvalidInput))
		return
	}

	if err := r.ParseForm(); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", types.ErrInvalidInput, err))
		return
	}

	var input newOpportunityForm
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", types.ErrInvalidInput, err))
		return
	}

	location := strings.TrimSpace(input.Location)
	if location == "" {
		location = creator.Location
	}

	opp, err := s.opportunities.Create(ctx, types.NewOpportunity{
		OrganizationID: creator.ID,
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		RequiredSkills: utils.SplitList(input.RequiredSkills),
		Location:       location,
		Schedule:       strings.TrimSpace(input.Schedule),
	}, creator.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.WithFields(logrus.Fields{
		"opportunity_id":  opp.ID,
		"organization_id": opp.OrganizationID,
	}).Info("opportunity created")

	s.writeJSON(w, http.StatusCreated, opp)
}

func (s *Service) handlePostApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := flow.Param(ctx, "id")

	opportunityID := strings.TrimSpace(r.FormValue("opportunity_id"))
	if opportunityID == "" {
		metrics.RecordApplication(metrics.ResultInvalid)
		s.writeError(w, fmt.Errorf("%w: opportunity_id is required", types.ErrInvalidInput))
		return
	}

	app, err := s.applications.Apply(ctx, userID, opportunityID)
	if err != nil {
		if errors.Is(err, types.ErrDuplicateApplication) {
			metrics.RecordApplication(metrics.ResultConflict)
		} else {
			metrics.RecordApplication(metrics.ResultError)
		}
		s.writeError(w, err)
		return
	}

	metrics.RecordApplication(metrics.ResultOK)
	s.logger.WithFields(logrus.Fields{
		"application_id": app.ID,
		"user_id":        userID,
		"opportunity_id": opportunityID,
	}).Info("application submitted")

	s.writeJSON(w, http.StatusCreated, app)
}

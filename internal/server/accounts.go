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

func (s *Service) handlePostLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	email := r.FormValue("email")
	if strings.TrimSpace(email) == "" {
		s.writeError(w, fmt.Errorf("%w: email is required", types.ErrInvalidInput))
		return
	}

	user, err := s.accounts.Login(ctx, email)
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Info("login failed")
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *Service) handlePostRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", types.ErrInvalidInput, err))
		return
	}

	var input types.NewUser
	if err := decoder.Decode(&input, r.PostForm); err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", types.ErrInvalidInput, err))
		return
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Skills = utils.SplitList(input.Skills)

	user, err := s.accounts.Register(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrEmailTaken):
			metrics.RecordRegistration(metrics.ResultConflict)
		case errors.Is(err, types.ErrInvalidInput):
			metrics.RecordRegistration(metrics.ResultInvalid)
		default:
			metrics.RecordRegistration(metrics.ResultError)
		}
		s.writeError(w, err)
		return
	}

	metrics.RecordRegistration(metrics.ResultOK)
	s.logger.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role":    user.Role,
	}).Info("user registered")

	s.writeJSON(w, http.StatusCreated, user)
}

func (s *Service) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.accounts.User(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

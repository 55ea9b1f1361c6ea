package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"conectacausa/internal/matching"
	"conectacausa/internal/metrics"
	"conectacausa/internal/store"
	"conectacausa/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	accounts      *store.AccountService
	opportunities *store.OpportunityRepository
	applications  *store.ApplicationRepository
	matcher       *matching.Engine

	handler http.Handler
	server  *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	accounts *store.AccountService,
	opportunities *store.OpportunityRepository,
	applications *store.ApplicationRepository,
	matcher *matching.Engine,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:        logger,
		config:        config,
		accounts:      accounts,
		opportunities: opportunities,
		applications:  applications,
		matcher:       matcher,
		handler:       mux,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.LoggingMiddleware)

	s.handle(r, http.MethodGet, "/healthz", s.handleHealth)

	s.handle(r, http.MethodPost, "/login", s.handlePostLogin)
	s.handle(r, http.MethodPost, "/register", s.handlePostRegister)

	s.handle(r, http.MethodGet, "/opportunities", s.handleListOpportunities)
	s.handle(r, http.MethodGet, "/opportunities/:id", s.handleGetOpportunity)

	s.handle(r, http.MethodGet, "/users/:id", s.handleGetUser)
	s.handle(r, http.MethodPost, "/users/:id/opportunities", s.handlePostOpportunity)
	s.handle(r, http.MethodGet, "/users/:id/matches", s.handleGetMatches)
	s.handle(r, http.MethodGet, "/users/:id/applications", s.handleGetApplications)
	s.handle(r, http.MethodPost, "/users/:id/applications", s.handlePostApplication)
	s.handle(r, http.MethodGet, "/users/:id/applications/summary", s.handleGetApplicationSummary)

	r.Handle("/metrics", metrics.Handler(), http.MethodGet)
}

// handle registers h and records request metrics under the route pattern.
func (s *Service) handle(r *flow.Mux, method, pattern string, h http.HandlerFunc) {
	r.HandleFunc(pattern, func(w http.ResponseWriter, req *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		h(rw, req)

		metrics.RecordHTTPRequest(method, pattern, rw.statusCode, time.Since(started))
	}, method)
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

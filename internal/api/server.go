// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package api exposes the content service over HTTP. Handlers orchestrate
// the write gate, field validation, the store, and the list policies; all
// of the actual rules live in internal/core and internal/security.
package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/estrelasdocampo/painel/internal/db"
	"github.com/estrelasdocampo/painel/internal/i18n"
	"github.com/estrelasdocampo/painel/internal/logging"
	"github.com/estrelasdocampo/painel/internal/security"
)

// adminPasswordHeader is the fallback location for the administrator secret
// when it is not present in the JSON payload.
const adminPasswordHeader = "X-Admin-Password"

// Server handles the public and admin HTTP API. Construct it with New and
// inject the store and authorizer; there is no package-level state, so
// several servers can coexist (tests rely on this).
type Server struct {
	store db.Store
	auth  security.Authorizer

	mux      *http.ServeMux
	registry *prometheus.Registry
	metrics  *metrics

	// now is the clock used for the "upcoming" day boundary. Overridable in
	// tests; defaults to time.Now.
	now func() time.Time
}

// New builds a Server with its routes and metrics registered.
func New(store db.Store, auth security.Authorizer) *Server {
	s := &Server{
		store:    store,
		auth:     auth,
		mux:      http.NewServeMux(),
		registry: prometheus.NewRegistry(),
		now:      time.Now,
	}
	s.metrics = newMetrics(s.registry)
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Start blocks serving the API on addr until the listener fails.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}
	logging.Infof("api: listening on %s", addr)
	return srv.ListenAndServe()
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /api/eventos", s.instrument("eventos_public", s.handleListEventos))
	s.mux.HandleFunc("GET /api/eventos/all", s.instrument("eventos_all", s.handleListAllEventos))
	s.mux.HandleFunc("POST /api/eventos", s.instrument("eventos_create", s.handleCreateEvento))
	s.mux.HandleFunc("PUT /api/eventos/{id}", s.instrument("eventos_update", s.handleUpdateEvento))
	s.mux.HandleFunc("DELETE /api/eventos/{id}", s.instrument("eventos_delete", s.handleDeleteEvento))

	s.mux.HandleFunc("GET /api/noticias", s.instrument("noticias_public", s.handleListNoticias))
	s.mux.HandleFunc("GET /api/noticias/all", s.instrument("noticias_all", s.handleListAllNoticias))
	s.mux.HandleFunc("POST /api/noticias", s.instrument("noticias_create", s.handleCreateNoticia))
	s.mux.HandleFunc("PUT /api/noticias/{id}", s.instrument("noticias_update", s.handleUpdateNoticia))
	s.mux.HandleFunc("DELETE /api/noticias/{id}", s.instrument("noticias_delete", s.handleDeleteNoticia))

	s.mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.mux.HandleFunc("GET /{$}", s.handleHealth)

	// Unknown API routes get a JSON 404 instead of the default text page.
	s.mux.HandleFunc("/api/", s.handleAPINotFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(i18n.T("api.health")))
}

func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	logging.Warnf("api: no route for %s %s", r.Method, r.URL.Path)
	s.writeError(w, http.StatusNotFound, "api.route_not_found")
}

// authorize runs the write gate. The candidate secret comes from the JSON
// payload when present, otherwise from the admin password header. On
// failure it writes the 401 response and returns false; handlers must not
// touch validation or the store in that case.
func (s *Server) authorize(w http.ResponseWriter, r *http.Request, payloadSecret string) bool {
	candidate := payloadSecret
	if candidate == "" {
		candidate = r.Header.Get(adminPasswordHeader)
	}
	err := s.auth.Authorize(candidate)
	switch {
	case err == nil:
		return true
	case err == security.ErrSecretMissing:
		logging.Debugf("api: %s %s rejected: no secret", r.Method, r.URL.Path)
		s.writeError(w, http.StatusUnauthorized, "auth.password_required")
	default:
		logging.Debugf("api: %s %s rejected: wrong secret", r.Method, r.URL.Path)
		s.writeError(w, http.StatusUnauthorized, "auth.password_incorrect")
	}
	return false
}

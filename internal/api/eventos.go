// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/estrelasdocampo/painel/internal/core"
	"github.com/estrelasdocampo/painel/internal/db"
	"github.com/estrelasdocampo/painel/internal/i18n"
	"github.com/estrelasdocampo/painel/internal/logging"
	"github.com/estrelasdocampo/painel/internal/model"
)

// eventoPayload is the mutating request body: the event fields plus the
// administrator secret. The secret stops here; only the embedded Evento
// continues into validation and storage.
type eventoPayload struct {
	model.Evento
	Password string `json:"password"`
}

func (s *Server) handleListEventos(w http.ResponseWriter, r *http.Request) {
	eventos, err := s.store.GetAllEventos()
	if err != nil {
		logging.Errorf("api: listing eventos: %v", err)
		s.writeError(w, http.StatusInternalServerError, "eventos.error_list")
		return
	}
	writeJSON(w, http.StatusOK, core.UpcomingEventos(eventos, s.now()))
}

func (s *Server) handleListAllEventos(w http.ResponseWriter, r *http.Request) {
	eventos, err := s.store.GetAllEventos()
	if err != nil {
		logging.Errorf("api: listing all eventos: %v", err)
		s.writeError(w, http.StatusInternalServerError, "eventos.error_list_all")
		return
	}
	writeJSON(w, http.StatusOK, core.AllEventos(eventos))
}

func (s *Server) handleCreateEvento(w http.ResponseWriter, r *http.Request) {
	var p eventoPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "api.bad_payload")
		return
	}
	if !s.authorize(w, r, p.Password) {
		return
	}
	ev := p.Evento
	ev.ID = 0 // identity is store-assigned, never caller-supplied
	if err := core.ValidateEvento(ev); err != nil {
		s.writeInvalid(w, err)
		return
	}
	created, err := s.store.AddEvento(ev)
	if err != nil {
		logging.Errorf("api: creating evento: %v", err)
		s.writeError(w, http.StatusInternalServerError, "eventos.error_save")
		return
	}
	logging.Infof("api: created %s", created)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": i18n.T("eventos.created"),
		"evento":  created,
	})
}

func (s *Server) handleUpdateEvento(w http.ResponseWriter, r *http.Request) {
	var p eventoPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "api.bad_payload")
		return
	}
	if !s.authorize(w, r, p.Password) {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	ev := p.Evento
	if err := core.ValidateEvento(ev); err != nil {
		s.writeInvalid(w, err)
		return
	}
	updated, err := s.store.UpdateEvento(id, ev)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "eventos.not_found")
		return
	}
	if err != nil {
		logging.Errorf("api: updating evento %d: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "eventos.error_update")
		return
	}
	logging.Infof("api: updated %s", updated)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": i18n.T("eventos.updated"),
		"evento":  updated,
	})
}

func (s *Server) handleDeleteEvento(w http.ResponseWriter, r *http.Request) {
	// The secret may arrive in a small JSON body or in the header; a missing
	// or malformed body is fine for deletes.
	var p struct {
		Password string `json:"password"`
	}
	_ = json.NewDecoder(r.Body).Decode(&p)
	if !s.authorize(w, r, p.Password) {
		return
	}
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	err := s.store.DeleteEvento(id)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "eventos.not_found")
		return
	}
	if err != nil {
		logging.Errorf("api: deleting evento %d: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "eventos.error_delete")
		return
	}
	logging.Infof("api: deleted evento #%d", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": i18n.T("eventos.deleted")})
}

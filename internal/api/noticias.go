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

type noticiaPayload struct {
	model.Noticia
	Password string `json:"password"`
}

func (s *Server) handleListNoticias(w http.ResponseWriter, r *http.Request) {
	noticias, err := s.store.GetAllNoticias()
	if err != nil {
		logging.Errorf("api: listing noticias: %v", err)
		s.writeError(w, http.StatusInternalServerError, "noticias.error_list")
		return
	}
	writeJSON(w, http.StatusOK, core.RecentNoticias(noticias))
}

func (s *Server) handleListAllNoticias(w http.ResponseWriter, r *http.Request) {
	noticias, err := s.store.GetAllNoticias()
	if err != nil {
		logging.Errorf("api: listing all noticias: %v", err)
		s.writeError(w, http.StatusInternalServerError, "noticias.error_list_all")
		return
	}
	writeJSON(w, http.StatusOK, core.AllNoticias(noticias))
}

func (s *Server) handleCreateNoticia(w http.ResponseWriter, r *http.Request) {
	var p noticiaPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.writeError(w, http.StatusBadRequest, "api.bad_payload")
		return
	}
	if !s.authorize(w, r, p.Password) {
		return
	}
	nt := p.Noticia
	nt.ID = 0
	if err := core.ValidateNoticia(nt); err != nil {
		s.writeInvalid(w, err)
		return
	}
	created, err := s.store.AddNoticia(nt)
	if err != nil {
		logging.Errorf("api: creating noticia: %v", err)
		s.writeError(w, http.StatusInternalServerError, "noticias.error_save")
		return
	}
	logging.Infof("api: created %s", created)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": i18n.T("noticias.created"),
		"noticia": created,
	})
}

func (s *Server) handleUpdateNoticia(w http.ResponseWriter, r *http.Request) {
	var p noticiaPayload
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
	nt := p.Noticia
	if err := core.ValidateNoticia(nt); err != nil {
		s.writeInvalid(w, err)
		return
	}
	updated, err := s.store.UpdateNoticia(id, nt)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "noticias.not_found")
		return
	}
	if err != nil {
		logging.Errorf("api: updating noticia %d: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "noticias.error_update")
		return
	}
	logging.Infof("api: updated %s", updated)
	writeJSON(w, http.StatusOK, map[string]any{
		"message": i18n.T("noticias.updated"),
		"noticia": updated,
	})
}

func (s *Server) handleDeleteNoticia(w http.ResponseWriter, r *http.Request) {
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
	err := s.store.DeleteNoticia(id)
	if errors.Is(err, db.ErrNotFound) {
		s.writeError(w, http.StatusNotFound, "noticias.not_found")
		return
	}
	if err != nil {
		logging.Errorf("api: deleting noticia %d: %v", id, err)
		s.writeError(w, http.StatusInternalServerError, "noticias.error_delete")
		return
	}
	logging.Infof("api: deleted noticia #%d", id)
	writeJSON(w, http.StatusOK, map[string]string{"message": i18n.T("noticias.deleted")})
}

// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/estrelasdocampo/painel/internal/core"
	"github.com/estrelasdocampo/painel/internal/i18n"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends the standard error envelope with a localized message.
func (s *Server) writeError(w http.ResponseWriter, status int, messageID string) {
	writeJSON(w, status, map[string]string{"error": i18n.T(messageID)})
}

// writeInvalid sends a 400 for a failed validation. The error already
// carries its localized message.
func (s *Server) writeInvalid(w http.ResponseWriter, err error) {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
		return
	}
	s.writeError(w, http.StatusBadRequest, "api.bad_payload")
}

// pathID extracts and checks the {id} path segment. On a malformed id it
// writes the 400 response and returns false.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		s.writeError(w, http.StatusBadRequest, "api.invalid_id")
		return 0, false
	}
	return id, true
}

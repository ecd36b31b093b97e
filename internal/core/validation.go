// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package core holds the content rules of the service: field validation,
// date parsing, and the filter/sort policies applied to list results.
// Everything here is pure and deterministic; there is no I/O.
package core

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/estrelasdocampo/painel/internal/i18n"
	"github.com/estrelasdocampo/painel/internal/model"
)

// ValidationError marks input rejected before it reaches storage. The
// message is resolved through the catalog so API responses follow the
// configured language.
type ValidationError struct {
	MessageID string
}

func (e *ValidationError) Error() string {
	return i18n.T(e.MessageID)
}

func invalid(messageID string) error {
	return &ValidationError{MessageID: messageID}
}

const (
	maxTituloLen = 100
	maxLocalLen  = 100
	maxImagemLen = 255
)

var timePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsValidDateString reports whether s is a DD/MM/YYYY string denoting a
// real calendar date.
func IsValidDateString(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// IsValidTimeString reports whether s is a HH:MM string with hours 00-23
// and minutes 00-59. Single-digit hours ("1:00") are rejected.
func IsValidTimeString(s string) bool {
	return timePattern.MatchString(s)
}

// IsValidURL reports whether s is a well-formed absolute http or https URL.
func IsValidURL(s string) bool {
	if s == "" {
		return false
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Host != ""
}

// ValidateEvento checks an event's fields. Create and update go through
// this same function; the ID is not inspected here because identity is
// store-assigned.
func ValidateEvento(e model.Evento) error {
	if e.Titulo == "" || e.Data == "" || e.Horario == "" || e.Local == "" {
		return invalid("eventos.all_required")
	}
	if !IsValidDateString(e.Data) {
		return invalid("validate.date_format")
	}
	if !IsValidTimeString(e.Horario) {
		return invalid("validate.time_format")
	}
	if utf8.RuneCountInString(e.Titulo) > maxTituloLen || utf8.RuneCountInString(e.Local) > maxLocalLen {
		return invalid("eventos.too_long")
	}
	return nil
}

// ValidateNoticia checks a news item's fields. Texto is required but has no
// upper bound.
func ValidateNoticia(n model.Noticia) error {
	if n.Titulo == "" || n.Texto == "" || n.Imagem == "" || n.Data == "" {
		return invalid("noticias.all_required")
	}
	if !IsValidDateString(n.Data) {
		return invalid("validate.date_format")
	}
	if !IsValidURL(n.Imagem) {
		return invalid("validate.image_url")
	}
	if utf8.RuneCountInString(n.Titulo) > maxTituloLen {
		return invalid("noticias.titulo_too_long")
	}
	if len(n.Imagem) > maxImagemLen {
		return invalid("noticias.imagem_too_long")
	}
	return nil
}

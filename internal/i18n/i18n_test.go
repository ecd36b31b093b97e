// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"strings"
	"testing"
)

func TestDefaultLanguageIsPortuguese(t *testing.T) {
	Init("pt")
	got := T("eventos.created")
	if !strings.Contains(got, "Evento") {
		t.Errorf("T(eventos.created) = %q, want Portuguese message", got)
	}
}

func TestEnglishCatalog(t *testing.T) {
	Init("en")
	defer Init("pt")
	got := T("eventos.created")
	if !strings.Contains(got, "Event") || strings.Contains(got, "sucesso") {
		t.Errorf("T(eventos.created) = %q, want English message", got)
	}
}

func TestUnknownIDFallsBackToID(t *testing.T) {
	Init("pt")
	if got := T("nope.missing"); got != "nope.missing" {
		t.Errorf("T(nope.missing) = %q", got)
	}
}

func TestUninitializedLocalizerSelfHeals(t *testing.T) {
	localizer = nil
	if got := T("eventos.created"); got == "" {
		t.Error("T with nil localizer returned empty string")
	}
}

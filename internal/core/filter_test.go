// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"fmt"
	"testing"
	"time"

	"github.com/estrelasdocampo/painel/internal/model"
)

// fixedNow is mid-day on 15/06/2026 so "today" events are still upcoming.
var fixedNow = time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)

func evento(id int, data string) model.Evento {
	return model.Evento{ID: id, Titulo: fmt.Sprintf("Evento %d", id), Data: data, Horario: "19:00", Local: "Campo"}
}

func noticia(id int, data string) model.Noticia {
	return model.Noticia{ID: id, Titulo: fmt.Sprintf("Noticia %d", id), Texto: "texto", Imagem: "https://cdn.example.com/img.png", Data: data}
}

func TestUpcomingEventosFiltersAndSorts(t *testing.T) {
	in := []model.Evento{
		evento(1, "20/06/2026"), // upcoming
		evento(2, "14/06/2026"), // yesterday, dropped
		evento(3, "15/06/2026"), // today, kept
		evento(4, "bogus"),      // unparseable, dropped
		evento(5, "01/01/2027"), // upcoming, latest
	}
	got := UpcomingEventos(in, fixedNow)
	wantIDs := []int{3, 1, 5}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d eventos, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got evento %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestUpcomingEventosCap(t *testing.T) {
	var in []model.Evento
	for i := 1; i <= 25; i++ {
		in = append(in, evento(i, fmt.Sprintf("%02d/07/2026", i)))
	}
	got := UpcomingEventos(in, fixedNow)
	if len(got) != PublicEventoLimit {
		t.Fatalf("got %d eventos, want cap %d", len(got), PublicEventoLimit)
	}
	// The cap keeps the soonest events, not an arbitrary slice.
	if got[0].Data != "01/07/2026" || got[len(got)-1].Data != "20/07/2026" {
		t.Errorf("cap kept wrong range: first %s, last %s", got[0].Data, got[len(got)-1].Data)
	}
}

func TestUpcomingEventosStableOnTies(t *testing.T) {
	in := []model.Evento{
		evento(7, "20/06/2026"),
		evento(3, "20/06/2026"),
		evento(9, "20/06/2026"),
	}
	got := UpcomingEventos(in, fixedNow)
	wantIDs := []int{7, 3, 9}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("tie order broken at %d: got %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestAllEventosDescendingDropsUnparseable(t *testing.T) {
	in := []model.Evento{
		evento(1, "01/01/2020"), // past is kept in the admin listing
		evento(2, "??"),
		evento(3, "01/01/2027"),
		evento(4, "15/06/2026"),
	}
	got := AllEventos(in)
	wantIDs := []int{3, 4, 1}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d eventos, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got evento %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestRecentNoticiasKeepsUnparseableLast(t *testing.T) {
	in := []model.Noticia{
		noticia(1, "01/05/2026"),
		noticia(2, "not a date"),
		noticia(3, "10/05/2026"),
		noticia(4, ""),
	}
	got := RecentNoticias(in)
	wantIDs := []int{3, 1, 2, 4}
	if len(got) != len(wantIDs) {
		t.Fatalf("got %d noticias, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("position %d: got noticia %d, want %d", i, got[i].ID, id)
		}
	}
}

func TestRecentNoticiasCap(t *testing.T) {
	var in []model.Noticia
	for i := 1; i <= 15; i++ {
		in = append(in, noticia(i, fmt.Sprintf("%02d/04/2026", i)))
	}
	got := RecentNoticias(in)
	if len(got) != PublicNoticiaLimit {
		t.Fatalf("got %d noticias, want cap %d", len(got), PublicNoticiaLimit)
	}
	if got[0].Data != "15/04/2026" {
		t.Errorf("newest noticia should come first, got %s", got[0].Data)
	}
}

func TestAllNoticiasUncapped(t *testing.T) {
	var in []model.Noticia
	for i := 1; i <= 15; i++ {
		in = append(in, noticia(i, fmt.Sprintf("%02d/04/2026", i)))
	}
	got := AllNoticias(in)
	if len(got) != 15 {
		t.Fatalf("admin listing must not be capped: got %d", len(got))
	}
}

func TestFiltersReturnEmptySliceNotNil(t *testing.T) {
	if UpcomingEventos(nil, fixedNow) == nil {
		t.Error("UpcomingEventos(nil) returned nil")
	}
	if AllEventos(nil) == nil {
		t.Error("AllEventos(nil) returned nil")
	}
	if RecentNoticias(nil) == nil {
		t.Error("RecentNoticias(nil) returned nil")
	}
	if AllNoticias(nil) == nil {
		t.Error("AllNoticias(nil) returned nil")
	}
}

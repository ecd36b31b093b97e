// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import (
	"sort"
	"time"

	"github.com/estrelasdocampo/painel/internal/model"
)

// List caps for the public views. The admin views are never truncated.
const (
	PublicEventoLimit  = 20
	PublicNoticiaLimit = 10
)

// Note the asymmetry between the two entities: event lists drop items whose
// date cannot be parsed, news lists keep them and merely sort them as
// earliest. This mirrors the site's long-standing behavior per entity.
// TODO(product): decide whether news with broken dates should be hidden too.

type datedEvento struct {
	ev   model.Evento
	when time.Time
}

// UpcomingEventos returns the public agenda: events dated today (UTC) or
// later, oldest first, capped at PublicEventoLimit. Events with unparseable
// or past dates are dropped. Ties keep their storage order.
func UpcomingEventos(eventos []model.Evento, now time.Time) []model.Evento {
	today := StartOfDayUTC(now)
	dated := make([]datedEvento, 0, len(eventos))
	for _, ev := range eventos {
		when, ok := ParseDate(ev.Data)
		if !ok || when.Before(today) {
			continue
		}
		dated = append(dated, datedEvento{ev: ev, when: when})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].when.Before(dated[j].when)
	})
	out := make([]model.Evento, 0, len(dated))
	for _, d := range dated {
		out = append(out, d.ev)
	}
	if len(out) > PublicEventoLimit {
		out = out[:PublicEventoLimit]
	}
	return out
}

// AllEventos returns the admin view: every event with a parseable date,
// newest first, no cap.
func AllEventos(eventos []model.Evento) []model.Evento {
	dated := make([]datedEvento, 0, len(eventos))
	for _, ev := range eventos {
		when, ok := ParseDate(ev.Data)
		if !ok {
			continue
		}
		dated = append(dated, datedEvento{ev: ev, when: when})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].when.After(dated[j].when)
	})
	out := make([]model.Evento, 0, len(dated))
	for _, d := range dated {
		out = append(out, d.ev)
	}
	return out
}

type datedNoticia struct {
	nt   model.Noticia
	when time.Time
	ok   bool
}

func sortNoticiasDesc(noticias []model.Noticia) []model.Noticia {
	dated := make([]datedNoticia, 0, len(noticias))
	for _, nt := range noticias {
		when, ok := ParseDate(nt.Data)
		dated = append(dated, datedNoticia{nt: nt, when: when, ok: ok})
	}
	sort.SliceStable(dated, func(i, j int) bool {
		a, b := dated[i], dated[j]
		if a.ok != b.ok {
			// Unparseable dates count as earliest, so in a descending
			// list they sink to the end.
			return a.ok
		}
		if !a.ok {
			return false
		}
		return a.when.After(b.when)
	})
	out := make([]model.Noticia, 0, len(dated))
	for _, d := range dated {
		out = append(out, d.nt)
	}
	return out
}

// RecentNoticias returns the public news feed: newest first, capped at
// PublicNoticiaLimit. Items with unparseable dates are kept at the end.
func RecentNoticias(noticias []model.Noticia) []model.Noticia {
	out := sortNoticiasDesc(noticias)
	if len(out) > PublicNoticiaLimit {
		out = out[:PublicNoticiaLimit]
	}
	return out
}

// AllNoticias returns the admin view: every news item, newest first, no cap.
func AllNoticias(noticias []model.Noticia) []model.Noticia {
	return sortNoticiasDesc(noticias)
}

// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the data structures used throughout the application.
// Field and JSON names follow the public wire format of the site
// (Portuguese), which predates this service and must stay stable.
package model

import "fmt"

// Evento is a scheduled club event as shown on the public agenda.
// The ID is assigned by the store on insert and never changes afterwards.
// Data is the calendar date as DD/MM/YYYY text; ordering and "upcoming"
// decisions are derived from it at read time, never stored.
type Evento struct {
	ID      int    `json:"id"`
	Titulo  string `json:"titulo"`
	Data    string `json:"data"`
	Horario string `json:"horario"`
	Local   string `json:"local"`
}

// String returns a short human-readable representation for logs.
func (e Evento) String() string {
	return fmt.Sprintf("evento #%d %q (%s %s)", e.ID, e.Titulo, e.Data, e.Horario)
}

// Noticia is a published news article. Imagem is an absolute http(s) URL;
// the image itself is hosted elsewhere.
type Noticia struct {
	ID     int    `json:"id"`
	Titulo string `json:"titulo"`
	Texto  string `json:"texto"`
	Imagem string `json:"imagem"`
	Data   string `json:"data"`
}

// String returns a short human-readable representation for logs.
func (n Noticia) String() string {
	return fmt.Sprintf("noticia #%d %q (%s)", n.ID, n.Titulo, n.Data)
}

// BackupData holds a full content dump for export and restore.
type BackupData struct {
	Version  int       `yaml:"version"`
	Eventos  []Evento  `yaml:"eventos"`
	Noticias []Noticia `yaml:"noticias"`
}

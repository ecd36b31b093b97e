// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import "github.com/estrelasdocampo/painel/internal/model"

// Store defines the interface for all database operations of the content
// service. This allows for multiple database backends to be implemented.
//
// List results come back in storage (insertion) order; the filter/sort
// policies for the public and admin views live in internal/core, not here.
type Store interface {
	// Eventos
	GetAllEventos() ([]model.Evento, error)
	AddEvento(e model.Evento) (model.Evento, error)
	UpdateEvento(id int, e model.Evento) (model.Evento, error)
	DeleteEvento(id int) error

	// Noticias
	GetAllNoticias() ([]model.Noticia, error)
	AddNoticia(n model.Noticia) (model.Noticia, error)
	UpdateNoticia(id int, n model.Noticia) (model.Noticia, error)
	DeleteNoticia(id int) error

	// Backup
	ExportData() (*model.BackupData, error)
	ImportData(data *model.BackupData) error

	// Close releases the underlying connection pool.
	Close() error
}

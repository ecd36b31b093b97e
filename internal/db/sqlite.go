// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the SQLite implementation of the database store.
package db

import (
	"github.com/estrelasdocampo/painel/internal/model"
	"github.com/uptrace/bun"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SqliteStore is the SQLite implementation of the Store interface. SQLite is
// the default backend and the one used by the test suite.
type SqliteStore struct {
	bun *bun.DB
}

func (s *SqliteStore) GetAllEventos() ([]model.Evento, error) {
	return GetAllEventosBun(s.bun)
}

func (s *SqliteStore) AddEvento(e model.Evento) (model.Evento, error) {
	return AddEventoBun(s.bun, e)
}

func (s *SqliteStore) UpdateEvento(id int, e model.Evento) (model.Evento, error) {
	return UpdateEventoBun(s.bun, id, e)
}

func (s *SqliteStore) DeleteEvento(id int) error {
	return DeleteEventoBun(s.bun, id)
}

func (s *SqliteStore) GetAllNoticias() ([]model.Noticia, error) {
	return GetAllNoticiasBun(s.bun)
}

func (s *SqliteStore) AddNoticia(n model.Noticia) (model.Noticia, error) {
	return AddNoticiaBun(s.bun, n)
}

func (s *SqliteStore) UpdateNoticia(id int, n model.Noticia) (model.Noticia, error) {
	return UpdateNoticiaBun(s.bun, id, n)
}

func (s *SqliteStore) DeleteNoticia(id int) error {
	return DeleteNoticiaBun(s.bun, id)
}

func (s *SqliteStore) ExportData() (*model.BackupData, error) {
	return ExportDataBun(s.bun)
}

func (s *SqliteStore) ImportData(data *model.BackupData) error {
	return ImportDataBun(s.bun, data)
}

func (s *SqliteStore) Close() error {
	return s.bun.Close()
}

// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the PostgreSQL implementation of the database store.
// The production site runs on a managed Postgres (DATABASE_URL DSN).
package db

import (
	"github.com/estrelasdocampo/painel/internal/model"
	"github.com/uptrace/bun"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver
)

// PostgresStore is the PostgreSQL implementation of the Store interface.
type PostgresStore struct {
	bun *bun.DB
}

func (s *PostgresStore) GetAllEventos() ([]model.Evento, error) {
	return GetAllEventosBun(s.bun)
}

func (s *PostgresStore) AddEvento(e model.Evento) (model.Evento, error) {
	return AddEventoBun(s.bun, e)
}

func (s *PostgresStore) UpdateEvento(id int, e model.Evento) (model.Evento, error) {
	return UpdateEventoBun(s.bun, id, e)
}

func (s *PostgresStore) DeleteEvento(id int) error {
	return DeleteEventoBun(s.bun, id)
}

func (s *PostgresStore) GetAllNoticias() ([]model.Noticia, error) {
	return GetAllNoticiasBun(s.bun)
}

func (s *PostgresStore) AddNoticia(n model.Noticia) (model.Noticia, error) {
	return AddNoticiaBun(s.bun, n)
}

func (s *PostgresStore) UpdateNoticia(id int, n model.Noticia) (model.Noticia, error) {
	return UpdateNoticiaBun(s.bun, id, n)
}

func (s *PostgresStore) DeleteNoticia(id int) error {
	return DeleteNoticiaBun(s.bun, id)
}

func (s *PostgresStore) ExportData() (*model.BackupData, error) {
	return ExportDataBun(s.bun)
}

func (s *PostgresStore) ImportData(data *model.BackupData) error {
	return ImportDataBun(s.bun, data)
}

func (s *PostgresStore) Close() error {
	return s.bun.Close()
}

// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// This file contains the MySQL implementation of the database store.
package db

import (
	"github.com/estrelasdocampo/painel/internal/model"
	"github.com/uptrace/bun"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// MySQLStore is the MySQL implementation of the Store interface.
type MySQLStore struct {
	bun *bun.DB
}

func (s *MySQLStore) GetAllEventos() ([]model.Evento, error) {
	return GetAllEventosBun(s.bun)
}

func (s *MySQLStore) AddEvento(e model.Evento) (model.Evento, error) {
	return AddEventoBun(s.bun, e)
}

func (s *MySQLStore) UpdateEvento(id int, e model.Evento) (model.Evento, error) {
	return UpdateEventoBun(s.bun, id, e)
}

func (s *MySQLStore) DeleteEvento(id int) error {
	return DeleteEventoBun(s.bun, id)
}

func (s *MySQLStore) GetAllNoticias() ([]model.Noticia, error) {
	return GetAllNoticiasBun(s.bun)
}

func (s *MySQLStore) AddNoticia(n model.Noticia) (model.Noticia, error) {
	return AddNoticiaBun(s.bun, n)
}

func (s *MySQLStore) UpdateNoticia(id int, n model.Noticia) (model.Noticia, error) {
	return UpdateNoticiaBun(s.bun, id, n)
}

func (s *MySQLStore) DeleteNoticia(id int) error {
	return DeleteNoticiaBun(s.bun, id)
}

func (s *MySQLStore) ExportData() (*model.BackupData, error) {
	return ExportDataBun(s.bun)
}

func (s *MySQLStore) ImportData(data *model.BackupData) error {
	return ImportDataBun(s.bun, data)
}

func (s *MySQLStore) Close() error {
	return s.bun.Close()
}

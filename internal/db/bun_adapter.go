// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/estrelasdocampo/painel/internal/model"
	"github.com/uptrace/bun"
)

// EventoModel maps the `eventos` table for Bun queries.
type EventoModel struct {
	bun.BaseModel `bun:"table:eventos"`
	ID            int    `bun:"id,pk,autoincrement"`
	Titulo        string `bun:"titulo"`
	Data          string `bun:"data"`
	Horario       string `bun:"horario"`
	Local         string `bun:"local"`
}

// NoticiaModel maps the `noticias` table for Bun queries.
type NoticiaModel struct {
	bun.BaseModel `bun:"table:noticias"`
	ID            int    `bun:"id,pk,autoincrement"`
	Titulo        string `bun:"titulo"`
	Texto         string `bun:"texto"`
	Imagem        string `bun:"imagem"`
	Data          string `bun:"data"`
}

// --- Mapping helpers (centralized conversions) ---

func eventoModelToModel(m EventoModel) model.Evento {
	return model.Evento{ID: m.ID, Titulo: m.Titulo, Data: m.Data, Horario: m.Horario, Local: m.Local}
}

func eventoToBunModel(e model.Evento) EventoModel {
	return EventoModel{ID: e.ID, Titulo: e.Titulo, Data: e.Data, Horario: e.Horario, Local: e.Local}
}

func noticiaModelToModel(m NoticiaModel) model.Noticia {
	return model.Noticia{ID: m.ID, Titulo: m.Titulo, Texto: m.Texto, Imagem: m.Imagem, Data: m.Data}
}

func noticiaToBunModel(n model.Noticia) NoticiaModel {
	return NoticiaModel{ID: n.ID, Titulo: n.Titulo, Texto: n.Texto, Imagem: n.Imagem, Data: n.Data}
}

// GetAllEventosBun returns all events in insertion order.
func GetAllEventosBun(bdb *bun.DB) ([]model.Evento, error) {
	ctx := context.Background()
	var ms []EventoModel
	if err := bdb.NewSelect().Model(&ms).OrderExpr("id").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Evento, 0, len(ms))
	for _, m := range ms {
		out = append(out, eventoModelToModel(m))
	}
	return out, nil
}

// AddEventoBun inserts a new event and returns the stored record with its
// assigned ID.
func AddEventoBun(bdb *bun.DB, e model.Evento) (model.Evento, error) {
	ctx := context.Background()
	m := eventoToBunModel(e)
	m.ID = 0
	// Use Bun's NewInsert with Returning so the assigned ID comes back in a
	// DB-agnostic way across SQLite, Postgres, and MySQL.
	if _, err := bdb.NewInsert().Model(&m).Column("titulo", "data", "horario", "local").Returning("id").Exec(ctx); err != nil {
		return model.Evento{}, err
	}
	return eventoModelToModel(m), nil
}

// UpdateEventoBun rewrites all mutable fields of an existing event. The ID
// itself is never updated. Returns ErrNotFound when no row matched.
func UpdateEventoBun(bdb *bun.DB, id int, e model.Evento) (model.Evento, error) {
	ctx := context.Background()
	m := eventoToBunModel(e)
	res, err := bdb.NewUpdate().Model(&m).
		Column("titulo", "data", "horario", "local").
		Where("id = ?", id).Exec(ctx)
	if err != nil {
		return model.Evento{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Evento{}, err
	}
	if n == 0 {
		return model.Evento{}, ErrNotFound
	}
	return getEventoBun(ctx, bdb, id)
}

func getEventoBun(ctx context.Context, bdb *bun.DB, id int) (model.Evento, error) {
	var m EventoModel
	err := bdb.NewSelect().Model(&m).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Evento{}, ErrNotFound
	}
	if err != nil {
		return model.Evento{}, err
	}
	return eventoModelToModel(m), nil
}

// DeleteEventoBun removes an event by id. Returns ErrNotFound when no row
// matched.
func DeleteEventoBun(bdb *bun.DB, id int) error {
	ctx := context.Background()
	res, err := bdb.NewDelete().Model((*EventoModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetAllNoticiasBun returns all news items in insertion order.
func GetAllNoticiasBun(bdb *bun.DB) ([]model.Noticia, error) {
	ctx := context.Background()
	var ms []NoticiaModel
	if err := bdb.NewSelect().Model(&ms).OrderExpr("id").Scan(ctx); err != nil {
		return nil, err
	}
	out := make([]model.Noticia, 0, len(ms))
	for _, m := range ms {
		out = append(out, noticiaModelToModel(m))
	}
	return out, nil
}

// AddNoticiaBun inserts a new news item and returns the stored record with
// its assigned ID.
func AddNoticiaBun(bdb *bun.DB, nt model.Noticia) (model.Noticia, error) {
	ctx := context.Background()
	m := noticiaToBunModel(nt)
	m.ID = 0
	if _, err := bdb.NewInsert().Model(&m).Column("titulo", "texto", "imagem", "data").Returning("id").Exec(ctx); err != nil {
		return model.Noticia{}, err
	}
	return noticiaModelToModel(m), nil
}

// UpdateNoticiaBun rewrites all mutable fields of an existing news item.
// Returns ErrNotFound when no row matched.
func UpdateNoticiaBun(bdb *bun.DB, id int, nt model.Noticia) (model.Noticia, error) {
	ctx := context.Background()
	m := noticiaToBunModel(nt)
	res, err := bdb.NewUpdate().Model(&m).
		Column("titulo", "texto", "imagem", "data").
		Where("id = ?", id).Exec(ctx)
	if err != nil {
		return model.Noticia{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Noticia{}, err
	}
	if n == 0 {
		return model.Noticia{}, ErrNotFound
	}
	return getNoticiaBun(ctx, bdb, id)
}

func getNoticiaBun(ctx context.Context, bdb *bun.DB, id int) (model.Noticia, error) {
	var m NoticiaModel
	err := bdb.NewSelect().Model(&m).Where("id = ?", id).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Noticia{}, ErrNotFound
	}
	if err != nil {
		return model.Noticia{}, err
	}
	return noticiaModelToModel(m), nil
}

// DeleteNoticiaBun removes a news item by id. Returns ErrNotFound when no
// row matched.
func DeleteNoticiaBun(bdb *bun.DB, id int) error {
	ctx := context.Background()
	res, err := bdb.NewDelete().Model((*NoticiaModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ExportDataBun reads the full content of both tables for a backup.
func ExportDataBun(bdb *bun.DB) (*model.BackupData, error) {
	eventos, err := GetAllEventosBun(bdb)
	if err != nil {
		return nil, fmt.Errorf("failed to export eventos: %w", err)
	}
	noticias, err := GetAllNoticiasBun(bdb)
	if err != nil {
		return nil, fmt.Errorf("failed to export noticias: %w", err)
	}
	return &model.BackupData{Version: 1, Eventos: eventos, Noticias: noticias}, nil
}

// ImportDataBun replaces all content with the given backup inside a single
// transaction. Record IDs are preserved so links to existing content keep
// working after a restore.
func ImportDataBun(bdb *bun.DB, data *model.BackupData) error {
	ctx := context.Background()
	tx, err := bdb.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Bun requires a WHERE clause on deletes; WherePK-less table wipes go
	// through raw SQL.
	if _, err := tx.ExecContext(ctx, "DELETE FROM eventos"); err != nil {
		return fmt.Errorf("failed to clear eventos: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM noticias"); err != nil {
		return fmt.Errorf("failed to clear noticias: %w", err)
	}

	for _, e := range data.Eventos {
		m := eventoToBunModel(e)
		if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore evento %d: %w", e.ID, err)
		}
	}
	for _, n := range data.Noticias {
		m := noticiaToBunModel(n)
		if _, err := tx.NewInsert().Model(&m).Exec(ctx); err != nil {
			return fmt.Errorf("failed to restore noticia %d: %w", n.ID, err)
		}
	}

	return tx.Commit()
}

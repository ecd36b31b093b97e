// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

package backup

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/estrelasdocampo/painel/internal/model"
)

func TestWriteReadRoundTrip(t *testing.T) {
	in := &model.BackupData{
		Version: 1,
		Eventos: []model.Evento{
			{ID: 1, Titulo: "Treino", Data: "20/06/2026", Horario: "19:00", Local: "Campo"},
		},
		Noticias: []model.Noticia{
			{ID: 3, Titulo: "Título com acentuação", Texto: "Texto.", Imagem: "https://cdn.example.com/a.jpg", Data: "10/05/2026"},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, in); err != nil {
		t.Fatalf("Write: %v", err)
	}

	out, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in: %+v\nout: %+v", in, out)
	}
}

func TestReadRejectsGarbage(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("not a backup"))); err == nil {
		t.Fatal("expected error for non-zstd input")
	}
}

func TestReadRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &model.BackupData{Version: 99}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := Read(&buf); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package backup serializes full content dumps. The on-disk format is
// zstd-compressed YAML, so a dump stays human-inspectable after
// decompression.
package backup

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/zstd"

	"github.com/estrelasdocampo/painel/internal/model"
)

// Write serializes data onto w.
func Write(w io.Writer, data *model.BackupData) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to serialize backup: %w", err)
	}
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create compressor: %w", err)
	}
	if _, err := enc.Write(raw); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write backup: %w", err)
	}
	return enc.Close()
}

// Read deserializes a dump previously produced by Write.
func Read(r io.Reader) (*model.BackupData, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create decompressor: %w", err)
	}
	defer dec.Close()

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}
	var data model.BackupData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse backup: %w", err)
	}
	if data.Version != 1 {
		return nil, fmt.Errorf("unsupported backup version %d", data.Version)
	}
	return &data, nil
}

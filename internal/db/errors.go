// Copyright (c) 2025 Estrelas do Campo
// Painel - content service for the club site
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db contains shared database errors and helpers.
package db

import "errors"

// ErrNotFound is returned when an update or delete targets an identity that
// does not exist (zero rows affected). It is distinct from generic storage
// failures: callers map it to "not found", everything else to a server
// error.
var ErrNotFound = errors.New("record not found")

// Package migrations holds the goose SQL migrations for the Postgres
// document backend.
package migrations

import "embed"

// FS contains every migration file at its root.
//
//go:embed *.sql
var FS embed.FS

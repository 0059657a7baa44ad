package migrations

import "embed"

// SQLite holds the local store schema.
//
//go:embed sqlite/*.sql
var SQLite embed.FS

// Postgres holds the remote sync schema.
//
//go:embed postgres/*.sql
var Postgres embed.FS

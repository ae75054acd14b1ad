// Package migrations embeds the SQL files so the binary carries its own schema.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"

// Package migrations embeds the SQL schema so the binary can create its
// tables without a migrations directory on disk.
package migrations

import "embed"

const PostgresDir = "postgres"

//go:embed postgres/*.sql
var FS embed.FS

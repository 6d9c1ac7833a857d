// Package db embeds the SQL migration files so a production binary can
// run migrations without shipping the migrations directory alongside it.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS

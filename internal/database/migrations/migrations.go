// Package migrations embeds the goose SQL migrations. Schema changes beyond
// the gorm-managed entities are applied additively from here.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS

package migrations

import "embed"

// FS SQL-миграции схемы БД
//
//go:embed *.sql
var FS embed.FS

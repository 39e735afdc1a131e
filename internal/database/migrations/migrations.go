// Package migrations holds the goose migration set for the store file.
package migrations

import (
	"embed"

	"github.com/pressly/goose/v3"
)

// FS holds the SQL migrations.
//
//go:embed *.sql
var FS embed.FS

// GoMigrations returns the migrations written in Go, in version order.
func GoMigrations() []*goose.Migration {
	return []*goose.Migration{
		goose.NewGoMigration(2,
			&goose.GoFunc{RunTx: upLegacyImport},
			&goose.GoFunc{RunTx: downLegacyImport},
		),
	}
}

package app

import (
	"strings"

	"github.com/shrimpsizemoose/skolbok/internal/store"
	"github.com/shrimpsizemoose/skolbok/internal/store/file"
	"github.com/shrimpsizemoose/skolbok/internal/store/postgres"
)

// NewStore picks the backend from the DSN: postgres:// for the JSONB document
// store, anything else is treated as a directory of JSON files.
func NewStore(dsn string) (store.RecordStore, error) {
	if strings.HasPrefix(dsn, "postgres") {
		return postgres.NewPostgresStore(dsn)
	}
	return file.NewFileStore(strings.TrimPrefix(dsn, "file://"))
}

package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/shrimpsizemoose/trekker/logger"
)

// PostgresStore holds each collection as a single JSONB document, one row per
// collection. Mutations still rewrite the whole collection, which keeps the
// semantics identical to the file backend while moving durability to the
// database.
type PostgresStore struct {
	db *sqlx.DB
}

const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data JSONB NOT NULL
	)`

func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure collections table: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(collection string, out interface{}) error {
	var data []byte
	err := s.db.Get(&data, `SELECT data FROM collections WHERE name = $1`, collection)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		logger.Error.Printf("Error reading collection %s: %v", collection, err)
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Error.Printf("Error decoding collection %s: %v", collection, err)
		return nil
	}
	return nil
}

func (s *PostgresStore) Save(collection string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Error.Printf("Error encoding collection %s: %v", collection, err)
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO collections (name, data)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data
	`, collection, data)
	if err != nil {
		logger.Error.Printf("Error writing collection %s: %v", collection, err)
		return err
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

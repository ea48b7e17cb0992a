// Package store writes exported tables to a SQLite database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"text2phenotype.com/relex/export"
	"text2phenotype.com/relex/logger"
)

type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Open opens or creates the database at path. ":memory:" is accepted.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// a single connection serializes writers and keeps in-memory databases alive
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Store{db: db, logger: logger.NewLogger("SQLite Store")}, nil
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Write creates the table when missing and appends all rows in one
// transaction.
func (s *Store) Write(ctx context.Context, table *export.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("table %s: begin: %w", table.Name, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	columns := make([]string, len(table.Columns))
	placeholders := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = quote(c)
		placeholders[i] = "?"
	}
	name := quote(table.Name)
	create := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", name, strings.Join(columns, ", "))
	if _, err := tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("table %s: create: %w", table.Name, err)
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		name, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("table %s: prepare: %w", table.Name, err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(table.Columns))
	for n, row := range table.Data {
		if len(row) != len(columns) {
			return fmt.Errorf("table %s: row %d has %d values for %d columns", table.Name, n, len(row), len(columns))
		}
		for i, v := range row {
			if args[i], err = sqlValue(v); err != nil {
				return fmt.Errorf("table %s column %s: %w", table.Name, table.Columns[i], err)
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("table %s: insert: %w", table.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("table %s: commit: %w", table.Name, err)
	}
	s.logger.Debug().Str("table", table.Name).Int("rows", len(table.Data)).Msg("Table written")
	return nil
}

func sqlValue(v interface{}) (interface{}, error) {
	switch v.(type) {
	case string, bool, int, float64:
		return v, nil
	default:
		return export.FormatValue(v)
	}
}

func quote(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

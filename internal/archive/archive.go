// Package archive records which chapters were already downloaded so that
// repeated runs over the same manga only fetch new chapters.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Archive struct {
	db *sql.DB
}

func Open(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("archive dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	// chapter workers write concurrently
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS archive (
		entry TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		added_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init archive: %w", err)
	}

	return &Archive{db: db}, nil
}

func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) Has(ctx context.Context, entry string) (bool, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archive WHERE entry = ?`, entry).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("archive lookup %q: %w", entry, err)
	}
	return n > 0, nil
}

func (a *Archive) Add(ctx context.Context, entry, url string) error {
	_, err := a.db.ExecContext(ctx, `INSERT OR IGNORE INTO archive (entry, url) VALUES (?, ?)`, entry, url)
	if err != nil {
		return fmt.Errorf("archive add %q: %w", entry, err)
	}
	return nil
}

// Len returns the number of recorded entries.
func (a *Archive) Len(ctx context.Context) (int, error) {
	var n int
	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archive`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

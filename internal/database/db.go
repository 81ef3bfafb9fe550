// Package database opens the optional sqlite reference databases that ship
// alongside the analyzer, such as the statute-text database consumed by the
// legal-reference repository.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// OpenReference opens a reference database read-only. Reference databases
// are static data: the analyzer never writes to them, and several analysis
// processes may share one file.
func OpenReference(path string) (*sql.DB, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve database path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("reference database not found at %s: %w", absPath, err)
	}

	connStr := absPath + "?_pragma=query_only(1)&_pragma=busy_timeout(5000)"
	conn, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open reference database: %w", err)
	}

	// Reference lookups are rare and read-only; one connection is plenty.
	conn.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping reference database: %w", err)
	}

	return conn, nil
}

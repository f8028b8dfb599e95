// database/connection.go
package database

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Open opens the file-backed SQLite store. The sync pipeline is the
// only writer; the lookup API reads the same file concurrently, so a
// busy timeout keeps readers from failing outright while a batch
// commit is in flight.
func Open(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// table-lock contention between the loaders' transactions.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", path, err)
	}

	log.Printf("Database: opened %s\n", path)
	return db, nil
}

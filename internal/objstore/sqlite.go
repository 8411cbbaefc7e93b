//go:build !js

package objstore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sensiblebit/pemscan"
	_ "modernc.org/sqlite"
)

// sqliteObjectRow maps a row in the SQLite objects table. Kind is stored as
// its numeric bit flag so masks stay composable across tools.
type sqliteObjectRow struct {
	SHA256    string    `db:"sha256"`
	Kind      int       `db:"kind"`
	Length    int       `db:"length"`
	DER       []byte    `db:"der"`
	Source    string    `db:"source"`
	FirstSeen time.Time `db:"first_seen"`
}

// openMemDB creates an in-memory SQLite database with the objstore schema.
func openMemDB() (*sqlx.DB, error) {
	// Pin to a single connection — each :memory: connection is a separate
	// database, so connection pooling must be disabled. PRAGMAs are set
	// via the DSN so they apply automatically to reconnections.
	dsn := "file::memory:?_pragma=temp_store(2)&_pragma=journal_mode(off)&_pragma=synchronous(off)"
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return db, nil
}

// initSchema creates the objects table.
func initSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS objects (
			sha256     text PRIMARY KEY,
			kind       integer NOT NULL,
			length     integer NOT NULL,
			der        blob NOT NULL,
			source     text NOT NULL,
			first_seen timestamp NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating objects table: %w", err)
	}
	return nil
}

// SaveToSQLite writes the store's catalog to a SQLite file at path.
// The catalog is staged in memory and flushed with VACUUM INTO, which
// produces a clean, compact copy in a single operation.
func SaveToSQLite(store *MemStore, path string) error {
	db, err := openMemDB()
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	const insert = `
		INSERT OR IGNORE INTO objects (sha256, kind, length, der, source, first_seen)
		VALUES (:sha256, :kind, :length, :der, :source, :first_seen)`
	for _, rec := range store.All() {
		row := sqliteObjectRow{
			SHA256:    rec.SHA256,
			Kind:      int(rec.Kind),
			Length:    rec.Length,
			DER:       rec.DER,
			Source:    rec.Source,
			FirstSeen: rec.FirstSeen,
		}
		if row.DER == nil {
			// Zero-length objects still satisfy the NOT NULL column.
			row.DER = []byte{}
		}
		if _, err := db.NamedExec(insert, row); err != nil {
			return fmt.Errorf("inserting object %s: %w", rec.SHA256, err)
		}
	}

	if _, err := db.Exec("VACUUM INTO ?", path); err != nil {
		return fmt.Errorf("saving database to %s: %w", path, err)
	}
	slog.Info("catalog saved", "path", path, "objects", store.Len())
	return nil
}

// LoadFromSQLite opens a SQLite catalog file and copies its objects into the
// given MemStore. Records already present in the store keep their original
// attribution.
func LoadFromSQLite(store *MemStore, path string) error {
	db, err := openMemDB()
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	// ATTACH the on-disk database and copy data into memory.
	if _, err := db.Exec("ATTACH DATABASE ? AS diskdb", path); err != nil {
		return fmt.Errorf("attaching database %s: %w", path, err)
	}
	defer func() {
		if _, detachErr := db.Exec("DETACH DATABASE diskdb"); detachErr != nil {
			slog.Warn("detaching database", "path", path, "error", detachErr)
		}
	}()

	if _, err := db.Exec("INSERT OR IGNORE INTO objects SELECT * FROM diskdb.objects"); err != nil {
		return fmt.Errorf("loading objects from %s: %w", path, err)
	}

	var rows []sqliteObjectRow
	if err := db.Select(&rows, "SELECT * FROM objects ORDER BY first_seen, sha256"); err != nil {
		return fmt.Errorf("reading objects: %w", err)
	}
	for _, row := range rows {
		if _, exists := store.byDigest[row.SHA256]; exists {
			continue
		}
		store.byDigest[row.SHA256] = &Record{
			SHA256:    row.SHA256,
			Kind:      pemscan.Kind(row.Kind),
			Length:    row.Length,
			DER:       row.DER,
			Source:    row.Source,
			FirstSeen: row.FirstSeen,
		}
		store.order = append(store.order, row.SHA256)
	}
	return nil
}

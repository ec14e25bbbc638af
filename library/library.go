// Package library keeps saved units in a local SQLite database, keyed by
// display name.
package library

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/VicenteCartas/megameklab/engine/save"
	"github.com/VicenteCartas/megameklab/logging"
	"github.com/VicenteCartas/megameklab/types"
)

// ErrNotFound is returned when no unit has the requested name.
var ErrNotFound = errors.New("unit not found")

// Entry is the listing view of a stored unit.
type Entry struct {
	ID      string
	Name    string
	Chassis string
	Model   string
	Tonnage float64
	Updated time.Time
}

// Store is a unit library backed by one SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the library at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating library dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open library: %w", err)
	}
	// One connection keeps the pragmas in force for every statement.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS units (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		chassis TEXT NOT NULL,
		model TEXT NOT NULL,
		tonnage REAL NOT NULL,
		data TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	logging.Debug("library", "opened %s", path)
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores u under name, replacing any unit of the same name. It returns
// the unit's id, which survives replacement.
func (s *Store) Put(ctx context.Context, name string, u *types.Unit) (string, error) {
	if name == "" {
		return "", errors.New("library: empty unit name")
	}
	data, err := save.Save(u)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	err = s.db.QueryRowContext(ctx, `INSERT INTO units (id, name, chassis, model, tonnage, data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			chassis = excluded.chassis,
			model = excluded.model,
			tonnage = excluded.tonnage,
			data = excluded.data,
			updated_at = excluded.updated_at
		RETURNING id`,
		id, name, u.Chassis, u.Model, u.Tonnage, string(data), time.Now().UTC().Format(time.RFC3339Nano),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("storing %q: %w", name, err)
	}
	logging.Info("library", "stored %q", name)
	return id, nil
}

// Get loads the unit stored under name.
func (s *Store) Get(ctx context.Context, name string) (*types.Unit, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM units WHERE name = ?`, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}
	return save.Load([]byte(data))
}

// List returns every stored unit ordered by name.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, chassis, model, tonnage, updated_at FROM units ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var updated string
		if err := rows.Scan(&e.ID, &e.Name, &e.Chassis, &e.Model, &e.Tonnage, &updated); err != nil {
			return nil, fmt.Errorf("scanning unit: %w", err)
		}
		e.Updated, _ = time.Parse(time.RFC3339Nano, updated)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Delete removes the unit stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM units WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("deleting %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// Export stores u under name with any file extension dropped, so the store
// can stand in for a directory exporter.
func (s *Store) Export(ctx context.Context, name string, u *types.Unit) (string, error) {
	name = trimExt(name)
	if _, err := s.Put(ctx, name, u); err != nil {
		return "", err
	}
	return "library:" + name, nil
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}

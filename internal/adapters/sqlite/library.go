package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

const schemaVersion = "1"

// Library implements ports.SnapshotLibrary using SQLite
type Library struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Ensure Library implements SnapshotLibrary
var _ ports.SnapshotLibrary = (*Library)(nil)

// NewLibrary creates a new SQLite snapshot library
func NewLibrary() *Library {
	return &Library{now: time.Now}
}

// Path returns the database file in use
func (l *Library) Path() string {
	return l.dbPath
}

// Open initializes the library at path. An empty path selects the default
// location under the XDG data directory.
func (l *Library) Open(path string) error {
	if path == "" {
		path = DefaultPath()
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	l.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create library directory: %w", err)
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	l.db = db

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			widgets INTEGER NOT NULL,
			document TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_snapshots_created ON snapshots(created_at);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (l *Library) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// DefaultPath returns the library location under the XDG data directory
func DefaultPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tkbuilder", "library.db")
}

// Save stores doc under name, replacing an earlier snapshot with that name
func (l *Library) Save(name string, doc domain.Document) (*ports.Snapshot, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &application.ValidationError{Field: "snapshot", Message: "snapshot name is required"}
	}

	data, err := domain.MarshalDocument(doc, "")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}

	snap := &ports.Snapshot{
		ID:        uuid.NewString(),
		Name:      name,
		Title:     doc.Title,
		Widgets:   domain.Count(doc.Content),
		CreatedAt: l.now().UTC().Truncate(time.Millisecond),
	}

	tx, err := l.beginTx()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := tx.DeleteByName(name); err != nil {
		return nil, fmt.Errorf("failed to replace snapshot: %w", err)
	}
	if err := tx.Insert(snap, data); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return snap, nil
}

// Load decodes the snapshot stored under name
func (l *Library) Load(name string) (domain.Document, error) {
	var data string
	err := l.db.QueryRow(`SELECT document FROM snapshots WHERE name = ?`, strings.TrimSpace(name)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Document{}, &application.SnapshotError{Name: name}
	}
	if err != nil {
		return domain.Document{}, err
	}

	doc, err := domain.UnmarshalDocument([]byte(data))
	if err != nil {
		return domain.Document{}, &application.TransportError{Source: "snapshot " + name, Err: err}
	}
	return doc, nil
}

// List returns every snapshot, newest first
func (l *Library) List() ([]ports.Snapshot, error) {
	rows, err := l.db.Query(`
		SELECT id, name, title, widgets, created_at
		FROM snapshots ORDER BY created_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []ports.Snapshot
	for rows.Next() {
		var s ports.Snapshot
		var created int64
		if err := rows.Scan(&s.ID, &s.Name, &s.Title, &s.Widgets, &created); err != nil {
			return nil, err
		}
		s.CreatedAt = time.UnixMilli(created).UTC()
		snaps = append(snaps, s)
	}

	return snaps, rows.Err()
}

// Delete removes the snapshot stored under name
func (l *Library) Delete(name string) error {
	tx, err := l.beginTx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	n, err := tx.deleteCount(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	if n == 0 {
		return &application.SnapshotError{Name: name}
	}
	return tx.Commit()
}

func (l *Library) beginTx() (*snapshotTx, error) {
	if l.db == nil {
		return nil, errors.New("snapshot library is not open")
	}
	tx, err := l.db.Begin()
	if err != nil {
		return nil, err
	}
	return &snapshotTx{tx: tx}, nil
}

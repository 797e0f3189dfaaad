package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yumyai/seqspec/pkg/model"

	_ "modernc.org/sqlite"
)

var (
	ErrAssayNotFound  = errors.New("assay not found")
	ErrMissingAssayID = errors.New("assay has no assay_id")
)

const schema = `
	CREATE TABLE IF NOT EXISTS assays (
		assay_id   TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		revision   TEXT NOT NULL,
		payload    BLOB NOT NULL,
		updated_at TEXT NOT NULL
	);
`

// AssayRecord is the listing view of a stored assay.
type AssayRecord struct {
	AssayID   string    `json:"assay_id"`
	Name      string    `json:"name"`
	Revision  string    `json:"revision"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AssayStore keeps one JSON document per assay in SQLite. Every Get decodes
// a fresh copy, so callers own what they receive.
type AssayStore struct {
	db *sql.DB
}

// OpenAssayStore opens (or creates) the SQLite file at path.
func OpenAssayStore(path string) (*AssayStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer, avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	store, err := NewAssayStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewAssayStore(db *sql.DB) (*AssayStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create assays table: %w", err)
	}
	return &AssayStore{db: db}, nil
}

func (s *AssayStore) Close() error {
	return s.db.Close()
}

func (s *AssayStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Put inserts or replaces an assay and returns its new revision.
func (s *AssayStore) Put(ctx context.Context, a *model.Assay) (string, error) {
	if a.AssayID == "" {
		return "", ErrMissingAssayID
	}

	payload, err := a.ToJSON()
	if err != nil {
		return "", fmt.Errorf("encode assay %s: %w", a.AssayID, err)
	}

	revision := uuid.New().String()
	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)

	const qstring = `
		INSERT INTO assays (assay_id, name, revision, payload, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(assay_id) DO UPDATE SET
			name = excluded.name,
			revision = excluded.revision,
			payload = excluded.payload,
			updated_at = excluded.updated_at;
	`
	if _, err := s.db.ExecContext(ctx, qstring, a.AssayID, a.Name, revision, payload, updatedAt); err != nil {
		return "", fmt.Errorf("store assay %s: %w", a.AssayID, err)
	}
	return revision, nil
}

func (s *AssayStore) Get(ctx context.Context, assayID string) (*model.Assay, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM assays WHERE assay_id = ?`, assayID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrAssayNotFound, assayID)
	}
	if err != nil {
		return nil, fmt.Errorf("select assay %s: %w", assayID, err)
	}

	return model.AssayFromJSON(payload)
}

func (s *AssayStore) Revision(ctx context.Context, assayID string) (string, error) {
	var revision string
	err := s.db.QueryRowContext(ctx, `SELECT revision FROM assays WHERE assay_id = ?`, assayID).Scan(&revision)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrAssayNotFound, assayID)
	}
	return revision, err
}

// List returns every stored assay ordered by id.
func (s *AssayStore) List(ctx context.Context) ([]AssayRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT assay_id, name, revision, updated_at FROM assays ORDER BY assay_id`)
	if err != nil {
		return nil, fmt.Errorf("list assays: %w", err)
	}
	defer rows.Close()

	records := make([]AssayRecord, 0, 16)
	for rows.Next() {
		var r AssayRecord
		var updatedAt string
		if err := rows.Scan(&r.AssayID, &r.Name, &r.Revision, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan assay row: %w", err)
		}
		if r.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return nil, fmt.Errorf("parse updated_at of %s: %w", r.AssayID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *AssayStore) Delete(ctx context.Context, assayID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assays WHERE assay_id = ?`, assayID)
	if err != nil {
		return fmt.Errorf("delete assay %s: %w", assayID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrAssayNotFound, assayID)
	}
	return nil
}

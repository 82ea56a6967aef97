// Package history persists the generation history in SQLite: who a
// document set was generated for, when, and the record it was generated
// from. The listing is capped; old entries are pruned on insert.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// MaxEntries caps the history listing. Add prunes anything older.
const MaxEntries = 50

// Entry is one generation event.
type Entry struct {
	ID           string          `json:"id"`
	ClientName   string          `json:"clientName"`
	Document     string          `json:"document"`
	ContractType string          `json:"contractType"`
	Payload      json.RawMessage `json:"payload"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Store is the SQLite-backed history store. Safe for concurrent use
// through the underlying *sql.DB.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS generation_history (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		document TEXT NOT NULL,
		contract_type TEXT NOT NULL,
		payload TEXT NOT NULL,
		created_at DATETIME NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("history: create table: %w", err)
	}

	return &Store{db: db}, nil
}

// Add records one generation event and prunes entries beyond MaxEntries.
func (s *Store) Add(ctx context.Context, clientName, document, contractType string, payload any) (Entry, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Entry{}, fmt.Errorf("history: marshal payload: %w", err)
	}

	e := Entry{
		ID:           uuid.NewString(),
		ClientName:   clientName,
		Document:     document,
		ContractType: contractType,
		Payload:      raw,
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO generation_history (id, client_name, document, contract_type, payload, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		e.ID, e.ClientName, e.Document, e.ContractType, string(e.Payload), e.CreatedAt,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("history: insert: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM generation_history WHERE id NOT IN (
			SELECT id FROM generation_history ORDER BY created_at DESC LIMIT ?
		)`, MaxEntries,
	)
	if err != nil {
		return Entry{}, fmt.Errorf("history: prune: %w", err)
	}

	return e, nil
}

// List returns the history newest-first, capped at MaxEntries.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, client_name, document, contract_type, payload, created_at FROM generation_history ORDER BY created_at DESC LIMIT ?",
		MaxEntries,
	)
	if err != nil {
		return nil, fmt.Errorf("history: list: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var payload string
		if err := rows.Scan(&e.ID, &e.ClientName, &e.Document, &e.ContractType, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("history: scan: %w", err)
		}
		e.Payload = json.RawMessage(payload)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

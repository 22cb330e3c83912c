// Package store keeps contact form submissions in an in-memory SQLite inbox.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/termfolio/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

const memoryDSN = ":memory:"

// Store wraps SQLite access for the session inbox.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// OpenMemory opens a fresh inbox that lives only as long as the process.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db, now: time.Now}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY,
			ref TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			message TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertMessage records a submission and returns it with its ref and time.
func (s *Store) InsertMessage(ctx context.Context, msg model.ContactMessage) (model.ContactMessage, error) {
	msg.Ref = uuid.NewString()
	msg.CreatedAt = s.now()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (ref, name, email, message, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.Ref,
		msg.Name,
		msg.Email,
		msg.Message,
		msg.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.ContactMessage{}, fmt.Errorf("failed to insert message: %w", err)
	}
	return msg, nil
}

// CountMessages returns the number of submissions this session.
func (s *Store) CountMessages(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// ListMessages returns submissions oldest first.
func (s *Store) ListMessages(ctx context.Context) ([]model.ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ref, name, email, message, created_at FROM messages ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.ContactMessage
	for rows.Next() {
		var msg model.ContactMessage
		var createdAt string
		if err := rows.Scan(&msg.Ref, &msg.Name, &msg.Email, &msg.Message, &createdAt); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		msg.CreatedAt = parsed
		result = append(result, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

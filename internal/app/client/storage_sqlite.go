package client

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"watchlater/internal/domain/playlist"
)

// SQLiteStorage keeps the session token and the last fetched playlist
// snapshot, so listing still works when the server is unreachable.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	storage := &SQLiteStorage{db: db}

	if err := storage.initTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return storage, nil
}

func (s *SQLiteStorage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS playlists (
			id        INTEGER PRIMARY KEY,
			content   TEXT NOT NULL,
			sauce     TEXT NOT NULL,
			app       TEXT NOT NULL,
			completed TEXT NOT NULL,
			date      TEXT NOT NULL,
			time      TEXT NOT NULL,
			owner     INTEGER NOT NULL DEFAULT 0,
			cached_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS session (
			id    INTEGER PRIMARY KEY CHECK (id = 1),
			token TEXT NOT NULL
		);
	`)

	return err
}

// ReplacePlaylists swaps the whole cached snapshot for a fresh one.
func (s *SQLiteStorage) ReplacePlaylists(items []playlist.Playlist) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin cache update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM playlists`); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	now := time.Now()
	for _, p := range items {
		_, err := tx.Exec(`
			INSERT INTO playlists (id, content, sauce, app, completed, date, time, owner, cached_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Content, p.Sauce, p.App, p.Completed, p.Date, p.Time, p.Owner, now)
		if err != nil {
			return fmt.Errorf("cache playlist %d: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStorage) ListPlaylists() ([]playlist.Playlist, error) {
	rows, err := s.db.Query(`
		SELECT id, content, sauce, app, completed, date, time, owner
		FROM playlists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("read cache: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []playlist.Playlist{}
	for rows.Next() {
		var p playlist.Playlist
		if err := rows.Scan(&p.ID, &p.Content, &p.Sauce, &p.App, &p.Completed, &p.Date, &p.Time, &p.Owner); err != nil {
			return nil, fmt.Errorf("scan cached playlist: %w", err)
		}
		items = append(items, p)
	}

	return items, rows.Err()
}

func (s *SQLiteStorage) SaveToken(token string) error {
	_, err := s.db.Exec(`
		INSERT INTO session (id, token) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token`, token)
	if err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

// LoadToken returns an empty string when no session is stored.
func (s *SQLiteStorage) LoadToken() (string, error) {
	var token string
	err := s.db.QueryRow(`SELECT token FROM session WHERE id = 1`).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load token: %w", err)
	}
	return token, nil
}

func (s *SQLiteStorage) ClearToken() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

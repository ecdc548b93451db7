package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"watchlater/internal/domain/playlist"
)

// Columns are rendered as fixed-format strings at the query level, so
// the split date/time stamps travel as-is through the whole stack.
const playlistColumns = `
	id, content, sauce, app, completed,
	to_char(date, 'YYYY-MM-DD'),
	to_char(time, 'HH24:MI:SS'),
	COALESCE(owner, 0)`

type PlaylistRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewPlaylistRepository(storage *Storage, log *slog.Logger) *PlaylistRepository {
	return &PlaylistRepository{
		storage: storage,
		log:     log.With("component", "playlist_repository"),
	}
}

func (r *PlaylistRepository) List(ctx context.Context) ([]playlist.Playlist, error) {
	query := `SELECT` + playlistColumns + ` FROM playlists ORDER BY id`

	rows, err := r.storage.Pool().Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list playlists", "error", err)
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	defer rows.Close()

	return r.scanPlaylists(rows)
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, owner int) ([]playlist.Playlist, error) {
	query := `SELECT` + playlistColumns + ` FROM playlists WHERE owner = $1 ORDER BY id`

	rows, err := r.storage.Pool().Query(ctx, query, owner)
	if err != nil {
		r.log.Error("failed to list playlists by owner", "owner", owner, "error", err)
		return nil, fmt.Errorf("list playlists by owner: %w", err)
	}
	defer rows.Close()

	return r.scanPlaylists(rows)
}

func (r *PlaylistRepository) Get(ctx context.Context, id int) (*playlist.Playlist, error) {
	query := `SELECT` + playlistColumns + ` FROM playlists WHERE id = $1`

	row := r.storage.Pool().QueryRow(ctx, query, id)

	p, err := r.scanPlaylist(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, playlist.ErrNotFound
		}
		r.log.Error("failed to get playlist", "playlist_id", id, "error", err)
		return nil, fmt.Errorf("get playlist: %w", err)
	}

	return p, nil
}

// Create lets the store assign the id and stamp date/time.
func (r *PlaylistRepository) Create(ctx context.Context, p *playlist.Playlist) (*playlist.Playlist, error) {
	query := `
		INSERT INTO playlists (content, sauce, app, completed, owner)
		VALUES ($1, $2, $3, $4, NULLIF($5, 0))
		RETURNING id, to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI:SS')`

	created := *p
	err := r.storage.Pool().QueryRow(ctx, query,
		p.Content, p.Sauce, p.App, p.Completed, p.Owner,
	).Scan(&created.ID, &created.Date, &created.Time)
	if err != nil {
		r.log.Error("failed to create playlist", "error", err)
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	return &created, nil
}

// Update replaces the mutable fields in one statement; date/time are
// deliberately absent from the SET list.
func (r *PlaylistRepository) Update(ctx context.Context, p *playlist.Playlist) error {
	query := `
		UPDATE playlists
		SET content = $1, sauce = $2, app = $3, completed = $4, owner = NULLIF($5, 0)
		WHERE id = $6`

	result, err := r.storage.Pool().Exec(ctx, query,
		p.Content, p.Sauce, p.App, p.Completed, p.Owner, p.ID)
	if err != nil {
		r.log.Error("failed to update playlist", "playlist_id", p.ID, "error", err)
		return fmt.Errorf("update playlist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return playlist.ErrNotFound
	}

	return nil
}

func (r *PlaylistRepository) SetCompleted(ctx context.Context, id int, completed string) error {
	query := `UPDATE playlists SET completed = $1 WHERE id = $2`

	result, err := r.storage.Pool().Exec(ctx, query, completed, id)
	if err != nil {
		r.log.Error("failed to set playlist completion", "playlist_id", id, "error", err)
		return fmt.Errorf("set playlist completion: %w", err)
	}

	if result.RowsAffected() == 0 {
		return playlist.ErrNotFound
	}

	return nil
}

func (r *PlaylistRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM playlists WHERE id = $1`

	result, err := r.storage.Pool().Exec(ctx, query, id)
	if err != nil {
		r.log.Error("failed to delete playlist", "playlist_id", id, "error", err)
		return fmt.Errorf("delete playlist: %w", err)
	}

	if result.RowsAffected() == 0 {
		return playlist.ErrNotFound
	}

	return nil
}

func (r *PlaylistRepository) scanPlaylists(rows pgx.Rows) ([]playlist.Playlist, error) {
	items := []playlist.Playlist{}
	for rows.Next() {
		p, err := r.scanPlaylist(rows)
		if err != nil {
			return nil, fmt.Errorf("scan playlist: %w", err)
		}
		items = append(items, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playlists: %w", err)
	}

	return items, nil
}

func (r *PlaylistRepository) scanPlaylist(row pgx.Row) (*playlist.Playlist, error) {
	var p playlist.Playlist
	err := row.Scan(&p.ID, &p.Content, &p.Sauce, &p.App, &p.Completed, &p.Date, &p.Time, &p.Owner)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

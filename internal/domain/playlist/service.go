package playlist

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"watchlater/internal/domain/platform"
)

type Servicer interface {
	List(ctx context.Context) ([]Playlist, error)
	ListByOwner(ctx context.Context, owner int) ([]Playlist, error)
	Get(ctx context.Context, id int) (*Playlist, error)
	Create(ctx context.Context, req CreateRequest) (*Playlist, error)
	Update(ctx context.Context, id int, req UpdateRequest) (*Playlist, error)
	ToggleComplete(ctx context.Context, id int) (*Playlist, error)
	Delete(ctx context.Context, id int) error
}

type CreateRequest struct {
	Content string `json:"content"`
	Sauce   string `json:"sauce"`
	App     string `json:"app,omitempty"`
	Owner   int    `json:"owner,omitempty"`
}

type UpdateRequest struct {
	Content   string `json:"content"`
	Sauce     string `json:"sauce"`
	App       string `json:"app,omitempty"`
	Completed string `json:"completed,omitempty"`
	Owner     int    `json:"owner,omitempty"`
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "playlist_service"),
	}
}

// List returns every playlist entry, unpaginated.
func (s *Service) List(ctx context.Context) ([]Playlist, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list playlists", "error", err)
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	return items, nil
}

// ListByOwner returns the entries created by one user. An owner with no
// entries yields an empty slice, not an error.
func (s *Service) ListByOwner(ctx context.Context, owner int) ([]Playlist, error) {
	items, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		s.log.Error("failed to list playlists by owner", "owner", owner, "error", err)
		return nil, fmt.Errorf("list playlists by owner: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Playlist, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get playlist", "playlist_id", id, "error", err)
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return p, nil
}

// Create validates the submission and inserts it. The app label is
// trusted when the client supplied one and derived from the URL only
// when blank; the store stamps date/time and assigns the id.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Playlist, error) {
	if req.Content == "" || req.Sauce == "" {
		return nil, fmt.Errorf("%w: content and sauce are required", ErrInvalidInput)
	}

	app := req.App
	if app == "" {
		app = platform.Classify(req.Sauce).String()
	}

	p := &Playlist{
		Content:   req.Content,
		Sauce:     req.Sauce,
		App:       app,
		Completed: NotCompleted,
		Owner:     req.Owner,
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error("failed to create playlist", "content", req.Content, "error", err)
		return nil, fmt.Errorf("create playlist: %w", err)
	}

	s.log.Info("playlist created", "playlist_id", created.ID, "app", created.App, "owner", created.Owner)
	return created, nil
}

// Update replaces all mutable fields in one statement; date/time are
// untouched. The update applies fully or not at all.
func (s *Service) Update(ctx context.Context, id int, req UpdateRequest) (*Playlist, error) {
	if req.Content == "" || req.Sauce == "" {
		return nil, fmt.Errorf("%w: content and sauce are required", ErrInvalidInput)
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get playlist for update: %w", err)
	}

	app := req.App
	if app == "" {
		app = platform.Classify(req.Sauce).String()
	}

	completed := req.Completed
	if completed == "" {
		completed = current.Completed
	}

	updated := &Playlist{
		ID:        id,
		Content:   req.Content,
		Sauce:     req.Sauce,
		App:       app,
		Completed: completed,
		Date:      current.Date,
		Time:      current.Time,
		Owner:     req.Owner,
	}

	if err := s.repo.Update(ctx, updated); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update playlist", "playlist_id", id, "error", err)
		return nil, fmt.Errorf("update playlist: %w", err)
	}

	s.log.Info("playlist updated", "playlist_id", id)
	return updated, nil
}

// ToggleComplete flips the completion flag and nothing else.
func (s *Service) ToggleComplete(ctx context.Context, id int) (*Playlist, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get playlist for toggle: %w", err)
	}

	flipped := p.ToggledCompleted()
	if err := s.repo.SetCompleted(ctx, id, flipped); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to toggle playlist completion", "playlist_id", id, "error", err)
		return nil, fmt.Errorf("toggle playlist completion: %w", err)
	}

	p.Completed = flipped
	s.log.Info("playlist completion toggled", "playlist_id", id, "completed", flipped)
	return p, nil
}

// Delete removes the entry. Deleting an id that is already gone reports
// ErrNotFound, so repeated deletes are observably idempotent.
func (s *Service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete playlist", "playlist_id", id, "error", err)
		return fmt.Errorf("delete playlist: %w", err)
	}

	s.log.Info("playlist deleted", "playlist_id", id)
	return nil
}

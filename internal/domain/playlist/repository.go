package playlist

import "context"

type Repository interface {
	List(ctx context.Context) ([]Playlist, error)
	ListByOwner(ctx context.Context, owner int) ([]Playlist, error)
	Get(ctx context.Context, id int) (*Playlist, error)
	// Create inserts the entry; the store assigns id and stamps
	// date/time, filled into the returned value.
	Create(ctx context.Context, p *Playlist) (*Playlist, error)
	// Update replaces the mutable fields only, never date/time.
	Update(ctx context.Context, p *Playlist) error
	// SetCompleted touches the completion flag and nothing else.
	SetCompleted(ctx context.Context, id int, completed string) error
	Delete(ctx context.Context, id int) error
}

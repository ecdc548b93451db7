package playlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// MockRepository is a mock implementation of the Repository interface for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Playlist), args.Error(1)
}

func (m *MockRepository) ListByOwner(ctx context.Context, owner int) ([]Playlist, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Playlist), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, id int) (*Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, p *Playlist) (*Playlist, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Playlist), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, p *Playlist) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockRepository) SetCompleted(ctx context.Context, id int, completed string) error {
	args := m.Called(ctx, id, completed)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.Default()
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives app when blank", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Playlist) bool {
			return p.App == "YouTube" && p.Completed == NotCompleted
		})).Return(&Playlist{
			ID: 7, Content: "funny clip", Sauce: "https://youtu.be/abc123",
			App: "YouTube", Completed: NotCompleted,
			Date: "2024-03-01", Time: "10:00:00",
		}, nil)

		created, err := svc.Create(ctx, CreateRequest{
			Content: "funny clip",
			Sauce:   "https://youtu.be/abc123",
		})

		require.NoError(t, err)
		assert.Equal(t, 7, created.ID)
		assert.Equal(t, "YouTube", created.App)
		assert.NotEmpty(t, created.Date)
		assert.NotEmpty(t, created.Time)
		repo.AssertExpectations(t)
	})

	t.Run("trusts client-supplied app", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *Playlist) bool {
			return p.App == "Vimeo"
		})).Return(&Playlist{ID: 8, App: "Vimeo"}, nil)

		_, err := svc.Create(ctx, CreateRequest{
			Content: "x", Sauce: "https://youtu.be/abc", App: "Vimeo",
		})

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		_, err := svc.Create(ctx, CreateRequest{Sauce: "https://youtu.be/abc"})

		assert.ErrorIs(t, err, ErrInvalidInput)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("rejects empty sauce", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		_, err := svc.Create(ctx, CreateRequest{Content: "x"})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves date and time", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, 5).Return(&Playlist{
			ID: 5, Content: "old", Sauce: "https://vimeo.com/1",
			App: "Vimeo", Completed: NotCompleted,
			Date: "2024-01-01", Time: "08:00:00",
		}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *Playlist) bool {
			return p.Date == "2024-01-01" && p.Time == "08:00:00" && p.Content == "new"
		})).Return(nil)

		updated, err := svc.Update(ctx, 5, UpdateRequest{
			Content: "new", Sauce: "https://vimeo.com/2", App: "Vimeo",
		})

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", updated.Date)
		assert.Equal(t, "08:00:00", updated.Time)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, 42).Return(nil, ErrNotFound)

		_, err := svc.Update(ctx, 42, UpdateRequest{Content: "x", Sauce: "y"})

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_ToggleComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("flips the flag", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, 3).Return(&Playlist{ID: 3, Completed: NotCompleted}, nil)
		repo.On("SetCompleted", mock.Anything, 3, Completed).Return(nil)

		p, err := svc.ToggleComplete(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, Completed, p.Completed)
		repo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Get", mock.Anything, 99).Return(nil, ErrNotFound)

		_, err := svc.ToggleComplete(ctx, 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Delete", mock.Anything, 1).Return(nil)

		assert.NoError(t, svc.Delete(ctx, 1))
	})

	t.Run("repeated delete reports not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("Delete", mock.Anything, 1).Return(ErrNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, 1), ErrNotFound)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("store failure wraps", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		boom := errors.New("connection reset")
		repo.On("List", mock.Anything).Return(nil, boom)

		_, err := svc.List(ctx)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("empty owner set", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, testLogger())

		repo.On("ListByOwner", mock.Anything, 12).Return([]Playlist{}, nil)

		items, err := svc.ListByOwner(ctx, 12)

		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

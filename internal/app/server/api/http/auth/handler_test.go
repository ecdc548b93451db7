package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authmw "watchlater/internal/app/server/api/http/middleware/auth"
	"watchlater/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (int, error) {
	args := m.Called(ctx, email, password)
	return args.Int(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID int) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (int, error) {
	args := m.Called(ctx, token)
	return args.Int(0), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestHandler_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, nil, nil, nil, nil)

		svc.On("Register", mock.Anything, "alice@example.com", "sup3rsecret").Return(5, nil)

		input := &registerInput{}
		input.Body.Email = "alice@example.com"
		input.Body.Password = "sup3rsecret"

		out, err := h.register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, 5, out.Body.ID)
		assert.Equal(t, "Ok", out.Body.Status)
		assert.Equal(t, "Registration successful", out.Body.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, nil, nil, nil, nil)

		svc.On("Register", mock.Anything, mock.Anything, mock.Anything).
			Return(0, user.ErrAlreadyExists)

		input := &registerInput{}
		input.Body.Email = "alice@example.com"
		input.Body.Password = "sup3rsecret"

		_, err := h.register(ctx, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("invalid input", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, nil, nil, nil, nil)

		svc.On("Register", mock.Anything, mock.Anything, mock.Anything).
			Return(0, errors.Join(user.ErrInvalidInput, errors.New("email is not a valid address")))

		input := &registerInput{}
		input.Body.Email = "bad"
		input.Body.Password = "sup3rsecret"

		_, err := h.register(ctx, input)

		assert.Error(t, err)
	})
}

func TestHandler_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns token", func(t *testing.T) {
		svc := new(MockUserService)
		sess := new(MockSessionService)
		h := NewHandler(svc, sess, nil, nil, nil)

		svc.On("Authenticate", mock.Anything, "alice@example.com", "sup3rsecret").
			Return(user.User{ID: 5}, nil)
		sess.On("Create", mock.Anything, 5).Return("opaque-token", nil)

		input := &loginInput{}
		input.Body.Email = "alice@example.com"
		input.Body.Password = "sup3rsecret"

		out, err := h.login(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "opaque-token", out.Body.Token)
		assert.Equal(t, "Ok", out.Body.Status)
	})

	t.Run("bad credentials", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, nil, nil, nil, nil)

		svc.On("Authenticate", mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, user.ErrInvalidAuth)

		input := &loginInput{}
		input.Body.Email = "alice@example.com"
		input.Body.Password = "wrong"

		_, err := h.login(ctx, input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid email or password")
	})
}

func TestHandler_CurrentUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewHandler(svc, nil, nil, nil, nil)

		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		svc.On("Get", mock.Anything, 5).
			Return(user.User{ID: 5, Email: "alice@example.com", CreatedAt: created}, nil)

		ctx := authmw.WithUserID(context.Background(), 5)
		out, err := h.currentUser(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, 5, out.Body.ID)
		assert.Equal(t, "alice@example.com", out.Body.Email)
		assert.Equal(t, created, out.Body.CreatedAt)
	})

	t.Run("no identity in context", func(t *testing.T) {
		h := NewHandler(nil, nil, nil, nil, nil)

		_, err := h.currentUser(context.Background(), nil)

		assert.Error(t, err)
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("revokes the session token", func(t *testing.T) {
		sess := new(MockSessionService)
		h := NewHandler(nil, sess, nil, nil, nil)

		sess.On("Revoke", mock.Anything, "opaque-token").Return(nil)

		ctx := authmw.WithUserID(context.Background(), 5)
		ctx = authmw.WithToken(ctx, "opaque-token")

		out, err := h.logout(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
		sess.AssertExpectations(t)
	})

	t.Run("no token in context", func(t *testing.T) {
		h := NewHandler(nil, nil, nil, nil, nil)

		_, err := h.logout(context.Background(), nil)

		assert.Error(t, err)
	})
}

package auth

import (
	"time"

	"watchlater/internal/domain/user"
)

type registerInput struct {
	Body user.Credentials
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	ID      int    `json:"user_id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type loginInput struct {
	Body user.Credentials
}

type loginOutput struct {
	Body LoginResponse
}

type LoginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
}

type userOutput struct {
	Body UserResponse
}

type UserResponse struct {
	ID        int       `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type logoutOutput struct {
	Body LogoutResponse
}

type LogoutResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

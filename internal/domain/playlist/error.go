package playlist

import "errors"

var (
	ErrNotFound     = errors.New("playlist not found")
	ErrInvalidInput = errors.New("invalid playlist input")
)

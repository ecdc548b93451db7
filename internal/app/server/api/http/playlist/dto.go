package playlist

import "watchlater/internal/domain/playlist"

type listOutput struct {
	Body ListResponse
}

type ListResponse struct {
	Playlists []playlist.Playlist `json:"playlists"`
	Total     int                 `json:"total"`
}

type findInput struct {
	ID int `path:"id" example:"1" doc:"Playlist entry ID"`
}

type findOutput struct {
	Body playlist.Playlist
}

type ownerInput struct {
	UserID int `path:"userId" example:"1" doc:"Owner user ID"`
}

type createInput struct {
	Body playlist.CreateRequest
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Playlist entry ID"`
	Body playlist.UpdateRequest
}

type entryOutput struct {
	Body playlist.Playlist
}

type deleteOutput struct {
	Body deleteResponse
}

type deleteResponse struct {
	Status string `json:"status"`
}

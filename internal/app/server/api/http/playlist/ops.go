package playlist

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-list",
		Method:      http.MethodGet,
		Path:        "/api/playlists",
		Summary:     "List all playlist entries",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-find",
		Method:      http.MethodGet,
		Path:        "/api/playlists/{id}",
		Summary:     "Get one playlist entry",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) listByOwnerOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-list-by-owner",
		Method:      http.MethodGet,
		Path:        "/api/playlists/user/{userId}",
		Summary:     "List playlist entries for one owner",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-create",
		Method:      http.MethodPost,
		Path:        "/api/playlists",
		Summary:     "Bookmark a video",
		Description: "Creates a playlist entry. The store stamps the creation date and time.",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-update",
		Method:      http.MethodPut,
		Path:        "/api/playlists/{id}",
		Summary:     "Replace a playlist entry's mutable fields",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) completeOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-complete",
		Method:      http.MethodPatch,
		Path:        "/api/playlists/{id}/complete",
		Summary:     "Toggle a playlist entry's completion flag",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "playlists-delete",
		Method:      http.MethodDelete,
		Path:        "/api/playlists/{id}",
		Summary:     "Delete a playlist entry",
		Tags:        []string{"playlists"},
		Middlewares: h.middleware,
	}
}

package playlist

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"watchlater/internal/domain/playlist"
)

type Handler struct {
	service    playlist.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service playlist.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.listByOwnerOp(), h.listByOwner)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.completeOp(), h.complete)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("list playlists failed")
	}

	return &listOutput{
		Body: ListResponse{
			Playlists: items,
			Total:     len(items),
		},
	}, nil
}

func (h *Handler) listByOwner(ctx context.Context, input *ownerInput) (*listOutput, error) {
	items, err := h.service.ListByOwner(ctx, input.UserID)
	if err != nil {
		return nil, huma.Error500InternalServerError("list playlists failed")
	}

	return &listOutput{
		Body: ListResponse{
			Playlists: items,
			Total:     len(items),
		},
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*findOutput, error) {
	p, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err, "get playlist failed")
	}

	return &findOutput{Body: *p}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*entryOutput, error) {
	created, err := h.service.Create(ctx, input.Body)
	if err != nil {
		return nil, h.mapError(err, "create playlist failed")
	}

	return &entryOutput{Body: *created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*entryOutput, error) {
	updated, err := h.service.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, h.mapError(err, "update playlist failed")
	}

	return &entryOutput{Body: *updated}, nil
}

func (h *Handler) complete(ctx context.Context, input *findInput) (*entryOutput, error) {
	p, err := h.service.ToggleComplete(ctx, input.ID)
	if err != nil {
		return nil, h.mapError(err, "toggle completion failed")
	}

	return &entryOutput{Body: *p}, nil
}

func (h *Handler) delete(ctx context.Context, input *findInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.mapError(err, "delete playlist failed")
	}

	return &deleteOutput{
		Body: deleteResponse{Status: "Ok"},
	}, nil
}

// mapError translates domain failures into the HTTP taxonomy: absent
// entry to 404, malformed input to 422, everything else to a generic
// 500 with no upstream detail leaked.
func (h *Handler) mapError(err error, fallback string) error {
	switch {
	case errors.Is(err, playlist.ErrNotFound):
		return huma.Error404NotFound("playlist not found")
	case errors.Is(err, playlist.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		h.log.Error(fallback, "error", err)
		return huma.Error500InternalServerError(fallback)
	}
}

package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/apperr"
	"github.com/georgemunganga/instock-backend/internal/platform/httpx"
)

// Handler exposes inventory HTTP endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the /api/inventories routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/inventories", func(r chi.Router) {
		r.Get("/", httpx.Handle(h.logger, h.listItems))
		r.Post("/", httpx.Handle(h.logger, h.createItem))
		r.Get("/{id}", httpx.Handle(h.logger, h.getItem))
		r.Put("/{id}", httpx.Handle(h.logger, h.updateItem))
		r.Delete("/{id}", httpx.Handle(h.logger, h.deleteItem))
	})
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) error {
	items, err := h.service.ListItems(r.Context())
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, items)
	return nil
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	it, err := h.service.GetItem(r.Context(), id)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, it)
	return nil
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) error {
	var req Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	it, err := h.service.CreateItem(r.Context(), req)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusCreated, it)
	return nil
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	var req Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	it, err := h.service.UpdateItem(r.Context(), id, req)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, UpdateResponse{Message: MsgUpdated, UpdatedItem: it})
	return nil
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, httpx.Message{Message: DeletedMessage(id)})
	return nil
}

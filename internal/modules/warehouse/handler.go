package warehouse

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/apperr"
	"github.com/georgemunganga/instock-backend/internal/platform/httpx"
)

// Handler exposes warehouse HTTP endpoints.
type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the /api/warehouses routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/warehouses", func(r chi.Router) {
		r.Get("/", httpx.Handle(h.logger, h.listWarehouses))
		r.Post("/", httpx.Handle(h.logger, h.createWarehouse))
		r.Get("/{id}", httpx.Handle(h.logger, h.getWarehouse))
		r.Put("/{id}", httpx.Handle(h.logger, h.updateWarehouse))
		r.Delete("/{id}", httpx.Handle(h.logger, h.deleteWarehouse))
	})
}

func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) error {
	warehouses, err := h.service.ListWarehouses(r.Context())
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, warehouses)
	return nil
}

func (h *Handler) getWarehouse(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	wh, err := h.service.GetWarehouse(r.Context(), id)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, wh)
	return nil
}

func (h *Handler) createWarehouse(w http.ResponseWriter, r *http.Request) error {
	var req Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	wh, err := h.service.CreateWarehouse(r.Context(), req)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusCreated, wh)
	return nil
}

func (h *Handler) updateWarehouse(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	var req Request
	if err := httpx.DecodeJSON(r, &req); err != nil {
		return err
	}
	wh, err := h.service.UpdateWarehouse(r.Context(), id, req)
	if err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, wh)
	return nil
}

func (h *Handler) deleteWarehouse(w http.ResponseWriter, r *http.Request) error {
	id, ok := httpx.PathID(r, "id")
	if !ok {
		return apperr.NotFound(MsgNotFound)
	}
	if err := h.service.DeleteWarehouse(r.Context(), id); err != nil {
		return err
	}
	httpx.Respond(w, http.StatusOK, httpx.Message{Message: DeletedMessage(id)})
	return nil
}

package httpx

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

// HandlerFunc is an HTTP handler that reports failures as errors.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Handle adapts fn to http.HandlerFunc. Validation errors become 400 and
// not-found errors 404, both with their message. Anything else is logged
// and answered with a generic 500.
func Handle(logger *zap.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		reqID := RequestIDFromContext(r.Context())

		switch apperr.KindOf(err) {
		case apperr.KindValidation:
			Respond(w, http.StatusBadRequest, errorBody{Error: apperr.Message(err)})
		case apperr.KindNotFound:
			Respond(w, http.StatusNotFound, errorBody{Error: apperr.Message(err)})
		default:
			logger.Error("request failed",
				zap.String("request_id", reqID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			Respond(w, http.StatusInternalServerError, errorBody{
				Error:     "internal server error",
				RequestID: reqID,
			})
		}
	}
}

// Pinger is satisfied by the database pool.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health answers 200 when the store is reachable and 503 otherwise.
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			Respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		Respond(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

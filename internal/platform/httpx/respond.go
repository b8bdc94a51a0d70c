// Package httpx holds the HTTP helpers shared by the module handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// Message is the body of confirmation responses.
type Message struct {
	Message string `json:"message"`
}

// DecodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that presence validation reports the missing fields. The
// body must hold a single JSON value.
func DecodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
			return apperr.Validation("invalid request payload")
		}
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperr.Validation(fmt.Sprintf("invalid request payload: %s has the wrong type", typeErr.Field))
	}
	return apperr.Validation("invalid request payload")
}

// PathID parses a positive integer URL parameter. ok is false when the
// parameter cannot identify any record.
func PathID(r *http.Request, param string) (id int64, ok bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

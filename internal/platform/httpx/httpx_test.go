package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/georgemunganga/instock-backend/internal/apperr"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandle_MapsErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperr.Validation("all fields are required"), http.StatusBadRequest, "all fields are required"},
		{"not found", apperr.NotFound("Warehouse not found"), http.StatusNotFound, "Warehouse not found"},
		{"store", apperr.Store("list warehouses", errors.New("db down")), http.StatusInternalServerError, "internal server error"},
		{"unclassified", errors.New("surprise"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handle(zap.NewNop(), func(http.ResponseWriter, *http.Request) error { return tt.err })
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.message, decodeBody(t, rec)["error"])
		})
	}
}

func TestHandle_LogsStoreErrorsOnly(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	Handle(logger, func(http.ResponseWriter, *http.Request) error {
		return apperr.Validation("bad")
	})(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, 0, logs.Len())

	Handle(logger, func(http.ResponseWriter, *http.Request) error {
		return apperr.Store("insert warehouse", errors.New("disk full"))
	})(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/warehouses", nil))
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "request failed", entry.Message)
	assert.Equal(t, "/api/warehouses", entry.ContextMap()["path"])
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int64  `json:"count"`
	}

	var p payload
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","count":2}`))
	require.NoError(t, DecodeJSON(r, &p))
	assert.Equal(t, payload{Name: "a", Count: 2}, p)

	p = payload{}
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.NoError(t, DecodeJSON(r, &p), "empty body is left to presence validation")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := DecodeJSON(r, &p)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Equal(t, "invalid request payload", apperr.Message(err))

	for _, body := range []string{`{"name":"a"} trailing-junk`, `{"name":"a"}}`, `{"name":"a"}{"name":"b"}`} {
		r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err = DecodeJSON(r, &p)
		assert.True(t, apperr.Is(err, apperr.KindValidation), body)
		assert.Equal(t, "invalid request payload", apperr.Message(err), body)
	}

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{\"name\":\"a\"}\n  "))
	require.NoError(t, DecodeJSON(r, &p), "trailing whitespace is fine")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"count":"many"}`))
	err = DecodeJSON(r, &p)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	assert.Contains(t, apperr.Message(err), "count")
}

func TestPathID(t *testing.T) {
	tests := []struct {
		raw string
		id  int64
		ok  bool
	}{
		{"7", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var gotID int64
			var gotOK bool
			r := chi.NewRouter()
			r.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = PathID(r, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/"+tt.raw, nil))

			assert.Equal(t, tt.id, gotID)
			assert.Equal(t, tt.ok, gotOK)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEqual(t, "<script>", seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := RequestID(AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Respond(w, http.StatusCreated, Message{Message: "ok"})
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/inventories", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusCreated), fields["status"])
	assert.Equal(t, "POST", fields["method"])
	assert.NotEmpty(t, fields["request_id"])
}

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(fakePinger{})(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	Health(fakePinger{err: errors.New("down")})(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

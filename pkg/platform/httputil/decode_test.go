package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	dErrors "writeyourmep/pkg/domain-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupRequest struct {
	Country string `json:"country"`
}

// trimmedRequest implements both preparation interfaces
type trimmedRequest struct {
	Country    string `json:"country"`
	normalized bool
}

func (r *trimmedRequest) Normalize() {
	r.Country = strings.TrimSpace(r.Country)
	r.normalized = true
}

func (r *trimmedRequest) Validate() error {
	if r.Country == "" {
		return errors.New("country is required")
	}
	return nil
}

type domainErrorRequest struct {
	Country string `json:"country"`
}

func (r *domainErrorRequest) Validate() error {
	if r.Country == "" {
		return dErrors.New(dErrors.CodeBadRequest, "country is required")
	}
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var errResp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	return errResp
}

func TestDecodeJSON(t *testing.T) {
	ctx := context.Background()

	t.Run("successful decode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":"France"}`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[lookupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.True(t, ok)
		require.NotNil(t, result)
		assert.Equal(t, "France", result.Country)
	})

	t.Run("invalid JSON returns bad_request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{invalid`))
		w := httptest.NewRecorder()

		result, ok := DecodeJSON[lookupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "bad_request", decodeError(t, w)["error"])
	})

	t.Run("empty body returns bad_request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(""))
		w := httptest.NewRecorder()

		_, ok := DecodeJSON[lookupRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDecodeAndPrepare(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes before validating", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":"  Malta "}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[trimmedRequest](w, req, discardLogger(), ctx, "req-1")

		require.True(t, ok)
		assert.True(t, result.normalized)
		assert.Equal(t, "Malta", result.Country)
	})

	t.Run("blank field fails validation after trimming", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":"   "}`))
		w := httptest.NewRecorder()

		result, ok := DecodeAndPrepare[trimmedRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Nil(t, result)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		errResp := decodeError(t, w)
		assert.Equal(t, "validation_error", errResp["error"])
		assert.Contains(t, errResp["error_description"], "country is required")
	})

	t.Run("preserves domain error code from Validate", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"country":""}`))
		w := httptest.NewRecorder()

		_, ok := DecodeAndPrepare[domainErrorRequest](w, req, discardLogger(), ctx, "req-1")

		assert.False(t, ok)
		assert.Equal(t, "bad_request", decodeError(t, w)["error"])
	})

	t.Run("types without preparation pass through", func(t *testing.T) {
		assert.NoError(t, PrepareRequest(&lookupRequest{}))
	})
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", dErrors.New(dErrors.CodeNotFound, "country not found"), http.StatusNotFound, "not_found"},
		{"validation", dErrors.New(dErrors.CodeValidation, "mep_email must be a valid email"), http.StatusBadRequest, "validation_error"},
		{"timeout", dErrors.New(dErrors.CodeTimeout, "webhook timed out"), http.StatusGatewayTimeout, "upstream_timeout"},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantCode, decodeError(t, w)["error"])
		})
	}
}

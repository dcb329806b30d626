package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/dataetica/dataetica-api/internal/errors"
)

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWriteAppErrorEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.Unauthenticated("authentication required", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "authentication required", body["error"])
	assert.Equal(t, "unauthenticated", body["code"])
}

func TestWriteAppErrorValidationCarriesField(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.ValidationField("title", "title is required"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "validation", body["code"])
	assert.Equal(t, "title", body["field"])
}

func TestWriteAppErrorUnknownErrorStaysOpaque(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, errors.New("pq: connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeErrorBody(t, w)
	assert.Equal(t, "internal", body["code"])
	assert.NotContains(t, body["error"], "pq:")
}

func TestWriteAppErrorRateLimited(t *testing.T) {
	w := httptest.NewRecorder()
	WriteAppError(w, apperrors.RateLimited("too many requests, please try again later", 42))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
	body := decodeErrorBody(t, w)
	assert.Equal(t, "rate_limited", body["code"])
	assert.Equal(t, float64(42), body["retryAfter"])
}

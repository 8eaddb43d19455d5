package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/handler"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data with meta and status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		resp := handler.JSON(
			map[string]string{"id": "123"},
			handler.WithJSONStatus(http.StatusCreated),
			handler.WithJSONMeta(map[string]any{"version": "1.0"}),
			handler.WithJSONMeta(map[string]any{"page": float64(1)}),
		)
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, handler.JSONResponse{
			Data: map[string]any{"id": "123"},
			Meta: map[string]any{"version": "1.0", "page": float64(1)},
		}, decodeBody(t, w))
	})

	t.Run("error value", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		require.NoError(t, handler.JSON(handler.ErrNotFound).Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, &handler.ErrorDetail{Code: "not_found", Message: "Not Found"}, decodeBody(t, w).Error)
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	validation := handler.NewValidationError()
	validation.Add("email", "Please enter a valid email address")

	tests := []struct {
		name       string
		err        any
		wantStatus int
		want       *handler.ErrorDetail
	}{
		{
			name:       "validation error",
			err:        validation,
			wantStatus: http.StatusUnprocessableEntity,
			want: &handler.ErrorDetail{
				Code:    "validation_error",
				Message: "Validation failed",
				Details: map[string][]string{"email": {"Please enter a valid email address"}},
			},
		},
		{
			name:       "wrapped http error",
			err:        fmt.Errorf("lookup: %w", handler.ErrBadGateway),
			wantStatus: http.StatusBadGateway,
			want:       &handler.ErrorDetail{Code: "bad_gateway", Message: "Bad Gateway"},
		},
		{
			name:       "plain error hides its text",
			err:        errors.New("pq: password authentication failed"),
			wantStatus: http.StatusInternalServerError,
			want:       &handler.ErrorDetail{Code: "internal_error", Message: "Internal Server Error"},
		},
		{
			name:       "explicit detail",
			err:        &handler.ErrorDetail{Code: "submission_failed", Details: map[string][]string{"general": {"x"}}},
			wantStatus: http.StatusInternalServerError,
			want:       &handler.ErrorDetail{Code: "submission_failed", Details: map[string][]string{"general": {"x"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := httptest.NewRecorder()
			require.NoError(t, handler.JSONError(tt.err).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.want, decodeBody(t, w).Error)
		})
	}

	t.Run("status override", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		resp := handler.JSONError(&handler.ErrorDetail{Code: "submission_failed"}, handler.WithJSONStatus(http.StatusBadGateway))
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestEmpty(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	require.NoError(t, handler.Empty().Render(w, httptest.NewRequest(http.MethodDelete, "/", nil)))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	require.NoError(t, handler.EmptyWithStatus(http.StatusAccepted).Render(w, httptest.NewRequest(http.MethodPost, "/", nil)))
	assert.Equal(t, http.StatusAccepted, w.Code)
}

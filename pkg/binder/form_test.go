package binder_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/binder"
)

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("binds urlencoded body", func(t *testing.T) {
		t.Parallel()
		values := url.Values{
			"firstName": {"  Mary-Jane "},
			"email":     {"mj@example.com"},
			"age":       {"41"},
			"tags":      {"vip", "new"},
			"notes":     {"call back"},
		}
		req := newBodyRequest("application/x-www-form-urlencoded", values.Encode())

		var got customerBody
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, "  Mary-Jane ", got.FirstName)
		assert.Equal(t, "mj@example.com", got.Email)
		assert.Equal(t, 41, got.Age)
		assert.Equal(t, []string{"vip", "new"}, got.Tags)
		require.NotNil(t, got.Notes)
		assert.Equal(t, "call back", *got.Notes)
	})

	t.Run("missing fields keep zero values", func(t *testing.T) {
		t.Parallel()
		req := newBodyRequest("application/x-www-form-urlencoded", "email=a%40b.co")

		var got customerBody
		require.NoError(t, binder.Form()(req, &got))
		assert.Empty(t, got.FirstName)
		assert.Nil(t, got.Notes)
	})

	t.Run("rejects json content type", func(t *testing.T) {
		t.Parallel()
		var got customerBody
		err := binder.Form()(newBodyRequest("application/json", `{}`), &got)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		var got customerBody
		err := binder.Form()(newBodyRequest("application/x-www-form-urlencoded", "age=old"), &got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
		assert.Contains(t, err.Error(), "age")
	})

	t.Run("non pointer target", func(t *testing.T) {
		t.Parallel()
		var got customerBody
		err := binder.Form()(newBodyRequest("application/x-www-form-urlencoded", "age=1"), got)
		assert.ErrorIs(t, err, binder.ErrFailedToParseForm)
	})
}

func TestBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		body        string
		want        string
		wantErr     error
	}{
		{"json", "application/json", `{"email":"a@b.co"}`, "a@b.co", nil},
		{"form", "application/x-www-form-urlencoded", "email=a%40b.co", "a@b.co", nil},
		{"multipart is unsupported", "multipart/form-data; boundary=x", "", "", binder.ErrUnsupportedMediaType},
		{"missing content type", "", "", "", binder.ErrMissingContentType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var got customerBody
			err := binder.Body()(newBodyRequest(tt.contentType, tt.body), &got)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Email)
		})
	}
}

func TestForm_EmbeddedStruct(t *testing.T) {
	t.Parallel()

	type request struct {
		ID int64 `form:"-"`
		customerBody
	}

	req := newBodyRequest("application/x-www-form-urlencoded", "firstName=Ann&age=7&ID=9")

	var got request
	require.NoError(t, binder.Form()(req, &got))
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, 7, got.Age)
	assert.Zero(t, got.ID)
}

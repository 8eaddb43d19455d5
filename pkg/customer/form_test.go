package customer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/customerdesk/pkg/customer"
)

type detailError struct{ detail string }

func (e detailError) Error() string       { return "upstream: " + e.detail }
func (e detailError) ErrorDetail() string { return e.detail }

func TestForm_SetClearsOnlyThatField(t *testing.T) {
	t.Parallel()

	form := customer.NewForm(nil, customer.FormFields{})
	assert.False(t, form.Validate())
	assert.Len(t, form.Errors(), 4)

	require.NoError(t, form.Set(customer.FieldEmail, "still wrong"))
	errs := form.Errors()
	assert.False(t, errs.Has(customer.FieldEmail))
	assert.True(t, errs.Has(customer.FieldFirstName))
	assert.Equal(t, "still wrong", form.Fields().Email)

	assert.ErrorIs(t, form.Set("nickname", "x"), customer.ErrUnknownField)
}

func TestForm_ValidateRecomputes(t *testing.T) {
	t.Parallel()

	form := customer.NewForm(nil, customer.FormFields{})
	assert.False(t, form.Validate())

	for _, field := range customer.Fields {
		v, err := validFields().Get(field)
		require.NoError(t, err)
		require.NoError(t, form.Set(field, v))
	}
	assert.True(t, form.Validate())
	assert.True(t, form.Errors().IsEmpty())
}

func TestForm_Submit(t *testing.T) {
	t.Parallel()

	t.Run("blocked by validation errors", func(t *testing.T) {
		t.Parallel()
		called := false
		form := customer.NewForm(nil, customer.FormFields{FirstName: "A"})

		err := form.Submit(context.Background(), customer.MsgCreateFailed, func(context.Context, customer.FormFields) error {
			called = true
			return nil
		})

		assert.False(t, called)
		fe := fieldErrors(t, err)
		assert.Equal(t, "First name must be at least 2 characters", fe.Get(customer.FieldFirstName))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		var saved customer.FormFields
		form := customer.NewForm(nil, validFields())

		err := form.Submit(context.Background(), customer.MsgCreateFailed, func(_ context.Context, f customer.FormFields) error {
			saved = f
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, validFields(), saved)
		assert.True(t, form.Errors().IsEmpty())
	})

	t.Run("upstream detail is html encoded", func(t *testing.T) {
		t.Parallel()
		form := customer.NewForm(nil, validFields())

		err := form.Submit(context.Background(), customer.MsgCreateFailed, func(context.Context, customer.FormFields) error {
			return detailError{detail: `<img src=x onerror="alert('x')">`}
		})

		var subErr *customer.SubmissionError
		require.ErrorAs(t, err, &subErr)
		want := "&lt;img src=x onerror=&quot;alert(&#x27;x&#x27;)&quot;&gt;"
		assert.Equal(t, customer.FieldErrors{customer.FieldGeneral: want}, subErr.Errors)
		assert.Equal(t, customer.FieldErrors{customer.FieldGeneral: want}, form.Errors())
		assert.Equal(t, "upstream: "+`<img src=x onerror="alert('x')">`, errors.Unwrap(err).Error())
	})

	t.Run("fallback when no detail", func(t *testing.T) {
		t.Parallel()
		form := customer.NewForm(nil, validFields())

		err := form.Submit(context.Background(), customer.MsgUpdateFailed, func(context.Context, customer.FormFields) error {
			return errors.New("connection refused")
		})

		var subErr *customer.SubmissionError
		require.ErrorAs(t, err, &subErr)
		assert.Equal(t, "Failed to update customer", subErr.Errors.Get(customer.FieldGeneral))
	})

	t.Run("blank detail uses fallback", func(t *testing.T) {
		t.Parallel()
		form := customer.NewForm(nil, validFields())

		err := form.Submit(context.Background(), customer.MsgCreateFailed, func(context.Context, customer.FormFields) error {
			return detailError{detail: "   "}
		})

		var subErr *customer.SubmissionError
		require.ErrorAs(t, err, &subErr)
		assert.Equal(t, "Failed to create customer", subErr.Errors.Get(customer.FieldGeneral))
	})
}

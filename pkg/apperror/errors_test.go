package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Body(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want map[string]any
	}{
		{
			name: "detail with reason",
			err:  ErrUserInactive,
			want: map[string]any{"detail": "User is inactive", "code": "user_inactive"},
		},
		{
			name: "detail only",
			err:  NewNotFoundError("Link"),
			want: map[string]any{"detail": "No Link matches the given query."},
		},
		{
			name: "non field errors",
			err:  NewNonFieldError("Без поставщика может быть только Завод"),
			want: map[string]any{"non_field_errors": []string{"Без поставщика может быть только Завод"}},
		},
		{
			name: "field errors",
			err:  NewFieldError("name", "This field is required."),
			want: map[string]any{"name": []string{"This field is required."}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Body())
		})
	}
}

func TestFieldErrors_Add(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("products", "first")
	fields.Add("products", "second")
	fields.Add("contact", "third")

	assert.Equal(t, []string{"first", "second"}, fields["products"])
	assert.Equal(t, []string{"contact", "products"}, fields.Fields())

	err := NewValidationError(fields)
	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, "Validation failed: contact: third; products: first second", err.Error())
}

func TestGetAppError(t *testing.T) {
	wrapped := fmt.Errorf("load user: %w", ErrForbidden)
	assert.True(t, IsAppError(wrapped))
	assert.Same(t, ErrForbidden, GetAppError(wrapped))

	plain := errors.New("connection refused")
	assert.False(t, IsAppError(plain))
	got := GetAppError(plain)
	assert.Equal(t, http.StatusInternalServerError, got.Code)
	assert.NotContains(t, got.Message, "connection refused")
}

package apperror

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// NonFieldErrorsKey is the body key used for errors that are not bound to a single field.
const NonFieldErrorsKey = "non_field_errors"

// FieldErrors maps a request field (json name) to its error messages.
type FieldErrors map[string][]string

// Add appends a message for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Fields returns the sorted field names, handy for stable log output.
func (f FieldErrors) Fields() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AppError represents an application error with HTTP status code.
// Either Fields is set (validation failures) or Message/Reason (everything else).
type AppError struct {
	Code    int
	Message string
	Reason  string
	Fields  FieldErrors
}

func (e *AppError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, k := range e.Fields.Fields() {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], " "))
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Body renders the error the way clients expect it on the wire.
func (e *AppError) Body() map[string]any {
	if len(e.Fields) > 0 {
		body := make(map[string]any, len(e.Fields))
		for k, v := range e.Fields {
			body[k] = v
		}
		return body
	}
	body := map[string]any{"detail": e.Message}
	if e.Reason != "" {
		body["code"] = e.Reason
	}
	return body
}

// Common errors
var (
	ErrNotAuthenticated = &AppError{Code: http.StatusUnauthorized, Message: "Authentication credentials were not provided.", Reason: "not_authenticated"}
	ErrInvalidToken     = &AppError{Code: http.StatusUnauthorized, Message: "Given token not valid for any token type", Reason: "token_not_valid"}
	ErrUserInactive     = &AppError{Code: http.StatusUnauthorized, Message: "User is inactive", Reason: "user_inactive"}
	ErrUserNotFound     = &AppError{Code: http.StatusUnauthorized, Message: "User not found", Reason: "user_not_found"}
	// ErrInvalidCredentials is returned for unknown emails, wrong passwords and inactive accounts alike.
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "No active account found with the given credentials", Reason: "no_active_account"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "You do not have permission to perform this action.", Reason: "permission_denied"}
	ErrTooManyRequests    = &AppError{Code: http.StatusTooManyRequests, Message: "Request was throttled.", Reason: "throttled"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Internal server error"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError wraps a set of field errors into a 400.
func NewValidationError(fields FieldErrors) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// NewFieldError is a validation error for a single field.
func NewFieldError(field, message string) *AppError {
	return NewValidationError(FieldErrors{field: {message}})
}

// NewNonFieldError is a validation error that concerns the object as a whole.
func NewNonFieldError(messages ...string) *AppError {
	return NewValidationError(FieldErrors{NonFieldErrorsKey: messages})
}

// NewNotFoundError creates a not found error for the given resource name.
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: "No " + resource + " matches the given query.",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError. Unknown errors become a bare 500
// so internal details never reach the client.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternalServer
}

package errors

import (
	"errors"
	"net/http"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NonFieldErrors is the key used for validation failures that are not tied to
// a single field.
const NonFieldErrors = "non_field_errors"

// ValidationErrors maps a field name to the list of human-readable messages
// explaining why the submitted value was rejected. It is the body of every
// 422 response.
type ValidationErrors map[string][]string

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, messages := range e {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return strings.Join(parts, ", ")
}

// Add appends a message for the given field.
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// AsValidationErrors unwraps err into ValidationErrors if possible.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// FromBindingError converts a gin binding failure into per-field messages so
// clients always see the same 422 body shape regardless of which layer
// rejected the input.
func FromBindingError(err error) ValidationErrors {
	result := ValidationErrors{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add(NonFieldErrors, "Invalid request body.")
		return result
	}

	for _, fe := range fieldErrs {
		field := snakeCase(fe.Field())
		switch fe.Tag() {
		case "required":
			result.Add(field, "This field is required.")
		case "email":
			result.Add(field, "Enter a valid email address.")
		case "min":
			result.Add(field, "Ensure this field has at least "+fe.Param()+" characters.")
		case "max":
			result.Add(field, "Ensure this field has no more than "+fe.Param()+" characters.")
		default:
			result.Add(field, "This value is invalid.")
		}
	}

	return result
}

func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DetailResponse is the body of 401/403/404 responses.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication credentials were not provided."
	}
	c.JSON(http.StatusUnauthorized, DetailResponse{Detail: message})
}

// Forbidden sends a 403 response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "You do not have permission to perform this action."
	}
	c.JSON(http.StatusForbidden, DetailResponse{Detail: message})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Not found."
	}
	c.JSON(http.StatusNotFound, DetailResponse{Detail: message})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error."
	}
	c.JSON(http.StatusInternalServerError, DetailResponse{Detail: message})
}

// UnprocessableEntity sends a 422 response enumerating per-field messages.
func UnprocessableEntity(c *gin.Context, errs ValidationErrors) {
	c.JSON(http.StatusUnprocessableEntity, errs)
}

package openapi

import (
	"net/http"
	"strings"
)

// ErrorKind identifies a category of failure response. The set is closed;
// each kind maps to an HTTP status code and a globally shared documentation
// schema registered during document build.
type ErrorKind string

const (
	ErrValidation      ErrorKind = "VALIDATION_ERROR"
	ErrUnauthorized    ErrorKind = "UNAUTHORIZED"
	ErrForbidden       ErrorKind = "FORBIDDEN"
	ErrNotFound        ErrorKind = "NOT_FOUND"
	ErrConflict        ErrorKind = "CONFLICT"
	ErrTooManyRequests ErrorKind = "TOO_MANY_REQUESTS"
	ErrInternal        ErrorKind = "INTERNAL_ERROR"
)

// errorKinds is the closed enumeration in stable registration order.
var errorKinds = []ErrorKind{
	ErrValidation,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrConflict,
	ErrTooManyRequests,
	ErrInternal,
}

// Kinds returns the closed set of error kinds in stable order.
func Kinds() []ErrorKind {
	out := make([]ErrorKind, len(errorKinds))
	copy(out, errorKinds)
	return out
}

// Status maps the kind to its HTTP status code. The mapping is total:
// kinds without an explicit entry default to 500.
func (k ErrorKind) Status() int {
	switch k {
	case ErrValidation:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// SchemaName returns the component schema name for the kind's shared error
// schema (e.g. "VALIDATION_ERROR" becomes "ValidationError").
func (k ErrorKind) SchemaName() string {
	parts := strings.Split(string(k), "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(strings.ToLower(p[1:]))
	}
	return b.String()
}

// errorSchemaName is the component name of the shared base error shape
// every kind-specific schema extends.
const errorSchemaName = "ErrorResponse"

// baseErrorSchema is the common error shape shared by all error responses.
func baseErrorSchema() *Schema {
	return &Schema{
		Type: TypeString("object"),
		Properties: map[string]*Schema{
			"error": {
				Type:        TypeString("string"),
				Description: "Machine-readable error kind",
			},
			"message": {
				Type:        TypeString("string"),
				Description: "Human-readable error description",
			},
			"statusCode": {
				Type:        TypeString("integer"),
				Description: "HTTP status code",
			},
		},
		Required: []string{"error", "message", "statusCode"},
	}
}

// errorSchema extends the common error shape for one kind, embedding the
// kind name and its mapped status as example values.
func errorSchema(k ErrorKind) *Schema {
	schema := baseErrorSchema()
	schema.Properties["error"].Example = string(k)
	schema.Properties["statusCode"].Example = k.Status()
	schema.Example = map[string]any{
		"error":      string(k),
		"message":    http.StatusText(k.Status()),
		"statusCode": k.Status(),
	}
	return schema
}

package openapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStatus(t *testing.T) {
	cases := map[ErrorKind]int{
		ErrValidation:      http.StatusBadRequest,
		ErrUnauthorized:    http.StatusUnauthorized,
		ErrForbidden:       http.StatusForbidden,
		ErrNotFound:        http.StatusNotFound,
		ErrConflict:        http.StatusConflict,
		ErrTooManyRequests: http.StatusTooManyRequests,
		ErrInternal:        http.StatusInternalServerError,
	}
	for kind, status := range cases {
		assert.Equal(t, status, kind.Status(), "kind %s", kind)
	}

	t.Run("unmapped kind defaults to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, ErrorKind("SOMETHING_ELSE").Status())
	})
}

func TestErrorKindSchemaName(t *testing.T) {
	assert.Equal(t, "ValidationError", ErrValidation.SchemaName())
	assert.Equal(t, "Unauthorized", ErrUnauthorized.SchemaName())
	assert.Equal(t, "TooManyRequests", ErrTooManyRequests.SchemaName())
	assert.Equal(t, "InternalError", ErrInternal.SchemaName())
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Len(t, kinds, 7)

	// The returned slice is a copy: mutating it must not affect the set.
	kinds[0] = ErrorKind("MUTATED")
	assert.Equal(t, ErrValidation, Kinds()[0])
}

func TestErrorSchema(t *testing.T) {
	t.Run("extends the shared error shape", func(t *testing.T) {
		base := baseErrorSchema()
		schema := errorSchema(ErrNotFound)

		for name := range base.Properties {
			assert.Contains(t, schema.Properties, name)
		}
		assert.Equal(t, base.Required, schema.Required)
	})

	t.Run("kind embedded as example", func(t *testing.T) {
		schema := errorSchema(ErrNotFound)
		require.Contains(t, schema.Properties, "error")
		assert.Equal(t, "NOT_FOUND", schema.Properties["error"].Example)
		assert.Equal(t, http.StatusNotFound, schema.Properties["statusCode"].Example)
	})
}

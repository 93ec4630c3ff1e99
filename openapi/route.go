package openapi

import "net/http"

// Method is an HTTP method a route can be documented under.
// The set is closed: only the methods below are assignable to a path item.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodPatch  Method = http.MethodPatch
	MethodDelete Method = http.MethodDelete
)

// IsValid reports whether the method belongs to the documented set.
func (m Method) IsValid() bool {
	switch m {
	case MethodGet, MethodPost, MethodPut, MethodPatch, MethodDelete:
		return true
	}
	return false
}

// AuthLevel is the authentication requirement of a route.
type AuthLevel int

const (
	// AuthNone marks a public route.
	AuthNone AuthLevel = iota
	// AuthUser requires a valid bearer token.
	AuthUser
	// AuthAdmin requires a bearer token with admin privileges.
	AuthAdmin
)

// FileKind selects the structural shape of an injected file field.
// The set is closed: only binary and array-of-binary fields can be
// retrofitted onto a body schema.
type FileKind int

const (
	// FileBinary documents a single binary upload field.
	FileBinary FileKind = iota
	// FileBinaryArray documents a repeated binary upload field.
	FileBinaryArray
)

// FileField describes a multipart file field injected into a body schema.
// This supports documenting file uploads without a dedicated upload type:
// the field is appended to the registered body schema's property map.
type FileField struct {
	Name        string
	Description string
	Required    bool
	Kind        FileKind
}

// schema returns the structural schema for the injected field.
func (f FileField) schema() *Schema {
	binary := &Schema{Type: TypeString("string"), Format: "binary"}
	switch f.Kind {
	case FileBinaryArray:
		return &Schema{Type: TypeString("array"), Items: binary, Description: f.Description}
	default:
		binary.Description = f.Description
		return binary
	}
}

// RequestSchemas holds the per-location request schemas of a route.
// Each field is a Go value whose type is described via reflection, or a
// *Schema for explicit control. Path, Query, and Cookies must be flat
// objects of scalars; non-object schemas yield no parameters.
type RequestSchemas struct {
	Path    any
	Query   any
	Body    any
	Cookies any

	// ContentType overrides the request body media type. Defaults to
	// "application/json", or "multipart/form-data" when file fields
	// are present.
	ContentType string
}

// ResponseSpec describes one documented response of a route.
type ResponseSpec struct {
	Description string
	Body        any

	// SetCookie, when non-empty, documents a Set-Cookie header on the
	// response with the given description.
	SetCookie string

	// ContentType overrides the response media type
	// (default "application/json").
	ContentType string
}

// Route is the input record describing one documented endpoint. Routes are
// registered on a Builder one at a time; each registration compiles the
// descriptor into an operation and stores it in the builder's path table.
type Route struct {
	// Name namespaces the schemas registered for this route
	// (e.g. "getUser" produces "getUserQuery", "getUserBody",
	// "getUserResponse200") and becomes the operationId.
	Name string

	// Path is the route template using ":name" placeholders
	// (e.g. "/users/:id").
	Path string

	Method  Method
	Summary string

	// Request holds the per-location request schemas, if any.
	Request *RequestSchemas

	// OptionalFields lists field names exempt from the required-by-default
	// rule during parameter extraction.
	OptionalFields []string

	// Files lists multipart file fields injected into the body schema.
	Files []FileField

	// Responses maps HTTP status codes to response descriptors.
	Responses map[int]ResponseSpec

	// Errors lists the error kinds this route can produce. Kinds implied
	// by the descriptor (validation, unauthorized) are added during
	// compilation and need not be declared.
	Errors []ErrorKind

	// Auth is the authentication requirement (default AuthNone).
	Auth AuthLevel

	// Tags groups the operation in the document.
	Tags []string
}

// Package openapi compiles declarative route descriptors into a single
// OpenAPI v3.1.0 document with a named-schema components registry.
//
// The package targets documentation assembly only: it deduplicates schemas,
// translates path-parameter syntax, extracts parameters from structured
// schemas, maps error kinds to status codes, and injects security
// requirements. It never validates live traffic.
//
// See: https://spec.openapis.org/oas/v3.1.0
// See: https://json-schema.org/draft/2020-12/json-schema-core
//
// # Building a Document
//
// Create a builder, register one Route per endpoint, and build:
//
//	b := openapi.New(openapi.Info{Title: "My API", Version: "1.0.0"})
//
//	b.Add(openapi.Route{
//	    Name:    "getUser",
//	    Path:    "/users/:id",
//	    Method:  openapi.MethodGet,
//	    Summary: "Fetch a user by ID",
//	    Auth:    openapi.AuthUser,
//	    Request: &openapi.RequestSchemas{
//	        Path: UserParams{},
//	    },
//	    Responses: map[int]openapi.ResponseSpec{
//	        200: {Description: "The requested user", Body: User{}},
//	    },
//	    Errors: []openapi.ErrorKind{openapi.ErrNotFound},
//	    Tags:   []string{"users"},
//	})
//
//	doc := b.Build()
//
// Route paths use ":name" placeholders and are translated to the OpenAPI
// "{name}" syntax. Each builder owns its own schema registry and path
// table, so independent documents can be built within one process.
//
// # Request Schemas
//
// Request shapes are plain Go values described via reflection, keyed by
// location. Path, query, and cookie schemas must be flat objects of
// scalars; each field becomes one parameter, required unless listed in
// OptionalFields:
//
//	type ListParams struct {
//	    Limit  int    `json:"limit"`
//	    Cursor string `json:"cursor"`
//	}
//
//	b.Add(openapi.Route{
//	    Name:           "listUsers",
//	    Path:           "/users",
//	    Method:         openapi.MethodGet,
//	    Request:        &openapi.RequestSchemas{Query: ListParams{}},
//	    OptionalFields: []string{"cursor"},
//	    Responses:      map[int]openapi.ResponseSpec{200: {Body: []User{}}},
//	})
//
// Body schemas are registered into components under a route-derived name
// ("listUsersBody") and referenced via $ref. Pass a *openapi.Schema for
// explicit schema control.
//
// # File Uploads
//
// File fields are injected into the registered body schema, turning the
// request into multipart/form-data without a dedicated upload type:
//
//	b.Add(openapi.Route{
//	    Name:   "uploadAvatar",
//	    Path:   "/users/:id/avatar",
//	    Method: openapi.MethodPost,
//	    Request: &openapi.RequestSchemas{Body: AvatarMeta{}},
//	    Files: []openapi.FileField{
//	        {Name: "avatar", Required: true, Kind: openapi.FileBinary},
//	    },
//	})
//
// # Error Responses
//
// Error kinds form a closed set, each mapped to an HTTP status and a
// globally shared components schema. Declared kinds, plus kinds implied by
// the descriptor (validation errors when schemas are present, unauthorized
// when Auth is set), become error responses referencing those schemas.
// All kind schemas are registered during Build regardless of use.
//
// # Authentication
//
// Routes with Auth set to AuthUser or AuthAdmin carry a bearer-token
// security requirement; a single "bearerAuth" http-bearer scheme is
// declared in components.
//
// # Struct Tags
//
// The reflection generator honors json tags (name, omitempty) and an
// "openapi" tag for schema enrichment:
//
//	type CreateUserInput struct {
//	    Name  string `json:"name" openapi:"description=Full name,minLength=1"`
//	    Email string `json:"email" openapi:"format=email"`
//	    Role  string `json:"role" openapi:"enum=admin|user|guest"`
//	}
//
// Supported tag keys: description, example, format, title, minimum,
// maximum, minLength, maxLength, pattern, minItems, maxItems, enum
// (pipe-separated), deprecated.
//
// # Serving and Exporting
//
// Handler returns an http.Handler serving the document as JSON and YAML:
//
//	http.ListenAndServe(":8080", b.Handler())
//
// Setting the ROUTEDOC_EXPORT environment variable makes Build write the
// document to docs/openapi.json. Validate round-trips a built document
// through an OpenAPI loader as a publish-time consistency check.
package openapi

package openapi

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// ExportEnv is the environment variable gating document export. When set
// to a non-empty value, Build writes the document to ExportPath.
const ExportEnv = "ROUTEDOC_EXPORT"

// ExportPath is the fixed location the document is exported to, relative
// to the working directory of the build.
const ExportPath = "docs/openapi.json"

// Builder accumulates route descriptors and assembles them into a single
// OpenAPI document. It owns the schema registry and the path table for the
// lifetime of the build pass; independent builders never share state.
//
// Concurrency: Builder instances are not safe for concurrent use. The
// intended usage is a single sequential registration phase at startup
// followed by Build.
type Builder struct {
	info    Info
	servers []Server
	tags    []Tag

	registry *SchemaRegistry
	paths    map[string]map[Method]*Operation

	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used for build diagnostics such as duplicate
// route registrations. The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// New creates a Builder with the given API info.
func New(info Info, opts ...Option) *Builder {
	b := &Builder{
		info:     info,
		registry: newSchemaRegistry(),
		paths:    make(map[string]map[Method]*Operation),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry exposes the builder's schema registry for direct schema
// registration alongside route-driven registrations.
func (b *Builder) Registry() *SchemaRegistry {
	return b.registry
}

// AddServer adds a server to the document.
func (b *Builder) AddServer(server Server) *Builder {
	b.servers = append(b.servers, server)
	return b
}

// AddTag adds a tag description to the document.
func (b *Builder) AddTag(tag Tag) *Builder {
	b.tags = append(b.tags, tag)
	return b
}

// Add compiles the route descriptor and stores the resulting operation in
// the path table, keyed by translated path and method. Registering the same
// (path, method) pair twice overwrites the prior operation; the overwrite
// is logged so re-registration never passes silently.
func (b *Builder) Add(route Route) *Builder {
	if !route.Method.IsValid() {
		b.logger.Warn("unsupported method, route skipped",
			"method", string(route.Method),
			"route", route.Name)
		return b
	}

	path := TranslatePath(route.Path)

	methods, ok := b.paths[path]
	if !ok {
		methods = make(map[Method]*Operation)
		b.paths[path] = methods
	}
	if _, dup := methods[route.Method]; dup {
		b.logger.Warn("duplicate route registration, overwriting",
			"path", path,
			"method", string(route.Method),
			"route", route.Name)
	}

	methods[route.Method] = compileOperation(b.registry, route)
	return b
}

// Build assembles the complete document from the current state: the shared
// error schemas are (re-)registered, the path table is folded into path
// items, and the components section is produced from the registry plus the
// bearer security scheme.
//
// Build may be called multiple times; each call reflects the latest
// snapshot of registered routes. When the ROUTEDOC_EXPORT environment
// variable is set the document is also written to docs/openapi.json;
// a write failure is not translated and panics.
func (b *Builder) Build() *Document {
	b.registerErrorSchemas()

	doc := &Document{
		OpenAPI: "3.1.0",
		Info:    b.info,
		Servers: b.servers,
		Tags:    b.tags,
		Paths:   make(map[string]*PathItem, len(b.paths)),
	}

	for path, methods := range b.paths {
		item := &PathItem{}
		for method, op := range methods {
			assignOperation(item, method, op)
		}
		doc.Paths[path] = item
	}

	doc.Components = &Components{
		Schemas: b.registry.Schemas(),
		SecuritySchemes: map[string]*SecurityScheme{
			bearerScheme: {
				Type:         "http",
				Scheme:       "bearer",
				BearerFormat: "JWT",
			},
		},
	}

	if os.Getenv(ExportEnv) != "" {
		if err := doc.WriteFile(ExportPath); err != nil {
			panic(fmt.Errorf("openapi: export document: %w", err))
		}
	}

	return doc
}

// registerErrorSchemas registers the shared base error shape and one schema
// per error kind in the closed enumeration. Registration is idempotent:
// repeated builds overwrite with identical schemas.
func (b *Builder) registerErrorSchemas() {
	b.registry.Register(errorSchemaName, baseErrorSchema())
	for _, kind := range errorKinds {
		b.registry.Register(kind.SchemaName(), errorSchema(kind))
	}
}

// assignOperation assigns an operation to the correct HTTP method field
// on the path item.
func assignOperation(item *PathItem, method Method, op *Operation) {
	switch method {
	case MethodGet:
		item.Get = op
	case MethodPost:
		item.Post = op
	case MethodPut:
		item.Put = op
	case MethodPatch:
		item.Patch = op
	case MethodDelete:
		item.Delete = op
	}
}

// WriteFile serializes the document as pretty-printed JSON to path. The
// target directory must exist; missing directories and permission errors
// surface unchanged.
func (d *Document) WriteFile(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

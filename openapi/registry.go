package openapi

// RegisterResult reports the outcome of a schema registration. Failed
// conversions are absorbed rather than propagated: the caller drops that
// piece of documentation and moves on, so the result carries the reason
// a fragment was omitted.
type RegisterResult int

const (
	// Registered means the schema was stored under its name.
	Registered RegisterResult = iota
	// SkippedNoSchema means the value produced no usable structural
	// schema and the registry was left unchanged.
	SkippedNoSchema
)

// Ok reports whether the registration stored a schema.
func (r RegisterResult) Ok() bool {
	return r == Registered
}

// SchemaRegistry stores named structural schemas referenced by the
// document's components section. Names are unique: registering under an
// existing name overwrites the prior entry. Field injection mutates an
// existing entry's property map in place.
//
// Concurrency: a registry is not safe for concurrent use. The intended
// usage is a single sequential registration phase followed by document
// build within one process.
type SchemaRegistry struct {
	schemas map[string]*Schema
}

// newSchemaRegistry creates an empty registry.
func newSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{
		schemas: make(map[string]*Schema),
	}
}

// Register converts the value to a structural schema and stores it under
// name, overwriting any prior entry. Extra file fields are appended to the
// schema's property map, supporting multipart uploads on an otherwise JSON
// body schema. When the value yields no usable structural schema the
// registry is left unchanged and SkippedNoSchema is returned.
func (r *SchemaRegistry) Register(name string, value any, files ...FileField) RegisterResult {
	schema := describeValue(value)
	if schema == nil {
		return SkippedNoSchema
	}

	r.schemas[name] = schema
	if len(files) > 0 {
		r.Extend(name, files...)
	}
	return Registered
}

// Extend merges file fields into the property map of an existing entry.
// Unlike Register, this mutates in place rather than overwriting. Missing
// entries are ignored, matching the best-effort policy of the compiler.
func (r *SchemaRegistry) Extend(name string, files ...FileField) {
	schema, ok := r.schemas[name]
	if !ok {
		return
	}

	for _, f := range files {
		if f.Name == "" {
			continue
		}
		if f.Kind != FileBinary && f.Kind != FileBinaryArray {
			continue
		}
		if schema.Properties == nil {
			schema.Properties = make(map[string]*Schema)
		}
		schema.Properties[f.Name] = f.schema()
		if f.Required && !containsString(schema.Required, f.Name) {
			schema.Required = append(schema.Required, f.Name)
		}
	}
}

// Schema returns the registered schema for name.
func (r *SchemaRegistry) Schema(name string) (*Schema, bool) {
	schema, ok := r.schemas[name]
	return schema, ok
}

// Schemas returns the registered schemas keyed by name. The returned map
// is the registry's backing store and becomes the components section of
// the built document.
func (r *SchemaRegistry) Schemas() map[string]*Schema {
	return r.schemas
}

// schemaRef builds a components reference to a registered schema.
func schemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

// isObjectSchema reports whether the schema describes an object with named
// fields. Only such schemas drive parameter extraction.
func isObjectSchema(s *Schema) bool {
	return s != nil && s.Type.Is("object") && len(s.Properties) > 0
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

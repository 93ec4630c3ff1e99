package openapi

import "sort"

// Parameter locations used by the extractor.
const (
	inPath   = "path"
	inQuery  = "query"
	inCookie = "cookie"
)

// extractParameters registers the schema under name and emits one parameter
// per object field for the given location. Fields are required unless listed
// in optional. Returns nil when no schema is supplied, when registration
// fails, or when the registered schema is not object-shaped: path, query,
// and cookie parameters are assumed to always be flat objects of scalars.
//
// Parameters are emitted in sorted field order so repeated builds produce
// identical documents.
func extractParameters(reg *SchemaRegistry, name string, value any, in string, optional []string) []*Parameter {
	if value == nil {
		return nil
	}
	if !reg.Register(name, value).Ok() {
		return nil
	}

	schema, ok := reg.Schema(name)
	if !ok || !isObjectSchema(schema) {
		return nil
	}

	fields := make([]string, 0, len(schema.Properties))
	for field := range schema.Properties {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	params := make([]*Parameter, 0, len(fields))
	for _, field := range fields {
		params = append(params, &Parameter{
			Name:     field,
			In:       in,
			Required: !containsString(optional, field),
			Schema:   schema.Properties[field],
		})
	}
	return params
}

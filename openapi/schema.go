package openapi

import (
	"reflect"
	"strconv"
	"strings"
	"time"
)

// describeValue converts a Go value into a structural schema: a nested
// description of the value's shape (object fields, arrays, primitives)
// independent of any schema library. A *Schema passed directly is used
// as-is for explicit schema control. Returns nil when the value carries
// no describable structure (nil input, channels, functions), which the
// registry treats as a failed conversion.
func describeValue(v any) *Schema {
	if v == nil {
		return nil
	}
	if s, ok := v.(*Schema); ok {
		return s
	}
	d := &describer{visiting: make(map[reflect.Type]bool)}
	return d.describeType(reflect.TypeOf(v))
}

// describer walks a type graph producing structural schemas. It tracks the
// struct types on the current walk path so self-referential types terminate
// instead of recursing without bound.
type describer struct {
	visiting map[reflect.Type]bool
}

// describeType produces a Schema for the given Go type. Pointer types are
// unwrapped and marked nullable using type arrays per JSON Schema
// Draft 2020-12.
func (d *describer) describeType(t reflect.Type) *Schema {
	nullable := false
	if t.Kind() == reflect.Pointer {
		nullable = true
		t = t.Elem()
	}

	schema := d.describeKind(t)
	if nullable && schema != nil {
		applyNullable(schema)
	}
	return schema
}

// describeKind maps Go primitive and composite types to JSON Schema types.
//
// See: https://spec.openapis.org/oas/v3.1.0#data-types
func (d *describer) describeKind(t reflect.Type) *Schema {
	// Special cases first.
	if t == reflect.TypeOf(time.Time{}) {
		return &Schema{Type: TypeString("string"), Format: "date-time"}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Schema{Type: TypeString("boolean")}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: TypeString("integer")}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: TypeString("number")}

	case reflect.String:
		return &Schema{Type: TypeString("string")}

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Schema{Type: TypeString("string"), Format: "byte"}
		}
		return &Schema{
			Type:  TypeString("array"),
			Items: d.describeType(t.Elem()),
		}

	case reflect.Array:
		return &Schema{
			Type:  TypeString("array"),
			Items: d.describeType(t.Elem()),
		}

	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return &Schema{Type: TypeString("object")}
		}
		return &Schema{
			Type:                 TypeString("object"),
			AdditionalProperties: d.describeType(t.Elem()),
		}

	case reflect.Struct:
		return d.describeStruct(t)

	case reflect.Interface:
		return &Schema{}
	}

	return nil
}

// describeStruct builds an object schema from struct fields. A struct type
// already on the walk path marks a cycle and collapses to an open object:
// the schema stays inline, so there is no component to reference back to.
//
// See: https://json-schema.org/draft/2020-12/json-schema-core#section-10.3.2
func (d *describer) describeStruct(t reflect.Type) *Schema {
	if d.visiting[t] {
		return &Schema{Type: TypeString("object")}
	}
	d.visiting[t] = true
	defer delete(d.visiting, t)

	schema := &Schema{
		Type:       TypeString("object"),
		Properties: make(map[string]*Schema),
	}

	d.collectFields(t, schema, false)

	if len(schema.Properties) == 0 {
		schema.Properties = nil
	}

	return schema
}

// collectFields recursively collects struct fields into the schema.
// When allOptional is true, all fields are treated as optional regardless
// of their json tags. This is used for pointer-embedded structs where the
// entire embedded struct can be nil and thus all its fields may be absent.
func (d *describer) collectFields(t reflect.Type, schema *Schema, allOptional bool) {
	for i := range t.NumField() {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		// Handle embedded structs: inline only when the field has no
		// explicit json tag name. encoding/json treats an anonymous field
		// with a tag name as a regular named field, not inlined.
		if field.Anonymous {
			jsonName, _ := parseJSONTag(field.Tag.Get("json"))
			if jsonName == "" {
				ft := field.Type
				isPtr := ft.Kind() == reflect.Pointer
				if isPtr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					d.collectFields(ft, schema, allOptional || isPtr)
					continue
				}
			}
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, omitempty := parseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		fieldSchema := d.describeType(field.Type)
		if fieldSchema == nil {
			continue
		}

		applyOpenAPITag(fieldSchema, field.Tag.Get("openapi"))

		schema.Properties[name] = fieldSchema

		if !omitempty && !allOptional {
			schema.Required = append(schema.Required, name)
		}
	}
}

func parseJSONTag(tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	name, rest, _ := strings.Cut(tag, ",")
	return name, strings.Contains(rest, "omitempty") || strings.Contains(rest, "omitzero")
}

// applyOpenAPITag parses the `openapi` struct tag and applies constraints
// to the schema. Tag keys map to JSON Schema keywords.
//
// See: https://json-schema.org/draft/2020-12/json-schema-validation
func applyOpenAPITag(schema *Schema, tag string) {
	if tag == "" {
		return
	}

	for part := range strings.SplitSeq(tag, ",") {
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if hasValue {
			value = strings.TrimSpace(value)
		}

		switch key {
		case "description":
			schema.Description = value
		case "example":
			schema.Example = parseExampleValue(schema, value)
		case "format":
			schema.Format = value
		case "title":
			schema.Title = value
		case "minimum":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Minimum = &v
			}
		case "maximum":
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				schema.Maximum = &v
			}
		case "minLength":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MinLength = &v
			}
		case "maxLength":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MaxLength = &v
			}
		case "pattern":
			schema.Pattern = value
		case "minItems":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MinItems = &v
			}
		case "maxItems":
			if v, err := strconv.Atoi(value); err == nil {
				schema.MaxItems = &v
			}
		case "enum":
			values := strings.Split(value, "|")
			schema.Enum = make([]any, len(values))
			for i, v := range values {
				schema.Enum[i] = v
			}
		case "deprecated":
			schema.Deprecated = true
		}
	}
}

// parseExampleValue converts a string tag value to the appropriate Go type
// based on the schema's type field.
func parseExampleValue(schema *Schema, value string) any {
	types := schema.Type.Values()
	if len(types) == 0 {
		return value
	}

	switch types[0] {
	case "integer":
		if v, err := strconv.ParseInt(value, 10, 64); err == nil {
			return v
		}
	case "number":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case "boolean":
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}

// applyNullable modifies a schema to allow null values by converting
// the type to an array (e.g., "string" becomes ["string", "null"]).
// In JSON Schema Draft 2020-12, nullable is expressed via type arrays
// rather than the OpenAPI 3.0 "nullable" keyword.
func applyNullable(schema *Schema) {
	if schema.Ref != "" {
		return
	}
	types := schema.Type.Values()
	if len(types) > 0 {
		schema.Type = TypeArray(append(types, "null")...)
	}
}

package openapi

import (
	"net/http"
	"strconv"
)

// Media types used by the compiler.
const (
	contentJSON      = "application/json"
	contentMultipart = "multipart/form-data"
)

// bearerScheme is the name of the single bearer-auth security scheme
// declared in the document's components section.
const bearerScheme = "bearerAuth"

// compileOperation assembles one operation from a route descriptor,
// registering every schema the descriptor carries into the registry.
//
// Registration failures silently drop that piece of documentation rather
// than aborting the route: the compiler never fails, it degrades
// documentation completeness instead.
func compileOperation(reg *SchemaRegistry, route Route) *Operation {
	op := &Operation{
		Summary:     route.Summary,
		Tags:        route.Tags,
		OperationID: route.Name,
		Responses:   make(map[string]*Response),
	}

	kinds := make([]ErrorKind, 0, len(route.Errors)+2)
	seen := make(map[ErrorKind]bool, len(route.Errors)+2)
	addKind := func(k ErrorKind) {
		if !seen[k] {
			seen[k] = true
			kinds = append(kinds, k)
		}
	}
	for _, k := range route.Errors {
		addKind(k)
	}

	// Protected routes document the bearer requirement and can always
	// fail with an unauthorized response.
	if route.Auth != AuthNone {
		addKind(ErrUnauthorized)
		op.Security = []SecurityRequirement{{bearerScheme: {}}}
	}

	if route.Request != nil {
		// Fixed extraction order: path, then query, then cookie.
		locations := []struct {
			suffix string
			value  any
			in     string
		}{
			{"Path", route.Request.Path, inPath},
			{"Query", route.Request.Query, inQuery},
			{"Cookies", route.Request.Cookies, inCookie},
		}
		for _, loc := range locations {
			params := extractParameters(reg, route.Name+loc.suffix, loc.value, loc.in, route.OptionalFields)
			if len(params) > 0 {
				addKind(ErrValidation)
				op.Parameters = append(op.Parameters, params...)
			}
		}

		if route.Request.Body != nil {
			name := route.Name + "Body"
			if reg.Register(name, route.Request.Body, route.Files...).Ok() {
				addKind(ErrValidation)
				op.RequestBody = &RequestBody{
					Required: true,
					Content: map[string]*MediaType{
						bodyContentType(route): {Schema: schemaRef(name)},
					},
				}
			}
		}
	}

	for status, spec := range route.Responses {
		key := strconv.Itoa(status)

		resp := &Response{Description: spec.Description}
		if resp.Description == "" {
			resp.Description = http.StatusText(status)
		}

		if spec.Body != nil {
			name := route.Name + "Response" + key
			if reg.Register(name, spec.Body).Ok() {
				contentType := spec.ContentType
				if contentType == "" {
					contentType = contentJSON
				}
				resp.Content = map[string]*MediaType{
					contentType: {Schema: schemaRef(name)},
				}
			}
		}

		if spec.SetCookie != "" {
			resp.Headers = map[string]*Header{
				"Set-Cookie": {
					Description: spec.SetCookie,
					Schema:      &Schema{Type: TypeString("string")},
				},
			}
		}

		op.Responses[key] = resp
	}

	// Error responses reference the globally registered error schemas;
	// those schemas are registered during document build, independent of
	// which routes declare them.
	for _, k := range kinds {
		status := k.Status()
		op.Responses[strconv.Itoa(status)] = &Response{
			Description: http.StatusText(status),
			Content: map[string]*MediaType{
				contentJSON: {Schema: schemaRef(k.SchemaName())},
			},
		}
	}

	return op
}

// bodyContentType resolves the request body media type: an explicit
// override wins, file fields imply multipart, everything else is JSON.
func bodyContentType(route Route) string {
	if route.Request != nil && route.Request.ContentType != "" {
		return route.Request.ContentType
	}
	if len(route.Files) > 0 {
		return contentMultipart
	}
	return contentJSON
}

package openapi

import "regexp"

// pathTokenRegexp matches ":name" path-parameter tokens in route templates.
var pathTokenRegexp = regexp.MustCompile(`:([A-Za-z_][A-Za-z0-9_]*)`)

// TranslatePath converts a route path template using ":name" placeholders
// into the OpenAPI "{name}" placeholder syntax:
//
//	/users/:id/posts/:postId -> /users/{id}/posts/{postId}
//
// No validation of placeholder well-formedness is performed; malformed
// templates pass through unchanged. The translation is idempotent on
// paths without ":"-prefixed tokens.
func TranslatePath(path string) string {
	return pathTokenRegexp.ReplaceAllString(path, "{$1}")
}

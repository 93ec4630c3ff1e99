package openapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validate checks the document for internal consistency by round-tripping
// it through an OpenAPI loader: dangling schema references, malformed
// operations, and invalid security requirements all surface as errors.
// The built document is expected to always pass; Validate exists so
// integrations can assert that before publishing the artifact.
func (d *Document) Validate(ctx context.Context) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}

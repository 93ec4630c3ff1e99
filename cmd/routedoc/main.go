// Command routedoc inspects and converts OpenAPI documents produced by the
// builder (or any OpenAPI 3.x document).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "routedoc",
		Short:         "Inspect and convert OpenAPI documents",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate an OpenAPI document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := openapi3.NewLoader()
			loader.IsExternalRefsAllowed = true

			doc, err := loader.LoadFromFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to load document: %w", err)
			}
			if err := doc.Validate(context.Background()); err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}

			fmt.Printf("%s is valid (%d paths)\n", args[0], doc.Paths.Len())
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert an OpenAPI document between JSON and YAML",
		Long:  "convert reads a JSON or YAML OpenAPI document and writes it in the format implied by the output file extension.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("missing required flag: --output")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read document: %w", err)
			}

			// YAML is a superset of JSON, so one decoder covers both
			// input formats.
			var doc map[string]any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("failed to parse document: %w", err)
			}

			out, err := encodeDocument(doc, output)
			if err != nil {
				return err
			}

			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("failed to write document: %w", err)
			}

			fmt.Printf("Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .yaml, or .yml)")

	return cmd
}

func encodeDocument(doc map[string]any, output string) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	case ".yaml", ".yml":
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported output extension %q (expected .json, .yaml, or .yml)", ext)
	}
}

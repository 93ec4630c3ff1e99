package openapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAdd(t *testing.T) {
	t.Run("stores operation under translated path", func(t *testing.T) {
		b := New(Info{Title: "Test", Version: "1.0.0"})
		b.Add(Route{Name: "getUser", Path: "/users/:id", Method: MethodGet})

		doc := b.Build()
		require.Contains(t, doc.Paths, "/users/{id}")
		assert.NotNil(t, doc.Paths["/users/{id}"].Get)
	})

	t.Run("methods share a path item", func(t *testing.T) {
		b := New(Info{Title: "Test", Version: "1.0.0"})
		b.Add(Route{Name: "listUsers", Path: "/users", Method: MethodGet})
		b.Add(Route{Name: "createUser", Path: "/users", Method: MethodPost})

		doc := b.Build()
		require.Len(t, doc.Paths, 1)
		item := doc.Paths["/users"]
		assert.NotNil(t, item.Get)
		assert.NotNil(t, item.Post)
	})

	t.Run("unsupported method skipped with a warning", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		b := New(Info{Title: "Test", Version: "1.0.0"}, WithLogger(logger))
		b.Add(Route{Name: "trace", Path: "/x", Method: Method("TRACE")})

		assert.Empty(t, b.Build().Paths)
		assert.Contains(t, buf.String(), "unsupported method")
	})

	t.Run("duplicate registration overwrites with a warning", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		b := New(Info{Title: "Test", Version: "1.0.0"}, WithLogger(logger))
		b.Add(Route{Name: "first", Path: "/users/:id", Method: MethodGet, Summary: "First"})
		b.Add(Route{Name: "second", Path: "/users/:id", Method: MethodGet, Summary: "Second"})

		doc := b.Build()
		assert.Equal(t, "Second", doc.Paths["/users/{id}"].Get.Summary)
		assert.Contains(t, buf.String(), "duplicate route registration")
	})

	t.Run("self-referential body schema", func(t *testing.T) {
		type comment struct {
			Text    string    `json:"text"`
			Replies []comment `json:"replies,omitempty"`
		}

		b := New(Info{Title: "Test", Version: "1.0.0"})
		require.NotPanics(t, func() {
			b.Add(Route{
				Name:   "createComment",
				Path:   "/comments",
				Method: MethodPost,
				Request: &RequestSchemas{
					Body: comment{},
				},
			})
		})

		doc := b.Build()
		body := doc.Components.Schemas["createCommentBody"]
		require.NotNil(t, body)
		assert.Contains(t, body.Properties, "replies")
	})
}

func TestBuilderBuild(t *testing.T) {
	t.Run("document metadata", func(t *testing.T) {
		b := New(Info{Title: "Test API", Version: "2.0.0"}).
			AddServer(Server{URL: "https://api.example.com"}).
			AddTag(Tag{Name: "users", Description: "User management"})

		doc := b.Build()
		assert.Equal(t, "3.1.0", doc.OpenAPI)
		assert.Equal(t, "Test API", doc.Info.Title)
		require.Len(t, doc.Servers, 1)
		require.Len(t, doc.Tags, 1)
	})

	t.Run("error schemas registered globally", func(t *testing.T) {
		// No route declares any error kind; the shared schemas are
		// registered regardless.
		b := New(Info{Title: "Test", Version: "1.0.0"})
		doc := b.Build()

		require.NotNil(t, doc.Components)
		assert.Contains(t, doc.Components.Schemas, errorSchemaName)
		for _, kind := range Kinds() {
			assert.Contains(t, doc.Components.Schemas, kind.SchemaName())
		}
	})

	t.Run("bearer security scheme declared", func(t *testing.T) {
		doc := New(Info{Title: "Test", Version: "1.0.0"}).Build()
		require.Contains(t, doc.Components.SecuritySchemes, bearerScheme)
		scheme := doc.Components.SecuritySchemes[bearerScheme]
		assert.Equal(t, "http", scheme.Type)
		assert.Equal(t, "bearer", scheme.Scheme)
	})

	t.Run("rebuild is idempotent", func(t *testing.T) {
		b := New(Info{Title: "Test", Version: "1.0.0"})
		b.Add(Route{
			Name:    "getUser",
			Path:    "/users/:id",
			Method:  MethodGet,
			Auth:    AuthUser,
			Request: &RequestSchemas{Path: idParams{}},
			Responses: map[int]ResponseSpec{
				200: {Body: testUser{}},
			},
		})

		first, err := json.Marshal(b.Build())
		require.NoError(t, err)
		second, err := json.Marshal(b.Build())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("independent builders share no state", func(t *testing.T) {
		a := New(Info{Title: "A", Version: "1.0.0"})
		b := New(Info{Title: "B", Version: "1.0.0"})
		a.Add(Route{Name: "onlyInA", Path: "/a", Method: MethodGet})

		assert.Contains(t, a.Build().Paths, "/a")
		assert.Empty(t, b.Build().Paths)
	})
}

func TestBuilderExport(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv(ExportEnv, "")
		t.Chdir(t.TempDir())

		New(Info{Title: "Test", Version: "1.0.0"}).Build()
		_, err := os.Stat(ExportPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("writes pretty-printed document when enabled", func(t *testing.T) {
		t.Setenv(ExportEnv, "1")
		dir := t.TempDir()
		t.Chdir(dir)
		require.NoError(t, os.Mkdir(filepath.Join(dir, "docs"), 0o755))

		New(Info{Title: "Test", Version: "1.0.0"}).Build()

		data, err := os.ReadFile(ExportPath)
		require.NoError(t, err)

		var doc Document
		require.NoError(t, json.Unmarshal(data, &doc))
		assert.Equal(t, "Test", doc.Info.Title)
		assert.Contains(t, string(data), "\n  \"info\"")
	})

	t.Run("missing directory is fatal", func(t *testing.T) {
		t.Setenv(ExportEnv, "1")
		t.Chdir(t.TempDir())

		assert.Panics(t, func() {
			New(Info{Title: "Test", Version: "1.0.0"}).Build()
		})
	})
}

func TestDocumentWriteFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "openapi.json")
		doc := New(Info{Title: "Test", Version: "1.0.0"}).Build()
		require.NoError(t, doc.WriteFile(path))

		var got Document
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, doc.Info, got.Info)
	})

	t.Run("write error surfaces", func(t *testing.T) {
		doc := New(Info{Title: "Test", Version: "1.0.0"}).Build()
		err := doc.WriteFile(filepath.Join(t.TempDir(), "missing", "openapi.json"))
		assert.Error(t, err)
	})
}

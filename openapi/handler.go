package openapi

import (
	"encoding/json"
	"net/http"
	"sync"

	"gopkg.in/yaml.v3"
)

// Handler returns an http.Handler serving the built document at
// "/openapi.json" and "/openapi.yaml". The document is built and serialized
// once on first request; later route registrations on the builder are not
// reflected.
func (b *Builder) Handler() http.Handler {
	var (
		once     sync.Once
		jsonData []byte
		yamlData []byte
		buildErr error
	)
	load := func() error {
		once.Do(func() {
			doc := b.Build()
			jsonData, buildErr = json.MarshalIndent(doc, "", "  ")
			if buildErr != nil {
				return
			}
			yamlData, buildErr = yaml.Marshal(doc)
		})
		return buildErr
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		if err := load(); err != nil {
			http.Error(w, "failed to serialize document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(jsonData)
	})

	mux.HandleFunc("GET /openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		if err := load(); err != nil {
			http.Error(w, "failed to serialize document", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(yamlData)
	})

	return mux
}

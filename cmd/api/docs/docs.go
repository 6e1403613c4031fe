// Package docs embeds the OpenAPI description of the API and rewrites its
// servers section so the interactive UI always calls back to the origin it
// was loaded from. Embedding keeps the document and the running code in sync
// and makes it readable regardless of the working directory.
package docs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed openapi.json
var openapiJSON []byte

//go:embed index.html
var indexHTML string

type Docs struct {
	document map[string]any
	ui       []byte
}

// New parses the embedded OpenAPI template and renders the UI page for the
// given path prefix. A malformed template is a startup error, never a
// per-request one.
func New(pathPrefix string) (*Docs, error) {
	var document map[string]any
	if err := json.Unmarshal(openapiJSON, &document); err != nil {
		return nil, fmt.Errorf("parsing embedded openapi document: %w", err)
	}

	configURL := pathPrefix + "/swagger-config"
	ui := strings.ReplaceAll(indexHTML, "__SWAGGER_CONFIG_URL__", configURL)
	if ui == indexHTML {
		return nil, fmt.Errorf("embedded ui page has no __SWAGGER_CONFIG_URL__ placeholder")
	}

	return &Docs{document: document, ui: []byte(ui)}, nil
}

// Render returns the OpenAPI document with its servers entry replaced by
// serverURL. The parsed template is shared between requests, so only the
// top level map is copied before the servers key is overwritten.
func (d *Docs) Render(serverURL string) ([]byte, error) {
	patched := make(map[string]any, len(d.document)+1)
	for k, v := range d.document {
		patched[k] = v
	}
	patched["servers"] = []map[string]any{{"url": serverURL}}

	body, err := json.Marshal(patched)
	if err != nil {
		return nil, fmt.Errorf("rendering openapi document: %w", err)
	}
	return body, nil
}

// UI returns the rendered documentation page.
func (d *Docs) UI() []byte {
	return d.ui
}

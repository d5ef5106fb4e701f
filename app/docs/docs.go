// Package docs serves the interactive API reference page, rendered by
// Scalar from the service OpenAPI document.
package docs

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed index.html
var indexHTML string

var page = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Title       string
	DocumentURL string
}

// Handler renders the reference page once and serves it for every
// request.
func Handler(title, documentURL string) (http.HandlerFunc, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, pageData{Title: title, DocumentURL: documentURL}); err != nil {
		return nil, errors.WithStack(err)
	}
	body := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}, nil
}

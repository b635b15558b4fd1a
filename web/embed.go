// Package web embeds the browser UI: the index template and the static
// assets it references.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// StaticFS returns the file system rooted at static/, for serving under the
// /static/ prefix.
func StaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("web: static assets: %w", err)
	}
	return http.FS(sub), nil
}

// Templates parses the embedded templates. Failure means the binary shipped
// with broken assets, so callers treat it as fatal.
func Templates() (*template.Template, error) {
	t, err := template.ParseFS(assets, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("web: templates: %w", err)
	}
	return t, nil
}

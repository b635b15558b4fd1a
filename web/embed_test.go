package web

import (
	"io"
	"testing"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("Templates: %v", err)
	}
	if tmpl.Lookup("index.tmpl") == nil {
		t.Fatalf("index.tmpl not parsed")
	}
}

func TestStaticFSServesAssets(t *testing.T) {
	fsys, err := StaticFS()
	if err != nil {
		t.Fatalf("StaticFS: %v", err)
	}
	for _, name := range []string{"/style.css", "/app.js"} {
		f, err := fsys.Open(name)
		if err != nil {
			t.Fatalf("Open %s: %v", name, err)
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil || len(data) == 0 {
			t.Fatalf("%s empty or unreadable: %v", name, err)
		}
	}
}

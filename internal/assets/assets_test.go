package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	manifestDir := filepath.Join(dir, "dist")
	if err := os.MkdirAll(manifestDir, 0o755); err != nil {
		t.Fatalf("failed to create manifest dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(manifestDir, "manifest.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
}

func TestManifestLoadAndGet(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `{"css/styles.css":"css/styles.abcd1234.css"}`)

	m := NewManifest(dir)
	if err := m.Load(); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := m.GetCSS(); got != "/static/css/styles.abcd1234.css" {
		t.Fatalf("unexpected css path: %s", got)
	}
	if !m.Hashed("css/styles.abcd1234.css") {
		t.Fatal("expected hashed stylesheet to be recognised")
	}
	if m.Hashed("css/styles.css") {
		t.Fatal("expected source path not to count as hashed")
	}
	if got := m.Get("missing.js"); got != "/static/missing.js" {
		t.Fatalf("expected fallback path, got %s", got)
	}
	if m.Hashed("missing.js") {
		t.Fatal("expected missing.js not to be hashed")
	}
}

func TestManifestLoadMissingFile(t *testing.T) {
	m := NewManifest(t.TempDir())
	if err := m.Load(); err != nil {
		t.Fatalf("expected missing manifest to be handled, got %v", err)
	}

	if got := m.GetCSS(); got != "/static/css/styles.css" {
		t.Fatalf("expected fallback path for styles.css, got %s", got)
	}
}

func TestManifestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "{not-json")

	m := NewManifest(dir)
	if err := m.Load(); err == nil {
		t.Fatal("expected invalid JSON error")
	}
}

// Package assets resolves static asset paths through the manifest written by
// the asset build, falling back to the unhashed path in development.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// URLPrefix is where the server mounts the static directory.
const URLPrefix = "/static/"

// Manifest maps source asset paths to their content-hashed names.
type Manifest struct {
	mu        sync.RWMutex
	assets    map[string]string
	hashed    map[string]struct{}
	staticDir string
}

func NewManifest(staticDir string) *Manifest {
	return &Manifest{
		assets:    make(map[string]string),
		hashed:    make(map[string]struct{}),
		staticDir: staticDir,
	}
}

// Path is the manifest location under the static directory.
func (m *Manifest) Path() string {
	return filepath.Join(m.staticDir, "dist", "manifest.json")
}

// Load reads dist/manifest.json. A missing manifest is not an error.
func (m *Manifest) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// #nosec G304 -- path comes from configuration, not user input
	data, err := os.ReadFile(m.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.assets = make(map[string]string)
			m.hashed = make(map[string]struct{})
			return nil
		}
		return err
	}

	assets := make(map[string]string)
	if err := json.Unmarshal(data, &assets); err != nil {
		return err
	}
	m.assets = assets
	m.hashed = make(map[string]struct{}, len(assets))
	for _, name := range assets {
		m.hashed[name] = struct{}{}
	}
	return nil
}

// Get returns the URL for an asset, hashed when the manifest lists it.
func (m *Manifest) Get(path string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if hashed, ok := m.assets[path]; ok {
		return URLPrefix + hashed
	}
	return URLPrefix + path
}

// Hashed reports whether name, relative to the static directory, is a
// content-hashed build output. Those never change and can be cached forever.
func (m *Manifest) Hashed(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.hashed[name]
	return ok
}

func (m *Manifest) GetCSS() string {
	return m.Get("css/styles.css")
}

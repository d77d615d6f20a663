package middleware

import (
	"net/http"
	"strings"
)

// HashedAssets reports whether a static file name is a content-hashed build
// output.
type HashedAssets interface {
	Hashed(name string) bool
}

// CacheControl sets Cache-Control by route family.
type CacheControl struct {
	assets HashedAssets
}

// NewCacheControl creates the middleware; assets may be nil.
func NewCacheControl(assets HashedAssets) *CacheControl {
	return &CacheControl{assets: assets}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, "/static/"):
			c.setStaticCacheHeaders(w, path)

		case strings.HasPrefix(path, "/api/"):
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")

		case isPagePath(path) && r.Method == http.MethodGet:
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}

func isPagePath(path string) bool {
	return path == "/" || path == "" || path == "/care-plan"
}

func (c *CacheControl) setStaticCacheHeaders(w http.ResponseWriter, path string) {
	lowerPath := strings.ToLower(path)

	if isImmutableAsset(lowerPath) || (c.assets != nil && c.assets.Hashed(strings.TrimPrefix(path, "/static/"))) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		return
	}

	// Unhashed CSS changes on deploy.
	if strings.HasSuffix(lowerPath, ".css") || strings.HasSuffix(lowerPath, ".js") {
		w.Header().Set("Cache-Control", "public, max-age=86400, must-revalidate")
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
}

func isImmutableAsset(path string) bool {
	immutableExtensions := []string{
		".woff", ".woff2", ".ttf", ".otf",
		".jpg", ".jpeg", ".png", ".gif", ".webp", ".ico", ".svg",
	}

	for _, ext := range immutableExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

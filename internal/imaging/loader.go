package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// Loader decodes fragment photos from disk and caches the decoded rasters
// by path, so batch runs that touch the same photo twice (e.g. compare
// after build) pay for decoding once.
//
// Loader is safe for concurrent use. Cached images stay in memory until
// Evict or Clear; a CLI invocation is short-lived enough that this never
// matters, but long-running callers should evict behind themselves.
type Loader struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewLoader returns an empty, ready-to-use Loader.
func NewLoader() *Loader {
	return &Loader{images: make(map[string]image.Image)}
}

// Load returns the decoded photo at path, reading from disk on the first
// call and from the cache afterwards. PNG, JPEG, and GIF are supported.
func (l *Loader) Load(path string) (image.Image, error) {
	l.mu.RLock()
	if img, ok := l.images[path]; ok {
		l.mu.RUnlock()
		return img, nil
	}
	l.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fragment photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode fragment photo %s: %w", path, err)
	}

	l.mu.Lock()
	l.images[path] = img
	l.mu.Unlock()

	return img, nil
}

// Evict drops a single cached photo. Unknown paths are a no-op.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.images, path)
	l.mu.Unlock()
}

// Clear drops every cached photo.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.images = make(map[string]image.Image)
	l.mu.Unlock()
}

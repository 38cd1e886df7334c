package gen

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// manifestVersion is bumped when the manifest layout changes. Manifests
// with another version are ignored.
const manifestVersion = 1

// Manifest records the content hash of every generated file.
type Manifest struct {
	Version int               `msgpack:"version"`
	Files   map[string]string `msgpack:"files"`

	mu sync.Mutex
}

// NewManifest returns an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{Version: manifestVersion, Files: make(map[string]string)}
}

// ReadManifest reads the manifest at path. A missing or outdated manifest
// yields an empty one.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewManifest(), nil
	}
	if err != nil {
		return nil, err
	}
	m := NewManifest()
	if err := msgpack.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if m.Version != manifestVersion {
		return NewManifest(), nil
	}
	if m.Files == nil {
		m.Files = make(map[string]string)
	}
	return m, nil
}

// Add records the hash of content under path and returns it.
func (m *Manifest) Add(path string, content []byte) string {
	sum := sha256.Sum256(content)
	h := hex.EncodeToString(sum[:])
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Files == nil {
		m.Files = make(map[string]string)
	}
	m.Files[path] = h
	return h
}

// Hash returns the recorded hash of path, or "".
func (m *Manifest) Hash(path string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Files[path]
}

// WriteFile encodes the manifest to path.
func (m *Manifest) WriteFile(path string) error {
	m.mu.Lock()
	data, err := msgpack.Marshal(m)
	m.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

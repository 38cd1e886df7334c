package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// File is one generated artifact. Path is relative to the target directory.
type File struct {
	Path    string
	Content []byte
}

// Writer writes generated files under the target directory with parallel
// execution. When the manifest feature is enabled, files whose content did
// not change since the last run are left untouched.
type Writer struct {
	target   string
	workers  int
	manifest bool

	// Metrics for performance monitoring
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks generation output.
type WriterMetrics struct {
	FilesWritten int
	FilesSkipped int
	TotalBytes   int64
}

// NewWriter creates a writer for the target directory of the config.
func NewWriter(c *Config) *Writer {
	w := &Writer{
		target:   c.Target,
		workers:  c.Workers,
		manifest: c.HasFeature(FeatureManifest.Name),
	}
	if w.workers < 1 {
		w.workers = runtime.GOMAXPROCS(0)
	}
	return w
}

// Metrics returns a snapshot of the writer metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Write writes all files in parallel. It stops at the first failure or when
// the context is canceled.
func (w *Writer) Write(ctx context.Context, files []*File) error {
	if w.target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(w.target, 0o755); err != nil {
		return NewGenerationError("write", w.target, "create output directory", err)
	}
	for _, f := range files {
		if err := checkPath(f.Path); err != nil {
			return err
		}
	}
	var (
		prev = &Manifest{}
		next = NewManifest()
		err  error
	)
	manifestPath := filepath.Join(w.target, ManifestFile)
	if w.manifest {
		if prev, err = ReadManifest(manifestPath); err != nil {
			return NewGenerationError("manifest", manifestPath, "read manifest", err)
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)
	for _, f := range files {
		f := f
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(f, prev, next)
			}
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if w.manifest {
		if err := next.WriteFile(manifestPath); err != nil {
			return NewGenerationError("manifest", manifestPath, "write manifest", err)
		}
	}
	return nil
}

// writeFile writes a single file.
func (w *Writer) writeFile(f *File, prev, next *Manifest) error {
	fullPath := filepath.Join(w.target, f.Path)
	sum := next.Add(f.Path, f.Content)
	if w.manifest && prev.Hash(f.Path) == sum && unchanged(fullPath, f.Content) {
		w.mu.Lock()
		w.metrics.FilesSkipped++
		w.mu.Unlock()
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return NewGenerationError("write", f.Path, "create directory", err)
	}
	if err := os.WriteFile(fullPath, f.Content, 0o644); err != nil {
		return NewGenerationError("write", f.Path, "write file", err)
	}

	// Update metrics
	w.mu.Lock()
	w.metrics.FilesWritten++
	w.metrics.TotalBytes += int64(len(f.Content))
	w.mu.Unlock()
	return nil
}

// unchanged reports whether the file on disk holds exactly content.
func unchanged(path string, content []byte) bool {
	data, err := os.ReadFile(path)
	return err == nil && bytes.Equal(data, content)
}

// checkPath rejects paths escaping the target directory.
func checkPath(p string) error {
	switch {
	case p == "":
		return NewGenerationError("write", p, "empty file path", nil)
	case filepath.IsAbs(p):
		return NewGenerationError("write", p, "file path must be relative to the target", nil)
	}
	clean := filepath.ToSlash(filepath.Clean(p))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return NewGenerationError("write", p, "file path escapes the target directory", nil)
	}
	return nil
}

// Package objc renders Objective-C++ manager wrappers that expose a native
// C++ object cache to Objective-C code.
//
// Every object type of the graph yields one manager class written to two
// files: <Manager>.h with the fetch declarations and <Manager>.mm with their
// implementations, the constructor and the +defaultManager accessor.
package objc

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/objcgen/compiler/gen"
)

// Generator is the default gen.Generator writing Objective-C managers.
var Generator gen.Generator = gen.GenerateFunc(Generate)

// NewManagerFor builds the manager of the given type. Warnings raised while
// rendering go to w.
func NewManagerFor(t *gen.Type, w gen.Warner) (*Manager, error) {
	vars, err := VarsOf(t)
	if err != nil {
		return nil, gen.NewSchemaError(t.Name, "", "", err)
	}
	m := NewManager(t.Manager,
		WithClassPrefix(t.ClassPrefix),
		WithNamespace(t.Namespace),
		WithDirector(t.Director),
		WithWarner(w),
	)
	m.SetObjectName(t.Name, t.Plural)
	if err := m.SetVariables(vars); err != nil {
		return nil, err
	}
	for _, c := range t.Fetches {
		m.AddFetchCommand(c)
	}
	for _, c := range t.Saves {
		m.AddSaveCommand(c)
	}
	for _, c := range t.Deletes {
		m.AddDeleteCommand(c)
	}
	return m, nil
}

// Render renders the files of all types in parallel. The result follows the
// order of the graph nodes.
func Render(ctx context.Context, g *gen.Graph, w gen.Warner) ([]*gen.File, error) {
	rendered := make([][]*gen.File, len(g.Nodes))
	eg, ctx := errgroup.WithContext(ctx)
	if g.Workers > 0 {
		eg.SetLimit(g.Workers)
	}
	for i, t := range g.Nodes {
		i, t := i, t
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Tag warnings with the type they belong to.
			tw := gen.WarnerFunc(func(msg string, args ...any) {
				w.Warn(msg, append([]any{"type", t.Name}, args...)...)
			})
			m, err := NewManagerFor(t, tw)
			if err != nil {
				return err
			}
			files, err := m.Files(g.Config, t.Comment)
			if err != nil {
				return err
			}
			rendered[i] = files
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	var files []*gen.File
	for _, fs := range rendered {
		files = append(files, fs...)
	}
	return files, nil
}

// Generate renders all managers of the graph and writes them to the target
// directory. With the strict feature enabled, warnings fail the generation
// before anything is written.
func Generate(ctx context.Context, g *gen.Graph) error {
	log := g.Log()
	diag := gen.NewDiagnostics(log)
	files, err := Render(ctx, g, diag)
	if err != nil {
		return err
	}
	if g.HasFeature(gen.FeatureStrict.Name) {
		if err := diag.Err(); err != nil {
			return err
		}
	}
	w := gen.NewWriter(g.Config)
	if err := w.Write(ctx, files); err != nil {
		return err
	}
	m := w.Metrics()
	log.Info("generated managers",
		"types", len(g.Nodes),
		"written", m.FilesWritten,
		"skipped", m.FilesSkipped,
		"bytes", m.TotalBytes,
		"warnings", diag.Len(),
	)
	return nil
}

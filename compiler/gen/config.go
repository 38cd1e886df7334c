package gen

import (
	"context"
	"log/slog"
	"runtime"
	"slices"
)

const (
	// DefaultClassPrefix is the Objective-C class prefix of generated managers.
	DefaultClassPrefix = "LCC"
	// DefaultNamespace is the C++ namespace of the native data layer.
	DefaultNamespace = "lesschat"
	// DefaultDirector is the class exposing the shared manager instances.
	DefaultDirector = "LCCDirector"

	defaultHeader = "// Code generated by objcgen, DO NOT EDIT."
)

// Config holds the global codegen configuration shared by all generated
// managers.
type Config struct {
	// Target is the directory the generated files are written to.
	Target string

	// Header is written at the top of every generated file.
	Header string

	// ClassPrefix prefixes every Objective-C class name, e.g. "LCC".
	ClassPrefix string

	// Namespace is the C++ namespace of the native managers, e.g. "lesschat".
	Namespace string

	// Director is the class holding the default manager instances.
	Director string

	// Features are the enabled feature flags.
	Features []Feature

	// Logger receives warnings and progress messages. Nil means slog.Default().
	Logger *slog.Logger

	// Workers bounds the number of files rendered and written concurrently.
	Workers int

	// Hooks wrap the Generator. They are applied in order, so the first hook
	// is the outermost one.
	Hooks []Hook

	// Generator renders and writes the graph. Nil selects the Objective-C
	// generator.
	Generator Generator
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() *Config {
	c := &Config{
		Header:      defaultHeader,
		ClassPrefix: DefaultClassPrefix,
		Namespace:   DefaultNamespace,
		Director:    DefaultDirector,
		Workers:     runtime.GOMAXPROCS(0),
	}
	for _, f := range AllFeatures {
		if f.Default {
			c.Features = append(c.Features, f)
		}
	}
	return c
}

// FeatureEnabled reports whether the given feature name is enabled.
// It returns an error if the feature name is unknown.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, err := FeatureByName(name); err != nil {
		return false, err
	}
	return slices.ContainsFunc(c.Features, func(f Feature) bool {
		return f.Name == name
	}), nil
}

// HasFeature reports whether the given feature is enabled, ignoring unknown
// names.
func (c *Config) HasFeature(name string) bool {
	enabled, _ := c.FeatureEnabled(name)
	return enabled
}

// Log returns the configured logger or the default one.
func (c *Config) Log() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Cleanup removes the artifacts of features that are not enabled, e.g. a
// manifest left by an earlier run.
func (c *Config) Cleanup() error {
	for _, f := range AllFeatures {
		if f.cleanup == nil || c.HasFeature(f.Name) {
			continue
		}
		if err := f.cleanup(c); err != nil {
			return NewGenerationError("cleanup", "", "feature "+f.Name, err)
		}
	}
	return nil
}

// The Generator interface is implemented by code generators that take a
// graph and write its artifacts.
type Generator interface {
	Generate(context.Context, *Graph) error
}

// GenerateFunc is an adapter to allow the use of ordinary function as
// Generator.
type GenerateFunc func(context.Context, *Graph) error

// Generate calls f(ctx, g).
func (f GenerateFunc) Generate(ctx context.Context, g *Graph) error {
	return f(ctx, g)
}

// Hook defines the "generate middleware". A function that gets a Generator
// and returns a Generator. For example:
//
//	hook := func(next gen.Generator) gen.Generator {
//		return gen.GenerateFunc(func(ctx context.Context, g *gen.Graph) error {
//			fmt.Println("Graph:", g)
//			return next.Generate(ctx, g)
//		})
//	}
type Hook func(Generator) Generator

// Wrap applies the configured hooks around next.
func (c *Config) Wrap(next Generator) Generator {
	for i := len(c.Hooks) - 1; i >= 0; i-- {
		next = c.Hooks[i](next)
	}
	return next
}

// Package compiler provides an API for generating Objective-C++ managers
// from object schema files.
//
//	cfg, err := gen.NewConfig(gen.WithTarget("./Managers"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := compiler.Generate(ctx, "./schema", cfg); err != nil {
//		log.Fatal(err)
//	}
package compiler

import (
	"context"
	"fmt"

	"github.com/syssam/objcgen/compiler/gen"
	"github.com/syssam/objcgen/compiler/gen/objc"
	"github.com/syssam/objcgen/compiler/load"
)

// Option allows for managing codegen configuration using functional options.
type Option func(*gen.Config) error

// Extension describes an objcgen code generation extension that bundles
// generation hooks and config options.
type Extension interface {
	// Hooks holds an optional list of Hooks to apply on the graph before/after
	// the code-generation.
	Hooks() []gen.Hook

	// Options holds the additional options to apply on the codegen config.
	Options() []Option
}

// DefaultExtension is the default implementation for Extension. Embed it in
// extensions that only implement a subset of the interface.
type DefaultExtension struct{}

// Hooks of the extension.
func (DefaultExtension) Hooks() []gen.Hook { return nil }

// Options of the extension.
func (DefaultExtension) Options() []Option { return nil }

var _ Extension = (*DefaultExtension)(nil)

// Extensions evaluates the list of Extensions on the gen.Config.
func Extensions(extensions ...Extension) Option {
	return func(cfg *gen.Config) error {
		for _, ex := range extensions {
			cfg.Hooks = append(cfg.Hooks, ex.Hooks()...)
			for _, opt := range ex.Options() {
				if err := opt(cfg); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// FeatureNames enables features by their names.
func FeatureNames(names ...string) Option {
	return Option(gen.WithFeatureNames(names...))
}

// LoadGraph loads the schemas at schemaPath, a file or a directory, and
// returns the validated graph.
func LoadGraph(schemaPath string, cfg *gen.Config) (*gen.Graph, error) {
	schemas, err := (&load.Config{Path: schemaPath}).Load()
	if err != nil {
		return nil, fmt.Errorf("objcgen/load: load schema: %w", err)
	}
	return gen.NewGraph(cfg, schemas...)
}

// Check loads the graph and reports its problems to w. It returns the
// graph and the number of reported problems.
func Check(schemaPath string, cfg *gen.Config, w gen.Warner) (*gen.Graph, int, error) {
	g, err := LoadGraph(schemaPath, cfg)
	if err != nil {
		return nil, 0, err
	}
	return g, g.Check(w), nil
}

// Generate runs the codegen on the schemas at schemaPath.
func Generate(ctx context.Context, schemaPath string, cfg *gen.Config, options ...Option) error {
	if cfg == nil {
		return gen.NewConfigError("Config", nil, "missing codegen config")
	}
	for _, opt := range options {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	if cfg.Target == "" {
		return gen.NewConfigError("Target", nil, "missing target directory in config")
	}
	g, err := LoadGraph(schemaPath, cfg)
	if err != nil {
		return err
	}
	if err := cfg.Cleanup(); err != nil {
		return err
	}
	var generator gen.Generator = objc.Generator
	if cfg.Generator != nil {
		generator = cfg.Generator
	}
	return cfg.Wrap(generator).Generate(ctx, g)
}

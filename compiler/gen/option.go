package gen

import (
	"errors"
	"log/slog"
	"slices"
	"strings"
)

// Option configures code generation.
type Option func(*Config) error

// WithHeader sets the file header comment.
// The header is added at the top of each generated file.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
// The directory where generated code will be written.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithClassPrefix sets the Objective-C class prefix, e.g. "LCC".
// An empty prefix is allowed.
func WithClassPrefix(prefix string) Option {
	return func(c *Config) error {
		if prefix != "" && !IsIdent(prefix) {
			return NewConfigError("ClassPrefix", prefix, "must be an identifier")
		}
		c.ClassPrefix = prefix
		return nil
	}
}

// WithNamespace sets the C++ namespace of the native managers.
// Nested namespaces are separated by "::".
func WithNamespace(ns string) Option {
	return func(c *Config) error {
		if ns == "" {
			return NewConfigError("Namespace", nil, "namespace cannot be empty")
		}
		for _, part := range strings.Split(ns, "::") {
			if !IsIdent(part) {
				return NewConfigError("Namespace", ns, "must be a C++ namespace")
			}
		}
		c.Namespace = ns
		return nil
	}
}

// WithDirector sets the class that exposes the default manager instances.
func WithDirector(name string) Option {
	return func(c *Config) error {
		if !IsIdent(name) {
			return NewConfigError("Director", name, "must be an identifier")
		}
		c.Director = name
		return nil
	}
}

// WithFeatures enables specific features.
// Features control optional code generation capabilities.
func WithFeatures(features ...Feature) Option {
	return func(c *Config) error {
		for _, f := range features {
			if !slices.ContainsFunc(c.Features, func(e Feature) bool { return e.Name == f.Name }) {
				c.Features = append(c.Features, f)
			}
		}
		return nil
	}
}

// WithFeatureNames enables features by name, as given on the command line.
func WithFeatureNames(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			f, err := FeatureByName(name)
			if err != nil {
				return err
			}
			if err := WithFeatures(f)(c); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithoutFeatures disables the named features, including default ones.
func WithoutFeatures(names ...string) Option {
	return func(c *Config) error {
		for _, name := range names {
			if _, err := FeatureByName(name); err != nil {
				return err
			}
		}
		c.Features = slices.DeleteFunc(c.Features, func(f Feature) bool {
			return slices.Contains(names, f.Name)
		})
		return nil
	}
}

// WithLogger sets the logger receiving warnings and progress messages.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks are called before/after code generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// WithGenerator sets a custom code generator.
// If not set, the Objective-C generator is used.
func WithGenerator(g Generator) Option {
	return func(c *Config) error {
		if g == nil {
			return NewConfigError("Generator", nil, "generator cannot be nil")
		}
		c.Generator = g
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config from DefaultConfig with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

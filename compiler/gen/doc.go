// Package gen holds the configuration, model and output plumbing shared by the
// objcgen code generators.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Schema files (schema/*.yaml)
//	        ↓
//	   load.Schema (compiler/load)
//	        ↓
//	   Graph (internal representation, validated)
//	        ↓
//	   Generator (compiler/gen/objc)
//	        ↓
//	   Writer (parallel, manifest-aware)
//	        ↓
//	   Generated code (<Manager>.h, <Manager>.mm)
//
// # Key Types
//
//   - Graph: Holds all Type definitions with validation
//   - Type: One object: its fields and fetch/save/delete commands
//   - Field: A field with its type info and schema position
//   - Config: Global configuration for code generation
//   - Diagnostics: Non-fatal warnings collected during generation
//   - Writer: Writes generated files under the target directory
//
// # Error Handling
//
// The package uses structured error types:
//
//   - SchemaError: Schema definition errors
//   - ConfigError: Configuration errors
//   - GenerationError: Code generation errors
//   - ValidationError: Validation errors
//
// Malformed fetch clauses are not errors. They are reported as warnings
// through the configured Warner and degrade only the affected output.
//
// # Configuration
//
// Configuration is done via the functional options pattern:
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./Managers"),
//	    gen.WithClassPrefix("LCC"),
//	    gen.WithNamespace("lesschat"),
//	    gen.WithFeatures(gen.FeatureManifest),
//	)
//
// # Features
//
//   - objc/defaultmanager: emit the +defaultManager accessor (on by default)
//   - manifest: keep a content manifest and skip unchanged files
//   - strict: fail generation when warnings were reported
package gen

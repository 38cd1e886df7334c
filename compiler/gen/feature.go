package gen

import (
	"os"
	"path/filepath"
	"strings"
)

// ManifestFile is the name of the manifest written by FeatureManifest.
const ManifestFile = ".objcgen.manifest"

var (
	// FeatureDefaultManager emits the +defaultManager accessor that returns
	// the shared instance held by the director class.
	FeatureDefaultManager = Feature{
		Name:        "objc/defaultmanager",
		Stage:       Stable,
		Default:     true,
		Description: "Emits a +defaultManager accessor returning the director's shared manager",
	}

	// FeatureManifest keeps a manifest of the content hashes of generated
	// files. Files whose content did not change are not rewritten, which keeps
	// their modification times (and Xcode's incremental builds) intact.
	FeatureManifest = Feature{
		Name:        "manifest",
		Stage:       Beta,
		Default:     false,
		Description: "Keeps a content manifest and skips rewriting unchanged files",
		cleanup: func(c *Config) error {
			if c.Target == "" {
				return nil
			}
			return remove(c.Target, ManifestFile)
		},
	}

	// FeatureStrict turns generation warnings into an error.
	FeatureStrict = Feature{
		Name:        "strict",
		Stage:       Alpha,
		Default:     false,
		Description: "Fails generation when warnings were reported",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureDefaultManager,
		FeatureManifest,
		FeatureStrict,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are complete but their behavior may still change.
	Alpha

	// Beta features are documented and not expected to break.
	Beta

	// Stable features have been in use for a while.
	Stable
)

var stageNames = [...]string{
	Experimental: "experimental",
	Alpha:        "alpha",
	Beta:         "beta",
	Stable:       "stable",
}

// String returns the lowercase stage name.
func (s FeatureStage) String() string {
	if s > 0 && int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

// A Feature of the objcgen codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// cleanup used to cleanup all changes when a feature-flag is removed.
	// e.g. delete files from previous codegen runs.
	cleanup func(*Config) error
}

// FeatureByName returns the feature registered under name.
func FeatureByName(name string) (Feature, error) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, nil
		}
	}
	names := make([]string, len(AllFeatures))
	for i, f := range AllFeatures {
		names[i] = f.Name
	}
	return Feature{}, NewConfigError("Features", name, "unknown feature; use one of "+strings.Join(names, ", "))
}

// remove file (if exists) and its dir if it's empty.
func remove(dir, file string) error {
	if err := os.Remove(filepath.Join(dir, file)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	infos, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		return os.Remove(dir)
	}
	return nil
}

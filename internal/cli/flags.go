package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler/gen"
)

// DefaultSchemaPath is used when no schema path argument is given.
const DefaultSchemaPath = "./schema"

// genFlags holds the codegen flags shared by generate, check and watch.
type genFlags struct {
	target    string
	header    string
	prefix    string
	namespace string
	director  string
	features  []string
	disable   []string
	workers   int
	strict    bool
	verbose   bool
}

func (f *genFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.target, "target", "t", "", "output directory of the generated managers")
	fs.StringVar(&f.header, "header", "", "header comment of the generated files")
	fs.StringVar(&f.prefix, "prefix", gen.DefaultClassPrefix, "Objective-C class prefix")
	fs.StringVar(&f.namespace, "namespace", gen.DefaultNamespace, "C++ namespace of the native managers")
	fs.StringVar(&f.director, "director", gen.DefaultDirector, "director class holding the shared managers")
	fs.StringSliceVar(&f.features, "feature", nil, "enable codegen features by name")
	fs.StringSliceVar(&f.disable, "disable", nil, "disable codegen features by name")
	fs.IntVar(&f.workers, "workers", 0, "number of parallel render and write workers (0 for GOMAXPROCS)")
	fs.BoolVar(&f.strict, "strict", false, "treat warnings as errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

// config builds the codegen config from the flags. The target is only
// required by commands that write files.
func (f *genFlags) config(cmd *cobra.Command, needTarget bool) (*gen.Config, error) {
	if needTarget && f.target == "" {
		return nil, fmt.Errorf("missing required flag --target")
	}
	opts := []gen.Option{
		gen.WithLogger(f.logger(cmd)),
		gen.WithClassPrefix(f.prefix),
		gen.WithNamespace(f.namespace),
		gen.WithDirector(f.director),
		gen.WithFeatureNames(f.features...),
		gen.WithoutFeatures(f.disable...),
	}
	if f.target != "" {
		opts = append(opts, gen.WithTarget(f.target))
	}
	if cmd.Flags().Changed("header") {
		opts = append(opts, gen.WithHeader(f.header))
	}
	if f.workers > 0 {
		opts = append(opts, gen.WithWorkers(f.workers))
	}
	if f.strict {
		opts = append(opts, gen.WithFeatures(gen.FeatureStrict))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func (f *genFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(newConsoleHandler(cmd.ErrOrStderr(), level))
}

func schemaPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return DefaultSchemaPath
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler"
)

// GenerateCmd returns the generate command
func GenerateCmd() *cobra.Command {
	var flags genFlags
	cmd := &cobra.Command{
		Use:   "generate [schema-path]",
		Short: "Generate Objective-C++ managers from object schemas",
		Long: `Generate one manager class (a .h and a .mm file) for every object
declared in the schema files. The schema path is either a YAML file or a
directory of YAML files and defaults to ./schema.`,
		Example: `  objcgen generate --target ./Managers
  objcgen generate ./schema/user.yaml --target ./Managers --prefix APP`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd, true)
			if err != nil {
				return err
			}
			return compiler.Generate(cmd.Context(), schemaPath(args), cfg)
		},
	}
	flags.register(cmd)
	return cmd
}

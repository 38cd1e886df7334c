package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler"
)

// CheckCmd returns the check command
func CheckCmd() *cobra.Command {
	var flags genFlags
	cmd := &cobra.Command{
		Use:   "check [schema-path]",
		Short: "Validate object schemas without generating code",
		Long: `Load and validate the schema files and report the problems that would
degrade the generated managers, such as where clauses naming unknown fields.
With --strict, reported problems make the command fail.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config(cmd, false)
			if err != nil {
				return err
			}
			g, n, err := compiler.Check(schemaPath(args), cfg, cfg.Log())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if n == 0 {
				fmt.Fprintf(out, "%s %d object(s) checked\n", color.New(color.FgGreen).Sprint("✓"), len(g.Nodes))
				return nil
			}
			fmt.Fprintf(out, "%s %d object(s) checked, %d warning(s)\n", color.New(color.FgYellow).Sprint("!"), len(g.Nodes), n)
			if flags.strict {
				return fmt.Errorf("check failed with %d warning(s)", n)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

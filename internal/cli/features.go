package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler/gen"
)

// FeaturesCmd returns the features command
func FeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the codegen features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSTAGE\tDEFAULT\tDESCRIPTION")
			for _, f := range gen.AllFeatures {
				def := "no"
				if f.Default {
					def = color.New(color.FgGreen).Sprint("yes")
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", f.Name, f.Stage, def, f.Description)
			}
			return tw.Flush()
		},
	}
}

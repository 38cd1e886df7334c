package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/compiler/gen"
	"github.com/syssam/objcgen/compiler/load"
	"github.com/syssam/objcgen/schema/field"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "init Object [Object...]",
		Short: "Create starter schema files",
		Long: `Create one starter schema file per object in the schema directory.
Existing files are kept unless --force is given.`,
		Example: `  objcgen init User Group`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create schema directory: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				path, err := initSchema(dir, name, force)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s Created %s\n", color.New(color.FgGreen).Sprint("✓"), path)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintf(out, "  objcgen generate %s --target ./Managers\n", dir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", DefaultSchemaPath, "schema directory")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing schema files")
	return cmd
}

// StarterSchema returns the schema written by init for the given object.
func StarterSchema(name string) *load.Schema {
	return &load.Schema{
		Name: name,
		Fields: []*load.Field{
			{Name: "id", Info: &field.TypeInfo{Type: field.TypeString}},
		},
		Fetch: []*load.Fetch{
			{Where: "id"},
			{Where: "", Plural: true},
		},
	}
}

func initSchema(dir, name string, force bool) (string, error) {
	if err := gen.ValidSchemaName(name); err != nil {
		return "", err
	}
	path := filepath.Join(dir, strings.ToLower(name)+".yaml")
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("schema file %s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	data, err := StarterSchema(name).Marshal()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write schema: %w", err)
	}
	return path, nil
}

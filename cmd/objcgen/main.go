package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/syssam/objcgen/internal/cli"
	"github.com/syssam/objcgen/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "objcgen",
		Short:   "objcgen - Objective-C++ manager generator",
		Version: version.String(),
		Long: `objcgen reads object schemas written in YAML and generates the
Objective-C++ manager classes that expose the native object cache
to Objective-C code.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.CheckCmd())
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.FeaturesCmd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "vitrine",
		Short:         "Product catalog API with image asset lifecycle",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "optional config file (yaml, toml or json)")

	root.AddCommand(
		newServeCmd(&configPath),
		newGCCmd(&configPath),
		newTokenCmd(&configPath),
	)
	return root
}

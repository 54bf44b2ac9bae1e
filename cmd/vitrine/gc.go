package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGCCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "gc",
		Short: "Remove stored assets no product references",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), *configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.sweeper.Sweep(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scanned=%d young=%d removed=%d failed=%d\n",
				report.Scanned, report.Young, report.Removed, report.Failed)
			return nil
		},
	}
}

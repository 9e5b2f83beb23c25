package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"viscosity-service/internal/adapters/secondary/catalog"
)

func mediaCmd() *cobra.Command {
	var catalogPath string

	cmd := &cobra.Command{
		Use:   "media",
		Short: "List the media and their coefficients",
		RunE: func(cmd *cobra.Command, _ []string) error {
			media, err := catalog.Build(catalogPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range media.List() {
				legacy := "no"
				if m.Legacy != nil {
					legacy = "yes"
				}
				fmt.Fprintf(out, "%-4s %-16s c_n=%-8g c_k=%-10g legacy=%s\n",
					m.ID, m.Label, m.Kelvin.FlowIndexOffset, m.Kelvin.ConsistencyPrefactor, legacy)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Optional YAML media catalog overlay")
	return cmd
}

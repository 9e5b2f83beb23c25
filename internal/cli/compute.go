package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"viscosity-service/internal/adapters/secondary/catalog"
	"viscosity-service/internal/core/domain"
	"viscosity-service/internal/core/services"
)

func computeCmd() *cobra.Command {
	var (
		medium, temperature, channelSize, flowRate string
		formula, catalogPath                       string
		asJSON                                     bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the viscosity for one operating point",
		Example: "  viscalc compute --medium M1 --temperature 25 --channel-size 20 --flow-rate 1\n" +
			"  viscalc compute --medium M2 --temperature 24 --channel-size 30 --flow-rate 0.16 --formula legacy --json",
		RunE: func(cmd *cobra.Command, _ []string) error {
			media, err := catalog.Build(catalogPath)
			if err != nil {
				return err
			}
			svc, err := services.NewViscosityService(media, domain.FormulaKelvin, nil)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			given := func(name, value string) *string {
				if !flags.Changed(name) {
					return nil
				}
				return &value
			}

			calc, err := svc.Compute(context.Background(), services.ComputeRequest{
				Input: domain.RawInput{
					Medium:      given("medium", medium),
					Temperature: given("temperature", temperature),
					ChannelSize: given("channel-size", channelSize),
					FlowRate:    given("flow-rate", flowRate),
				},
				Formula: formula,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(calc)
			}
			_, err = fmt.Fprintln(out, calc.Result.Display())
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&medium, "medium", "m", "", "Medium id (see `viscalc media`)")
	f.StringVarP(&temperature, "temperature", "t", "", "Temperature [°C]")
	f.StringVarP(&channelSize, "channel-size", "c", "", "Channel size [µm]")
	f.StringVarP(&flowRate, "flow-rate", "q", "", "Flow rate [µl/s]")
	f.StringVar(&formula, "formula", "", "Formula: kelvin (default) or legacy")
	f.StringVar(&catalogPath, "catalog", "", "Optional YAML media catalog overlay")
	f.BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	return cmd
}

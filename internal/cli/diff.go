package cli

import (
	"fmt"

	"github.com/jmylchreest/palettegen/pkg/colour"
	"github.com/spf13/cobra"
)

// newDiffCmd creates the diff command.
func newDiffCmd(a *app) *cobra.Command {
	var contrast bool

	cmd := &cobra.Command{
		Use:   "diff <hex> <hex>",
		Short: "Print the CIEDE2000 difference between two colours",
		Long: `Print the CIEDE2000 colour difference between two colours. A difference
below about 1 is not noticeable to most people.

Examples:
  palettegen diff 6200ee 673ab7
  palettegen diff ffffff 2196f3 --contrast`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			second, err := parseColourArg(args[1])
			if err != nil {
				return err
			}

			d := colour.DeltaE2000(first.LAB(), second.LAB())
			a.logger.Debug("difference", "first", first.Hex(), "second", second.Hex(), "delta_e", d)
			if !contrast {
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", d)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "difference: %.4f\ncontrast:   %.2f:1\n", d, colour.ContrastRatio(first, second))
			return nil
		},
	}

	cmd.Flags().BoolVar(&contrast, "contrast", false, "also print the WCAG contrast ratio")
	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/colour"
	"github.com/spf13/cobra"
)

var colourSpaces = []string{"hex", "rgb", "hsb", "hsl", "xyz", "lab", "lch"}

// newConvertCmd creates the convert command.
func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert <hex>",
		Short: "Show a colour in every supported colour space",
		Long: `Convert a hex colour to RGB, HSB, HSL, CIE XYZ, CIE LAB and CIE LCH.

Examples:
  palettegen convert 6200ee
  palettegen convert "#2196f3" --to lch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("converting colour", "hex", c.Hex(), "to", to)

			values := convertColour(c)
			if to != "all" {
				fmt.Fprintln(cmd.OutOrStdout(), values[to])
				return nil
			}
			table := NewTable([]string{"SPACE", "VALUE"})
			for _, space := range colourSpaces {
				table.AddRow([]string{space, values[space]})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	spaces := append([]string{"all"}, colourSpaces...)
	cmd.Flags().VarP(newChoiceValue(&to, "all", "colour space", spaces), "to", "t", "colour space to print ("+strings.Join(spaces, ", ")+")")
	_ = cmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return spaces, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// convertColour returns c formatted in each colour space.
func convertColour(c colour.RGB) map[string]string {
	return map[string]string{
		"hex": "#" + c.Hex(),
		"rgb": c.String(),
		"hsb": c.HSB().String(),
		"hsl": c.HSL().String(),
		"xyz": c.XYZ().String(),
		"lab": c.LAB().String(),
		"lch": c.LCH().String(),
	}
}

package cli

import (
	"fmt"

	"github.com/jmylchreest/palettegen/pkg/palette"
	"github.com/spf13/cobra"
)

// newMatchCmd creates the match command.
func newMatchCmd(a *app) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "match <hex>",
		Short: "Find the golden palette tone closest to a colour",
		Long: `Find the golden palette and ramp tone nearest to a colour by CIEDE2000.

This is the tone a generated palette is anchored on.

Examples:
  palettegen match 6200ee
  palettegen match 9e9e9e --kind all`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := resolveKinds(kind)
			if err != nil {
				return err
			}
			c, err := parseColourArg(args[0])
			if err != nil {
				return err
			}

			table := NewTable([]string{"KIND", "FAMILY", "TONE", "ANCHOR", "DIFFERENCE"})
			for _, k := range kinds {
				scheme, err := palette.SchemeFor(k)
				if err != nil {
					return err
				}
				m, err := palette.FindClosest(c.LAB(), scheme.Catalog)
				if err != nil {
					return fmt.Errorf("failed to match %s palette: %w", k, err)
				}
				a.logger.Debug("matched", "kind", k, "family", m.Palette.Name(), "tone", m.Label(), "difference", m.Difference)
				anchor := m.Palette.Anchor(m.AnchorIndex).RGB()
				table.AddRow([]string{k.String(), m.Palette.Name(), m.Label(), "#" + anchor.Hex(), fmt.Sprintf("%.4f", m.Difference)})
			}
			fmt.Fprint(cmd.OutOrStdout(), table.Render())
			return nil
		},
	}

	addKindFlag(cmd.Flags(), &kind, a.env.Kind)
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	return cmd
}

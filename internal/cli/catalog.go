package cli

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/palette"
	"github.com/spf13/cobra"
)

// newCatalogCmd creates the catalog command.
func newCatalogCmd(a *app) *cobra.Command {
	var (
		kind    string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the golden palettes",
		Long: `List the golden palettes of a kind with the hex value of every tone.

Examples:
  palettegen catalog
  palettegen catalog --kind all --preview`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := resolveKinds(kind)
			if err != nil {
				return err
			}
			swatches := newSwatchRenderer(cmd.OutOrStdout(), preview, a.env.NoColor)

			var b strings.Builder
			for i, k := range kinds {
				scheme, err := palette.SchemeFor(k)
				if err != nil {
					return err
				}
				if i > 0 {
					b.WriteString("\n")
				}
				fmt.Fprintf(&b, "%s catalog (%s, %d palettes):\n", k, scheme.Catalog.Name(), scheme.Catalog.Len())
				table := NewTable([]string{"FAMILY", "TONES"})
				for _, p := range scheme.Catalog.All() {
					tones := make([]string, 0, p.Len())
					for _, anchor := range p.All() {
						tones = append(tones, swatches.Render(anchor.RGB()))
					}
					table.AddRow([]string{p.Name(), strings.Join(tones, " ")})
				}
				b.WriteString(table.Render())
			}
			fmt.Fprint(cmd.OutOrStdout(), b.String())
			return nil
		},
	}

	addKindFlag(cmd.Flags(), &kind, a.env.Kind)
	cmd.Flags().BoolVarP(&preview, "preview", "p", false, "paint swatches in the terminal")
	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	return cmd
}

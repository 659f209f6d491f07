package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/colour"
	"github.com/jmylchreest/palettegen/pkg/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats.
const (
	formatTable = "table"
	formatHex   = "hex"
	formatJSON  = "json"
	formatCSS   = "css"
)

const (
	kindAccent = "accent"
	kindAll    = "all"
)

var outputFormats = []string{formatTable, formatHex, formatJSON, formatCSS}

// parseColourArg parses a hex colour given on the command line. A leading
// '#' is accepted.
func parseColourArg(s string) (colour.RGB, error) {
	c, err := colour.ParseHex(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return colour.RGB{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// resolveKinds expands a --kind value into palette kinds.
func resolveKinds(s string) ([]palette.Kind, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, kindAll) {
		return palette.Kinds(), nil
	}
	k, err := palette.ParseKind(s)
	if err != nil {
		return nil, fmt.Errorf("unknown palette kind %q (valid: %s)", s, strings.Join(kindNames(), ", "))
	}
	return []palette.Kind{k}, nil
}

func validateFormat(format string) error {
	if !slices.Contains(outputFormats, format) {
		return fmt.Errorf("unknown output format %q (valid: %s)", format, strings.Join(outputFormats, ", "))
	}
	return nil
}

// choiceValue is a string flag limited to a fixed set of lower-case values.
type choiceValue struct {
	target  *string
	what    string
	choices []string
}

var _ pflag.Value = (*choiceValue)(nil)

func newChoiceValue(target *string, def, what string, choices []string) *choiceValue {
	*target = def
	return &choiceValue{target: target, what: what, choices: choices}
}

func (c *choiceValue) String() string { return *c.target }

func (c *choiceValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(c.choices, s) {
		return fmt.Errorf("unknown %s %q (valid: %s)", c.what, s, strings.Join(c.choices, ", "))
	}
	*c.target = s
	return nil
}

func (c *choiceValue) Type() string { return "string" }

// addKindFlag registers --kind, defaulting to the environment.
func addKindFlag(fs *pflag.FlagSet, target *string, def string) {
	fs.VarP(newChoiceValue(target, def, "palette kind", kindNames()), "kind", "k", "palette kind ("+strings.Join(kindNames(), ", ")+")")
}

func kindNames() []string {
	names := []string{}
	for _, k := range palette.Kinds() {
		names = append(names, k.String())
	}
	return append(names, kindAll)
}

// completeKinds provides shell completion for --kind.
func completeKinds(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return kindNames(), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for --format.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return outputFormats, cobra.ShellCompDirectiveNoFileComp
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

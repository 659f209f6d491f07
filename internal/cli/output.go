package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmylchreest/palettegen/pkg/colour"
	"github.com/jmylchreest/palettegen/pkg/palette"
)

// generateJSON is the JSON document written by generate --format json.
type generateJSON struct {
	Source   string     `json:"source"`
	Palettes []kindJSON `json:"palettes"`
}

type kindJSON struct {
	Kind        string               `json:"kind"`
	Suitable    bool                 `json:"suitable"`
	Palette     *palette.PaletteJSON `json:"palette,omitempty"`
	Placeholder []string             `json:"placeholder,omitempty"`
}

// writeResults renders the generated palettes in the requested format.
func writeResults(w io.Writer, format string, source colour.RGB, results []kindResult, swatches *swatchRenderer) error {
	var err error
	switch format {
	case formatTable:
		err = writeTable(w, results, swatches)
	case formatHex:
		err = writeHex(w, results)
	case formatJSON:
		err = writeJSON(w, resultsJSON(source, results))
	case formatCSS:
		err = writeCSS(w, source, results)
	default:
		err = validateFormat(format)
	}
	return err
}

func writeTable(w io.Writer, results []kindResult, swatches *swatchRenderer) error {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		if !r.suitable() {
			fmt.Fprintf(&b, "%s placeholder:\n", r.kind)
			table := NewTable([]string{"TONE", "HEX"})
			for j, c := range r.placeholder {
				table.AddRow([]string{palette.ToneLabel(j), swatches.Render(c)})
			}
			b.WriteString(table.Render())
			continue
		}

		p := r.palette
		fmt.Fprintf(&b, "%s palette: %s (anchor %s, difference %.4f)\n",
			p.Kind, p.Family, palette.ToneLabel(p.AnchorIndex), p.Difference)
		table := NewTable([]string{"TONE", "HEX", "RGB", "LCH", "SOURCE"})
		for _, s := range p.All() {
			source := ""
			if s.Source {
				source = "*"
			}
			table.AddRow([]string{s.Label, swatches.Render(s.Colour), formatRGB8(s.Colour), formatLCH(s.Colour.LCH()), source})
		}
		b.WriteString(table.Render())
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeHex(w io.Writer, results []kindResult) error {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		colours := r.placeholder
		if r.suitable() {
			colours = r.palette.Colours()
		}
		for _, c := range colours {
			b.WriteString("#" + c.Hex() + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func resultsJSON(source colour.RGB, results []kindResult) generateJSON {
	doc := generateJSON{Source: "#" + source.Hex(), Palettes: make([]kindJSON, 0, len(results))}
	for _, r := range results {
		entry := kindJSON{Kind: r.kind.String(), Suitable: r.suitable()}
		if r.suitable() {
			pj := r.palette.JSON()
			entry.Palette = &pj
		} else {
			for _, c := range r.placeholder {
				entry.Placeholder = append(entry.Placeholder, "#"+c.Hex())
			}
		}
		doc.Palettes = append(doc.Palettes, entry)
	}
	return doc
}

// writeCSS writes the palettes as custom properties named --<kind>-<tone>.
func writeCSS(w io.Writer, source colour.RGB, results []kindResult) error {
	var b strings.Builder
	fmt.Fprintf(&b, "/* source #%s */\n:root {\n", source.Hex())
	for _, r := range results {
		if !r.suitable() {
			fmt.Fprintf(&b, "  /* %s: placeholder ramp */\n", r.kind)
			for i, c := range r.placeholder {
				fmt.Fprintf(&b, "  --%s-%s: #%s;\n", r.kind, strings.ToLower(palette.ToneLabel(i)), c.Hex())
			}
			continue
		}
		fmt.Fprintf(&b, "  /* %s: %s */\n", r.kind, r.palette.Family)
		for _, s := range r.palette.All() {
			fmt.Fprintf(&b, "  --%s-%s: #%s;\n", r.kind, strings.ToLower(s.Label), s.Colour.Hex())
		}
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func formatRGB8(c colour.RGB) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

func formatLCH(c colour.LCH) string {
	return fmt.Sprintf("%.1f %.1f %.1f", c.L(), c.C(), c.H())
}

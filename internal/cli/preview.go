package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jmylchreest/palettegen/pkg/colour"
	"golang.org/x/term"
)

// swatchRenderer formats colours as hex text, painted with the colour itself
// when previews are enabled.
type swatchRenderer struct {
	enabled  bool
	renderer *lipgloss.Renderer
}

// newSwatchRenderer enables painting only when it was requested, NO_COLOR is
// unset and w is a terminal.
func newSwatchRenderer(w io.Writer, requested, noColor bool) *swatchRenderer {
	return &swatchRenderer{
		enabled:  requested && !noColor && isTerminal(w),
		renderer: lipgloss.NewRenderer(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in an int
}

// Render returns "#rrggbb" (or "#rrggbbaa"), as a painted chip when enabled.
func (s *swatchRenderer) Render(c colour.RGB) string {
	text := "#" + c.Hex()
	if !s.enabled {
		return text
	}
	return s.renderer.NewStyle().
		Background(lipgloss.Color(opaqueHex(c))).
		Foreground(lipgloss.Color(opaqueHex(colour.TextColour(c)))).
		Padding(0, 1).
		Render(text)
}

// opaqueHex drops the alpha channel, which terminals cannot show.
func opaqueHex(c colour.RGB) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

package cli

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/jmylchreest/palettegen/internal/extract"
	"github.com/jmylchreest/palettegen/internal/image"
	"github.com/jmylchreest/palettegen/internal/security"
	"github.com/jmylchreest/palettegen/pkg/colour"
	"github.com/jmylchreest/palettegen/pkg/palette"
	"github.com/spf13/cobra"
)

// dominantClusters is the number of k-means clusters used to find the
// dominant colour of an image.
const dominantClusters = 5

type generateOptions struct {
	kind    string
	image   string
	snapHue bool
	format  string
	output  string
	preview bool
}

// kindResult is the outcome for one palette kind: either a generated palette
// or, when the source does not suit the kind, its placeholder ramp.
type kindResult struct {
	kind        palette.Kind
	palette     *palette.Palette
	placeholder []colour.RGB
}

func (r kindResult) suitable() bool { return r.palette != nil }

// newGenerateCmd creates the generate command.
func newGenerateCmd(a *app) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [hex]",
		Short: "Generate a tonal palette from a source colour",
		Long: `Generate a Material tonal palette around a source colour.

The source is a hex colour (RGB, RGBA, RRGGBB or RRGGBBAA, with or without a
leading '#') or the dominant colour of an image given with --image.

Light and dark palettes need a suitable source: light palettes require a
light, low chroma colour and dark palettes a dark, low chroma colour. When the
source does not qualify, the placeholder ramp for that kind is shown instead.

Examples:
  # Accent palette as a table
  palettegen generate 6200ee

  # Every kind, as CSS custom properties
  palettegen generate "#9e9e9e" --kind all --format css

  # From the dominant colour of a wallpaper, written to a file
  palettegen generate --image wallpaper.jpg --format json --output palette.json

  # Coloured swatches in the terminal
  palettegen generate 2196f3 --preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, a, opts, args)
		},
	}

	addKindFlag(cmd.Flags(), &opts.kind, a.env.Kind)
	cmd.Flags().StringVarP(&opts.image, "image", "i", "", "use the dominant colour of an image as the source")
	cmd.Flags().BoolVar(&opts.snapHue, "snap-hue", false, "round the source hue to whole degrees")
	cmd.Flags().VarP(newChoiceValue(&opts.format, a.env.Format, "output format", outputFormats), "format", "f", "output format ("+strings.Join(outputFormats, ", ")+")")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVarP(&opts.preview, "preview", "p", false, "paint swatches in the terminal")

	_ = cmd.RegisterFlagCompletionFunc("kind", completeKinds)
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
	_ = cmd.RegisterFlagCompletionFunc("image", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		exts := make([]string, 0, len(image.SupportedImageExtensions()))
		for _, ext := range image.SupportedImageExtensions() {
			exts = append(exts, strings.TrimPrefix(ext, "."))
		}
		return exts, cobra.ShellCompDirectiveFilterFileExt
	})

	return cmd
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, a *app, opts *generateOptions, args []string) error {
	if err := validateFormat(opts.format); err != nil {
		return err
	}
	kinds, err := resolveKinds(opts.kind)
	if err != nil {
		return err
	}
	if opts.output != "" {
		if err := security.ValidateOutputPath(opts.output); err != nil {
			return err
		}
	}

	source, err := resolveSource(a, opts, args)
	if err != nil {
		return err
	}
	if opts.snapHue {
		snapped := colour.SnapHue(source)
		a.logger.Debug("snapped source hue", "from", source.Hex(), "to", snapped.Hex())
		source = snapped
	}
	a.logger.Debug("source colour", "hex", source.Hex(), "lch", source.LCH().String())

	gen := palette.NewGenerator(palette.WithLogger(a.logger.Named("generator")))
	results := make([]kindResult, 0, len(kinds))
	for _, k := range kinds {
		result, err := generateKind(gen, source, k)
		if err != nil {
			return err
		}
		if !result.suitable() {
			a.notice(cmd, "#%s is not suitable for a %s palette, showing the placeholder ramp", source.Hex(), k)
		}
		results = append(results, result)
	}

	var buf bytes.Buffer
	writeTo := cmd.OutOrStdout()
	if opts.output != "" {
		writeTo = &buf
	}
	swatches := newSwatchRenderer(writeTo, opts.preview, a.env.NoColor)
	if err := writeResults(writeTo, opts.format, source, results, swatches); err != nil {
		return err
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil { // #nosec G306 - palette output needs standard read permissions
			return fmt.Errorf("failed to write output file: %w", err)
		}
		a.notice(cmd, "Palette written to %s", opts.output)
	}
	return nil
}

// resolveSource reads the source colour from the argument or the image.
func resolveSource(a *app, opts *generateOptions, args []string) (colour.RGB, error) {
	switch {
	case opts.image != "" && len(args) > 0:
		return colour.RGB{}, fmt.Errorf("give either a hex colour or --image, not both")
	case opts.image != "":
		img, err := image.NewFileLoader().Load(opts.image)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to load image: %w", err)
		}
		c, err := extract.Dominant(img, dominantClusters)
		if err != nil {
			return colour.RGB{}, fmt.Errorf("failed to extract dominant colour: %w", err)
		}
		a.logger.Debug("dominant image colour", "path", opts.image, "hex", c.Hex())
		return c, nil
	case len(args) > 0:
		return parseColourArg(args[0])
	default:
		return colour.RGB{}, fmt.Errorf("a source colour is required: pass a hex colour or --image")
	}
}

func generateKind(gen *palette.Generator, source colour.RGB, k palette.Kind) (kindResult, error) {
	if k != palette.KindAccent && !palette.Suitable(k, source.LCH()) {
		return kindResult{kind: k, placeholder: palette.Placeholder(k)}, nil
	}
	scheme, err := palette.SchemeFor(k)
	if err != nil {
		return kindResult{}, err
	}
	p, err := gen.Generate(source, scheme)
	if err != nil {
		return kindResult{}, fmt.Errorf("failed to generate %s palette: %w", k, err)
	}
	return kindResult{kind: k, palette: p}, nil
}

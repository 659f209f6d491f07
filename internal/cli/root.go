// Package cli provides the command-line interface for palettegen.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/jmylchreest/palettegen/internal/version"
	"github.com/spf13/cobra"
)

// Environment variables read when the root command is built.
const (
	envFormat   = "PALETTEGEN_FORMAT"
	envKind     = "PALETTEGEN_KIND"
	envLogLevel = "PALETTEGEN_LOG_LEVEL"
	envNoColor  = "NO_COLOR"
)

// envConfig holds defaults taken from the environment. Flags override them.
type envConfig struct {
	Format   string
	Kind     string
	LogLevel hclog.Level
	NoColor  bool
}

func loadEnvConfig() envConfig {
	cfg := envConfig{
		Format:   formatTable,
		Kind:     kindAccent,
		LogLevel: hclog.Warn,
	}
	if v := strings.TrimSpace(os.Getenv(envFormat)); v != "" {
		cfg.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(envKind)); v != "" {
		cfg.Kind = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(envLogLevel)); v != "" {
		if level := hclog.LevelFromString(v); level != hclog.NoLevel {
			cfg.LogLevel = level
		}
	}
	// Any non-empty value disables colour, see https://no-color.org.
	cfg.NoColor = os.Getenv(envNoColor) != ""
	return cfg
}

// app is the state shared by every command of one root command tree.
type app struct {
	env     envConfig
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// logLevel resolves the level from the global flags and the environment.
func (a *app) logLevel() hclog.Level {
	switch {
	case a.quiet:
		return hclog.Off
	case a.verbose:
		return min(a.env.LogLevel, hclog.Debug)
	default:
		return a.env.LogLevel
	}
}

func (a *app) setupLogger(cmd *cobra.Command) {
	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "palettegen",
		Level:  a.logLevel(),
		Output: cmd.ErrOrStderr(),
	})
}

// notice prints a human-facing message on stderr unless --quiet is set.
func (a *app) notice(cmd *cobra.Command, format string, args ...any) {
	if a.quiet {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

// NewRootCmd builds a fresh command tree. Each call reads the environment
// again, so tests can run several trees side by side.
func NewRootCmd() *cobra.Command {
	a := &app{
		env:    loadEnvConfig(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "palettegen",
		Short: "A Material tonal palette generator",
		Long: `palettegen builds a Material Design tonal palette around a single source
colour. The colour is matched against the Material golden palettes with
CIEDE2000 and the nearest palette is shifted so that the source colour sits
exactly on its matching tone.

Palettes come in three kinds:
  accent  - 10 ramp tones (50-900) plus up to 4 accent tones (A100-A700)
  light   - a 10 tone neutral ramp for light surfaces
  dark    - a 10 tone neutral ramp for dark surfaces

Environment:
  PALETTEGEN_FORMAT     default output format (table, hex, json, css)
  PALETTEGEN_KIND       default palette kind (accent, light, dark, all)
  PALETTEGEN_LOG_LEVEL  log level (trace, debug, info, warn, error)
  NO_COLOR              disable swatch previews`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.setupLogger(cmd)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newConvertCmd(a))
	rootCmd.AddCommand(newMatchCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newCatalogCmd(a))

	return rootCmd
}

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), version.GetInfo())
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}

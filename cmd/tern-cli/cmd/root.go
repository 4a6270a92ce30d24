package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"tern/internal/config"
)

// ErrReported is returned by commands that already printed their
// diagnostics; the process only needs to exit non-zero.
var ErrReported = errors.New("errors reported")

var (
	cfgFile string
	noColor bool
	verbose bool

	cfg = config.Default()
	log = commonlog.GetLogger("tern.cli")
)

var rootCmd = &cobra.Command{
	Use:   "tern",
	Short: "tern syntax front end",
	Long: `tern lexes, parses and pretty-prints tern source files.

Commands:
  tokens  - dump the token stream of a file
  parse   - print the syntax tree of a file or expression
  check   - report syntax errors in files
  fmt     - print files in canonical form
  repl    - interactive parser`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./tern.toml or ./tern.yaml when present)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	loaded, err := config.Resolve(cfgFile, wd)
	if err != nil {
		return err
	}
	cfg = loaded

	if noColor || !cfg.Color {
		color.NoColor = true
	}

	verbosity := cfg.LogVerbosity
	if verbose {
		verbosity = max(verbosity, 1)
	}
	var logFile *string
	if cfg.LogFile != "" {
		logFile = &cfg.LogFile
	}
	commonlog.Configure(verbosity, logFile)

	log.Debugf("config: %+v", *cfg)
	return nil
}

func readSource(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(source), nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

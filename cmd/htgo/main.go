// Command htgo renders, serves, benchmarks and publishes the htgo demo
// pages.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htgo/internal/config"
	"github.com/vango-dev/htgo/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cli holds the state shared by all commands.
type cli struct {
	configPath string
	verbose    bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger

	stdout io.Writer
	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		errors.Print(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "htgo",
		Short: "Build HTML in Go",
		Long: `htgo builds HTML from plain Go values and streams it as it renders.

This tool renders, serves and publishes the bundled demo pages and
measures render throughput.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.noColor {
				errors.DisableColors()
			}
			if cmd.Annotations["config"] == "skip" {
				c.cfg = config.New()
			} else if err := c.loadConfig(); err != nil {
				return err
			}
			c.logger = newLogger(c.stderr, c.cfg.Log, c.verbose)
			return nil
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Configuration file (default ./"+config.ConfigFileName+" if present)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log debug messages")
	flags.BoolVar(&c.noColor, "no-color", false, "Disable colored error output")

	rootCmd.AddCommand(
		renderCmd(c),
		serveCmd(c),
		benchCmd(c),
		publishCmd(c),
		initCmd(c),
		versionCmd(c),
	)
	return rootCmd
}

func (c *cli) loadConfig() error {
	var err error
	if c.configPath != "" {
		c.cfg, err = config.LoadFile(c.configPath)
	} else {
		c.cfg, err = config.Load(".")
	}
	return err
}

func newLogger(w io.Writer, cfg config.LogConfig, verbose bool) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// success prints a success message.
func (c *cli) success(format string, args ...any) {
	fmt.Fprintf(c.stderr, "✓ %s\n", fmt.Sprintf(format, args...))
}

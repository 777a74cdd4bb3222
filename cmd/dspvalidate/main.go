// Package main provides the dspvalidate binary entry point.
// dspvalidate checks DSP XML files against the ontologies of their project
// before they are uploaded.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dasch-swiss/dspvalidate/config"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "dspvalidate"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidData) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// flags are command line overrides of the loaded configuration.
type flags struct {
	logLevel       string
	server         string
	saveGraphs     bool
	graphFormat    string
	parallel       bool
	tableThreshold int
	tableDir       string
}

func rootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Validate DSP XML files before upload",
		Long: `dspvalidate checks DSP XML files against the project ontologies on a
DSP-API server.

The data is validated in two SHACL passes: one for cardinalities and one
for the content of every value. Problems are reported per resource.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	validate := &cobra.Command{
		Use:   "validate FILE|GLOB...",
		Short: "Validate XML files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, f, args)
		},
	}
	validate.Flags().StringVarP(&f.server, "server", "s", "", "DSP-API server URL")
	validate.Flags().BoolVar(&f.saveGraphs, "save-graphs", false, "Save all graphs next to the input file")
	validate.Flags().StringVar(&f.graphFormat, "graph-format", "", "Format of saved graphs (turtle, ntriples)")
	validate.Flags().BoolVar(&f.parallel, "parallel", false, "Run both validation passes concurrently")
	validate.Flags().IntVar(&f.tableThreshold, "table-threshold", 0, "Write problems to CSV above this many per severity")
	validate.Flags().StringVar(&f.tableDir, "table-dir", "", "Directory for CSV tables")
	cmd.AddCommand(validate)

	cmd.AddCommand(&cobra.Command{
		Use:   "init-config",
		Short: "Create the user configuration file if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := config.NewLoader(newLogger(f.logLevel))
			if err := loader.EnsureUserConfig(); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), loader.UserConfigPath())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	})

	return cmd
}

func runValidate(cmd *cobra.Command, f flags, patterns []string) error {
	logger := newLogger(f.logLevel)
	slog.SetDefault(logger)

	cfg, err := config.NewLoader(logger).Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg, f)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ok, err := NewApp(cfg, cmd.OutOrStdout(), logger).Validate(ctx, patterns)
	if err != nil {
		return err
	}
	if !ok {
		return errInvalidData
	}
	return nil
}

func applyFlags(cfg *config.Config, f flags) {
	if f.server != "" {
		cfg.API.URL = f.server
	}
	if f.saveGraphs {
		cfg.Validation.SaveGraphs = true
	}
	if f.graphFormat != "" {
		cfg.Validation.GraphFormat = f.graphFormat
	}
	if f.parallel {
		cfg.Validation.Parallel = true
	}
	if f.tableThreshold > 0 {
		cfg.Output.TableThreshold = f.tableThreshold
	}
	if f.tableDir != "" {
		cfg.Output.TableDir = f.tableDir
	}
}

func newLogger(logLevel string) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dasch-swiss/dspvalidate/config"
	"github.com/dasch-swiss/dspvalidate/dspapi"
	"github.com/dasch-swiss/dspvalidate/export"
	"github.com/dasch-swiss/dspvalidate/pipeline"
	"github.com/dasch-swiss/dspvalidate/reformat"
	"github.com/dasch-swiss/dspvalidate/report"
	"github.com/dasch-swiss/dspvalidate/validation"
)

// errInvalidData signals that at least one file did not pass validation.
// The problems have already been printed.
var errInvalidData = errors.New("validation failed")

// App validates files with one configuration.
type App struct {
	cfg      *config.Config
	out      io.Writer
	logger   *slog.Logger
	api      pipeline.API
	registry *prometheus.Registry
}

// NewApp creates an App talking to the configured DSP-API server.
func NewApp(cfg *config.Config, out io.Writer, logger *slog.Logger) *App {
	client := dspapi.NewClient(cfg.API.URL,
		dspapi.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		dspapi.WithSHACLTimeout(cfg.Validation.SHACLTimeout),
		dspapi.WithRetryConfig(dspapi.RetryConfig{
			MaxAttempts:       cfg.API.Retry.MaxAttempts,
			BackoffBase:       cfg.API.Retry.InitialBackoff,
			BackoffMultiplier: 2.0,
			MaxBackoff:        cfg.API.Retry.MaxBackoff,
		}),
		dspapi.WithLogger(logger))
	return newApp(cfg, out, logger, client)
}

func newApp(cfg *config.Config, out io.Writer, logger *slog.Logger, api pipeline.API) *App {
	return &App{
		cfg:      cfg,
		out:      out,
		logger:   logger,
		api:      api,
		registry: prometheus.NewRegistry(),
	}
}

// Validate validates every file matched by patterns and reports whether all
// of them passed.
func (a *App) Validate(ctx context.Context, patterns []string) (bool, error) {
	files, err := expandPatterns(patterns)
	if err != nil {
		return false, err
	}

	opts := []pipeline.Option{
		pipeline.WithLogger(a.logger),
		pipeline.WithMetrics(validation.NewMetrics(a.registry)),
		pipeline.WithParallel(a.cfg.Validation.Parallel),
	}
	if a.cfg.Validation.SaveGraphs {
		format, err := export.ParseFormat(a.cfg.Validation.GraphFormat)
		if err != nil {
			return false, err
		}
		opts = append(opts, pipeline.WithSavedGraphs(format))
	}
	p, err := pipeline.New(a.api, opts...)
	if err != nil {
		return false, err
	}

	allOK := true
	for _, file := range files {
		ok, err := a.validateFile(ctx, p, file)
		if err != nil {
			return false, fmt.Errorf("%s: %w", file, err)
		}
		allOK = allOK && ok
	}
	a.logMetrics()
	return allOK, nil
}

func (a *App) validateFile(ctx context.Context, p *pipeline.Pipeline, file string) (bool, error) {
	a.logger.Info("Validating file", slog.String("file", file))
	tableDir := a.cfg.Output.TableDir
	if tableDir == "" {
		tableDir = filepath.Dir(file)
	}
	printer := report.NewPrinter(a.out,
		report.WithTables(osfs.New(tableDir)),
		report.WithTableThreshold(a.cfg.Output.TableThreshold),
		report.WithLogger(a.logger))

	outcome, err := p.Run(ctx, file, a.cfg.API.URL)
	var unexpected *reformat.UnexpectedResultError
	if errors.As(err, &unexpected) {
		_, _ = fmt.Fprintln(a.out, report.UnexpectedMessage(unexpected.Components))
		return false, reformat.ErrUnexpectedResult
	}
	if err != nil {
		return false, err
	}

	switch {
	case len(outcome.UnknownClasses) > 0:
		return false, printer.PrintUnknownClasses(outcome.UnknownClasses)
	case outcome.Conforms:
		return true, printer.PrintConforms()
	default:
		stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		return len(outcome.Sorted.Violations) == 0, printer.Print(stem, outcome.Sorted)
	}
}

// expandPatterns resolves glob patterns such as "data/**/*.xml". A pattern
// without glob characters names a file directly.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// logMetrics writes the collected validation metrics at debug level.
func (a *App) logMetrics() {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Debug("Failed to gather metrics", slog.Any("error", err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var pass string
			for _, l := range m.GetLabel() {
				if l.GetName() == "pass" {
					pass = l.GetValue()
				}
			}
			switch {
			case m.GetCounter() != nil:
				a.logger.Debug("Metric", slog.String("name", mf.GetName()), slog.String("pass", pass),
					slog.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				a.logger.Debug("Metric", slog.String("name", mf.GetName()), slog.String("pass", pass),
					slog.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
		}
	}
}

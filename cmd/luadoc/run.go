package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"

	"github.com/Zachacious/go-luadoc/internal/assembler"
	"github.com/Zachacious/go-luadoc/internal/config"
	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/extractor"
	"github.com/Zachacious/go-luadoc/internal/logging"
	"github.com/Zachacious/go-luadoc/internal/model"
	"github.com/Zachacious/go-luadoc/internal/output"
)

// options holds the command-line flags. Flags that were not given leave
// the config file's values alone.
type options struct {
	output    string
	format    string
	within    string
	workers   int
	logLevel  string
	logFormat string
	noColor   bool

	color bool
}

// ProblemsError is returned when the documentation has problems. They have
// already been printed.
type ProblemsError struct {
	Count int
}

func (e *ProblemsError) Error() string {
	if e.Count == 1 {
		return "found 1 problem"
	}
	return fmt.Sprintf("found %s problems", humanize.Comma(int64(e.Count)))
}

// setup loads the project config, applies the flags over it and builds the
// logger.
func setup(projectPath string, opts *options, changed func(string) bool, stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if changed("output") {
		cfg.Output.Path = opts.output
	}
	if changed("format") {
		cfg.Output.Format = opts.format
	}
	if changed("within") {
		cfg.Within = opts.within
	}
	if changed("workers") {
		cfg.Workers = opts.workers
	}
	if changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}, stderr)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File != "" {
		logger.Debug("Configuration loaded", "file", cfg.File)
	}
	return cfg, logger, nil
}

// build runs extraction and assembly and prints every problem found.
func build(ctx context.Context, projectPath string, cfg *config.Config, logger *slog.Logger, color bool, stderr io.Writer) (*model.Document, *extractor.Result, error) {
	x, err := extractor.New(projectPath, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing extractor: %w", err)
	}
	res, err := x.Extract(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("during extraction: %w", err)
	}

	doc, err := assembler.BuildDocument(res.Entries, logger)

	var diags diagnostic.Collector
	for _, d := range res.Diagnostics {
		diags.Add(d)
	}
	if !diags.Extend(err) {
		return nil, nil, fmt.Errorf("assembling document: %w", err)
	}
	if diags.Len() == 0 {
		return doc, res, nil
	}

	diags.Sort()
	if err := diagnostic.Render(stderr, diags.Items(), diagnostic.RenderOptions{Color: color, Context: true}); err != nil {
		return nil, nil, err
	}
	return doc, res, &ProblemsError{Count: diags.Len()}
}

func runExtract(ctx context.Context, projectPath string, opts *options, changed func(string) bool, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(projectPath, opts, changed, stderr)
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	doc, res, err := build(ctx, projectPath, cfg, logger, opts.color, stderr)
	if err != nil {
		return err
	}

	n, err := output.WriteFile(cfg.Output.Path, format, doc)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	logger.Info("Wrote documentation", "path", cfg.Output.Path, "size", humanize.Bytes(uint64(n)))
	fmt.Fprintf(stdout, "Documented %s classes from %s files in %s\n",
		humanize.Comma(int64(len(doc.Classes))), humanize.Comma(int64(len(res.Files))), cfg.Output.Path)
	return nil
}

func runCheck(ctx context.Context, projectPath string, opts *options, changed func(string) bool, stdout, stderr io.Writer) error {
	cfg, logger, err := setup(projectPath, opts, changed, stderr)
	if err != nil {
		return err
	}

	_, res, err := build(ctx, projectPath, cfg, logger, opts.color, stderr)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Checked %s files, %s entries: no problems\n",
		humanize.Comma(int64(len(res.Files))), humanize.Comma(int64(len(res.Entries))))
	return nil
}

// Package extractor runs the documentation pipeline over a project: it
// finds Lua files, reads their doc comments and builds doc entries.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/Zachacious/go-luadoc/internal/config"
	"github.com/Zachacious/go-luadoc/internal/diagnostic"
	"github.com/Zachacious/go-luadoc/internal/doccomment"
	"github.com/Zachacious/go-luadoc/internal/docentry"
)

// Extractor holds the state for a single extraction run.
type Extractor struct {
	projectPath string
	files       []string
	within      *string
	workers     int
	logger      *slog.Logger
}

// Result is everything one run produced.
type Result struct {
	// Files are project-relative, slash-separated and sorted.
	Files   []string
	Entries []docentry.DocEntry
	// Diagnostics are sorted by file and position.
	Diagnostics []diagnostic.Diagnostic
}

// New resolves the files matched by cfg under projectPath.
func New(projectPath string, cfg *config.Config, logger *slog.Logger) (*Extractor, error) {
	projectPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", projectPath)
	}

	files, err := matchFiles(projectPath, cfg.Include, cfg.Exclude)
	if err != nil {
		return nil, err
	}
	logger.Debug("Resolved source files", "root", projectPath, "files", len(files))

	x := &Extractor{
		projectPath: projectPath,
		files:       files,
		workers:     cfg.Workers,
		logger:      logger,
	}
	if cfg.Within != "" {
		within := cfg.Within
		x.within = &within
	}
	if x.workers <= 0 {
		x.workers = runtime.GOMAXPROCS(0)
	}
	return x, nil
}

// Files lists the matched files relative to the project root.
func (x *Extractor) Files() []string {
	return slices.Clone(x.files)
}

type fileResult struct {
	index   int
	entries []docentry.DocEntry
	diags   []diagnostic.Diagnostic
}

// Extract reads every matched file in parallel. Problems in the
// documentation are reported in Result.Diagnostics; err is only set when a
// file cannot be read or ctx is cancelled.
func (x *Extractor) Extract(ctx context.Context) (*Result, error) {
	x.logger.Info("Extracting documentation", "files", len(x.files), "workers", x.workers)

	p := pool.NewWithResults[fileResult]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(x.workers)

	for i, rel := range x.files {
		p.Go(func(ctx context.Context) (fileResult, error) {
			if err := ctx.Err(); err != nil {
				return fileResult{}, err
			}
			data, err := os.ReadFile(filepath.Join(x.projectPath, filepath.FromSlash(rel)))
			if err != nil {
				return fileResult{}, fmt.Errorf("reading %s: %w", rel, err)
			}

			entries, diags := ExtractSource(rel, string(data), x.within)
			x.logger.Debug("Extracted file", "path", rel, "entries", len(entries), "problems", len(diags))
			return fileResult{index: i, entries: entries, diags: diags}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		return nil, err
	}

	// The pool returns results in completion order.
	slices.SortFunc(results, func(a, b fileResult) int { return a.index - b.index })

	res := &Result{Files: x.Files()}
	var diags diagnostic.Collector
	for _, r := range results {
		res.Entries = append(res.Entries, r.entries...)
		for _, d := range r.diags {
			diags.Add(d)
		}
	}
	diags.Sort()
	res.Diagnostics = diags.Items()

	x.logger.Info("Extraction complete", "entries", len(res.Entries), "problems", len(res.Diagnostics))
	return res, nil
}

// ExtractSource builds the doc entries of one file. Comments whose tags do
// not parse are reported and produce no entry.
func ExtractSource(path, text string, within *string) ([]docentry.DocEntry, []diagnostic.Diagnostic) {
	var (
		entries []docentry.DocEntry
		diags   diagnostic.Collector
	)

	for _, comment := range doccomment.Find(path, text) {
		block, err := comment.Parse()
		if err != nil {
			report(&diags, comment, err)
			continue
		}

		entry, err := docentry.FromComment(comment, block, within)
		if err != nil {
			report(&diags, comment, err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, diags.Items()
}

func report(diags *diagnostic.Collector, comment *doccomment.DocComment, err error) {
	if !diags.Extend(err) {
		diags.Addf(comment.Span(), "%v", err)
	}
}

// Package driver runs registered passes over a whole program.
package driver

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/mpyw/implicitctor/internal/ctor"
	"github.com/mpyw/implicitctor/internal/ir"
	"github.com/mpyw/implicitctor/internal/registry"
	"github.com/mpyw/implicitctor/internal/report"
)

// Runner executes one pass per Run over every function of a program.
type Runner struct {
	Registry *registry.Registry
	Sink     report.Sink
	Logger   *slog.Logger

	// Jobs bounds the number of functions scanned at once.
	// Zero or less means runtime.GOMAXPROCS(0).
	Jobs int
}

// Summary describes a finished run.
type Summary struct {
	Pass      string
	Functions int
	Records   int
	Changed   bool
}

type funcResult struct {
	records []ctor.Record
	changed bool
}

// Run looks up the named pass, scans every function of prog and writes the
// records to the sink in program order. Output does not depend on Jobs.
//
// Cancellation is observed between functions; a started function scan runs
// to completion.
func (r *Runner) Run(ctx context.Context, name string, opts registry.Options, prog *ir.Program) (Summary, error) {
	entry, err := r.Registry.Lookup(name)
	if err != nil {
		return Summary{}, err
	}

	logger := r.logger()
	pass := entry.New(opts)

	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]funcResult, len(prog.Funcs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, fn := range prog.Funcs {
		if fn.IsDeclaration() {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records, changed := pass.RunOnFunction(fn)
			results[i] = funcResult{records: records, changed: changed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, fmt.Errorf("run %s: %w", name, err)
	}

	summary := Summary{Pass: name}
	for i, res := range results {
		fn := prog.Funcs[i]
		if fn.IsDeclaration() {
			continue
		}
		summary.Functions++
		summary.Changed = summary.Changed || res.changed

		if len(res.records) > 0 {
			logger.Debug("function scanned", "function", fn.Name, "records", len(res.records))
		}
		for _, rec := range res.records {
			if err := r.Sink.Write(rec); err != nil {
				return summary, fmt.Errorf("write record for %s: %w", rec.Callee, err)
			}
			summary.Records++
		}
	}

	if summary.Changed && !entry.Mutates {
		logger.Warn("non-mutating pass reported a change", "pass", name)
	}
	logger.Debug("pass finished",
		"pass", name,
		"program", prog.Name,
		"functions", summary.Functions,
		"records", summary.Records,
		"changed", summary.Changed,
	)

	return summary, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.DiscardHandler)
}

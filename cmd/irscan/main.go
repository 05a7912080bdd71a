// Command irscan runs a registered pass over programs stored as LLVM
// assembly (.ll) or YAML (.yaml, .yml) and writes its records to stderr.
//
// Usage:
//
//	irscan [flags] file...
//
// LLVM input must use typed pointers (i8*, %class.Foo*); the opaque ptr
// type emitted by clang 15 and later is rejected.
//
// Settings come from the embedded defaults, then the -config file, then
// flags given explicitly on the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mpyw/implicitctor/internal/config"
	"github.com/mpyw/implicitctor/internal/driver"
	"github.com/mpyw/implicitctor/internal/ir"
	"github.com/mpyw/implicitctor/internal/ir/llvmir"
	"github.com/mpyw/implicitctor/internal/ir/yamlir"
	"github.com/mpyw/implicitctor/internal/registry"
	"github.com/mpyw/implicitctor/internal/report"
)

const (
	exitOK    = 0
	exitError = 2
)

// ErrUnknownInput is returned for files whose extension has no loader.
var ErrUnknownInput = errors.New("unknown input format")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("irscan", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "Path to a TOML config file")
		passName   = fs.String("pass", registry.ImplicitCtor, "Pass to run")
		marker     = fs.String("marker", "", "Substring identifying constructor names (default from config)")
		jobs       = fs.Int("jobs", 0, "Functions scanned at once (0 = GOMAXPROCS)")
		format     = fs.String("format", "", "Output format: "+strings.Join(report.Formats(), ", "))
		list       = fs.Bool("list", false, "List registered passes and exit")
		verbose    = fs.Bool("v", false, "Verbose output")
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: irscan [flags] file...")
		fmt.Fprintln(stderr, "Inputs: .ll (typed-pointer LLVM IR only, no opaque ptr), .yaml, .yml")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	reg := registry.Defaults()
	if *list {
		for _, name := range reg.Names() {
			entry, _ := reg.Lookup(name)
			fmt.Fprintf(stdout, "%s\t%s\n", name, entry.Doc)
		}
		return exitOK
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pass":
			cfg.Pass = *passName
		case "marker":
			cfg.Marker = *marker
		case "jobs":
			cfg.Jobs = *jobs
		case "format":
			cfg.Format = *format
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitError
	}

	logger := newLogger(stderr, cfg.Verbose)

	sink, err := report.New(cfg.Format, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	runner := &driver.Runner{
		Registry: reg,
		Sink:     sink,
		Logger:   logger,
		Jobs:     cfg.Jobs,
	}
	opts := registry.Options{Marker: cfg.Marker}

	for _, path := range fs.Args() {
		prog, err := load(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load %s: %v\n", path, err)
			return exitError
		}
		logger.Debug("program loaded", "path", path, "functions", len(prog.Funcs))

		if _, err := runner.Run(ctx, cfg.Pass, opts, prog); err != nil {
			fmt.Fprintln(stderr, err)
			return exitError
		}
	}

	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func load(path string) (*ir.Program, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ll":
		return llvmir.ParseFile(path)
	case ".yaml", ".yml":
		return yamlir.ReadFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownInput, path)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

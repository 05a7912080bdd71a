// Package implicitctor provides a go/analysis based analyzer that reports
// calls to constructor-like functions.
//
// A call is reported when its statically resolved callee has a name
// containing the marker (default "C1", the Itanium C++ ABI spelling of a
// complete object constructor). Each report classifies the callee by its
// declared parameters, with a method receiver counted as the first one:
//
//   - no parameters: Default Constructor
//   - exactly one pointer parameter: Copy Constructor
//   - anything else: Parameterized Constructor
//
// The name test is a plain substring match, so any function whose name
// happens to contain the marker is reported, and calls through function
// values or interfaces are never seen.
package implicitctor

import (
	"flag"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/analysis"

	"github.com/mpyw/implicitctor/internal/ctor"
	"github.com/mpyw/implicitctor/internal/directive/ignore"
	internalssa "github.com/mpyw/implicitctor/internal/ssa"
)

// Flags for the analyzer.
var marker string

func init() {
	Analyzer.Flags.StringVar(&marker, "marker", ctor.DefaultMarker,
		"substring identifying constructor names")
}

// Analyzer is the main analyzer for implicitctor.
var Analyzer = &analysis.Analyzer{
	Name:     "implicitctor",
	Doc:      "reports calls to constructor-like functions and classifies them",
	Requires: []*analysis.Analyzer{internalssa.BuildSSAAnalyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

func run(pass *analysis.Pass) (any, error) {
	prog := internalssa.Build(pass)
	if prog == nil {
		return nil, nil
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	// Build ignore maps for each file (excluding skipped files)
	ignoreMaps := buildIgnoreMaps(pass, skipFiles)

	conv := internalssa.NewConverter()
	scanner := ctor.NewScanner(marker)

	for _, fn := range prog.Funcs() {
		for _, rec := range scanner.Scan(conv.Function(fn)) {
			pos := pass.Fset.Position(rec.Pos)
			if skipFiles[pos.Filename] {
				continue
			}
			if m := ignoreMaps[pos.Filename]; m != nil && m.ShouldIgnore(pos.Line, ignore.NameOf(rec.Kind)) {
				continue
			}
			pass.Reportf(rec.Pos, "implicit constructor detected: %s (%s)", rec.Callee, rec.Kind)
		}
	}

	// Report unused ignore directives
	reportUnusedIgnores(pass, ignoreMaps)

	return nil, nil
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
// Test files can be skipped via the driver's built-in -test flag.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename

		// Always skip generated files
		if ast.IsGenerated(file) {
			skipFiles[filename] = true
		}
	}

	return skipFiles
}

// buildIgnoreMaps creates ignore maps for each file in the pass.
func buildIgnoreMaps(pass *analysis.Pass, skipFiles map[string]bool) map[string]ignore.Map {
	ignoreMaps := make(map[string]ignore.Map)

	for _, file := range pass.Files {
		filename := pass.Fset.Position(file.Pos()).Filename
		if skipFiles[filename] {
			continue
		}
		ignoreMaps[filename] = ignore.Build(pass.Fset, file)
	}

	return ignoreMaps
}

// reportUnusedIgnores reports any ignore directives that were not used,
// file by file in pass order.
func reportUnusedIgnores(pass *analysis.Pass, ignoreMaps map[string]ignore.Map) {
	for _, file := range pass.Files {
		ignoreMap := ignoreMaps[pass.Fset.Position(file.Pos()).Filename]
		for _, unused := range ignoreMap.GetUnusedIgnores() {
			if len(unused.Kinds) == 0 {
				pass.Reportf(unused.Pos, "unused implicitctor:ignore directive")
			} else {
				kindNames := make([]string, len(unused.Kinds))
				for i, k := range unused.Kinds {
					kindNames[i] = string(k)
				}
				pass.Reportf(unused.Pos, "unused implicitctor:ignore directive for kind(s): %s", strings.Join(kindNames, ", "))
			}
		}
	}
}

package ignore

import (
	"cmp"
	"go/ast"
	"go/token"
	"slices"
	"strings"

	"github.com/mpyw/implicitctor/internal/ctor"
)

const prefix = "implicitctor:ignore"

// KindName is a constructor kind as spelled in a directive.
type KindName string

// Valid kind names.
var (
	Default       = NameOf(ctor.Default)
	Copy          = NameOf(ctor.Copy)
	Parameterized = NameOf(ctor.Parameterized)
)

// NameOf returns the directive spelling of k.
func NameOf(k ctor.Kind) KindName {
	return KindName(k.ShortName())
}

// AllKindNames returns all valid kind names.
func AllKindNames() []KindName {
	kinds := ctor.Kinds()
	names := make([]KindName, len(kinds))
	for i, k := range kinds {
		names[i] = NameOf(k)
	}
	return names
}

func isValid(name KindName) bool {
	for _, n := range AllKindNames() {
		if n == name {
			return true
		}
	}
	return false
}

// Entry tracks an ignore directive and its usage.
type Entry struct {
	pos   token.Pos         // Position of the ignore comment
	kinds []KindName        // List of kind names (empty = all)
	used  map[KindName]bool // Track usage per kind
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file for ignore comments and returns a map.
func Build(fset *token.FileSet, file *ast.File) Map {
	m := make(Map)

	for _, cg := range file.Comments {
		for _, c := range cg.List {
			if kinds, ok := parseComment(c.Text); ok {
				line := fset.Position(c.Pos()).Line
				m[line] = &Entry{
					pos:   c.Pos(),
					kinds: kinds,
					used:  make(map[KindName]bool),
				}
			}
		}
	}

	return m
}

// parseComment parses an ignore directive and returns the kind names.
// Returns nil slice if no specific kinds are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //implicitctor:ignore                      -> ignore all kinds
//   - //implicitctor:ignore copy                 -> ignore copy constructors
//   - //implicitctor:ignore default,copy         -> ignore several kinds
//   - //implicitctor:ignore - reason             -> ignore all with comment
//   - //implicitctor:ignore copy - reason        -> ignore specific with comment
func parseComment(text string) ([]KindName, bool) {
	text = strings.TrimPrefix(text, "//")
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, prefix) {
		return nil, false
	}

	rest := strings.TrimPrefix(text, prefix)
	if rest != "" && rest[0] != ' ' {
		// e.g. "implicitctor:ignored"
		return nil, false
	}

	// Stop at comment markers: " - " or " //"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}

	rest = strings.TrimSpace(rest)
	if rest == "" || rest == "-" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	kinds := make([]KindName, 0, len(parts))

	for _, part := range parts {
		name := KindName(strings.TrimSpace(part))
		if name != "" {
			kinds = append(kinds, name)
		}
	}

	return kinds, true
}

// ShouldIgnore returns true if the given line should be ignored for the specified kind.
// It checks if the same line or the previous line has an ignore comment.
func (m Map) ShouldIgnore(line int, kind KindName) bool {
	if m.shouldIgnoreEntry(m[line], kind) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], kind) {
		return true
	}

	return false
}

func (m Map) shouldIgnoreEntry(entry *Entry, kind KindName) bool {
	if entry == nil {
		return false
	}

	if len(entry.kinds) == 0 {
		entry.used[kind] = true
		return true
	}

	for _, k := range entry.kinds {
		if k == kind {
			entry.used[kind] = true
			return true
		}
	}

	return false
}

// UnusedIgnore represents an unused ignore directive.
type UnusedIgnore struct {
	Pos   token.Pos
	Kinds []KindName // Unused or unknown kind names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that suppressed nothing,
// ordered by position. Unknown kind names are always reported.
func (m Map) GetUnusedIgnores() []UnusedIgnore {
	var unused []UnusedIgnore

	for _, entry := range m {
		if len(entry.kinds) == 0 {
			if len(entry.used) == 0 {
				unused = append(unused, UnusedIgnore{Pos: entry.pos})
			}
			continue
		}

		var unusedKinds []KindName
		for _, k := range entry.kinds {
			if !isValid(k) || !entry.used[k] {
				unusedKinds = append(unusedKinds, k)
			}
		}
		if len(unusedKinds) > 0 {
			unused = append(unused, UnusedIgnore{
				Pos:   entry.pos,
				Kinds: unusedKinds,
			})
		}
	}

	slices.SortFunc(unused, func(a, b UnusedIgnore) int {
		return cmp.Compare(a.Pos, b.Pos)
	})

	return unused
}

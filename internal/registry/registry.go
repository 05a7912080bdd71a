package registry

import (
	"errors"
	"fmt"
	"slices"

	"github.com/mpyw/implicitctor/internal/ctor"
	"github.com/mpyw/implicitctor/internal/ir"
)

var (
	// ErrUnknownPass is returned when no pass is registered under a name.
	ErrUnknownPass = errors.New("unknown pass")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("pass already registered")
	// ErrInvalidEntry is returned for entries without a name or factory.
	ErrInvalidEntry = errors.New("invalid pass entry")
)

// Options configures a pass instance.
type Options struct {
	// Marker is the constructor-name marker. Empty selects ctor.DefaultMarker.
	Marker string
}

// Pass runs over one function at a time.
type Pass interface {
	// RunOnFunction returns the records found in fn and whether fn was changed.
	RunOnFunction(fn *ir.Function) (records []ctor.Record, changed bool)
}

// Entry describes a registered pass.
type Entry struct {
	// Name is the identifier hosts use to select the pass (e.g., "implicit-ctor").
	Name string

	// Doc is a one-line human-readable description.
	Doc string

	// Mutates reports whether the pass may transform the program.
	Mutates bool

	// New creates a pass instance.
	New func(opts Options) Pass
}

// Registry maps pass names to entries.
type Registry struct {
	entries map[string]Entry
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds an entry to the registry.
func (r *Registry) Register(entry Entry) error {
	if entry.Name == "" || entry.New == nil {
		return fmt.Errorf("%w: %q", ErrInvalidEntry, entry.Name)
	}
	if _, exists := r.entries[entry.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, entry.Name)
	}
	r.entries[entry.Name] = entry
	return nil
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownPass, name)
	}
	return entry, nil
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package registry

import (
	"github.com/mpyw/implicitctor/internal/ctor"
	"github.com/mpyw/implicitctor/internal/ir"
)

// ImplicitCtor is the name of the constructor call detection pass.
const ImplicitCtor = "implicit-ctor"

// RegisterDefaults registers the built-in passes.
func RegisterDefaults(reg *Registry) error {
	return reg.Register(Entry{
		Name:    ImplicitCtor,
		Doc:     "Detect Implicit Constructor Calls",
		Mutates: false,
		New: func(opts Options) Pass {
			return scanPass{scanner: ctor.NewScanner(opts.Marker)}
		},
	})
}

// Defaults returns a registry holding the built-in passes.
func Defaults() *Registry {
	reg := New()
	if err := RegisterDefaults(reg); err != nil {
		// Only reachable if the built-in table itself is broken.
		panic(err)
	}
	return reg
}

type scanPass struct {
	scanner *ctor.Scanner
}

func (p scanPass) RunOnFunction(fn *ir.Function) ([]ctor.Record, bool) {
	return p.scanner.Scan(fn), false
}

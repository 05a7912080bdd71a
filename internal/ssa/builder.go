package ssa

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/buildssa"
	"golang.org/x/tools/go/ssa"
)

// BuildSSAAnalyzer is the buildssa analyzer that must be in Requires.
var BuildSSAAnalyzer = buildssa.Analyzer

// Program wraps an SSA program with the analyzed package.
type Program struct {
	*ssa.Program
	Pkg      *ssa.Package
	SrcFuncs []*ssa.Function
}

// Build creates an SSA program from the analysis pass.
// This requires buildssa.Analyzer to be in the pass's Requires.
func Build(pass *analysis.Pass) *Program {
	ssaResult, ok := pass.ResultOf[buildssa.Analyzer].(*buildssa.SSA)
	if !ok || ssaResult == nil {
		return nil
	}

	return &Program{
		Program:  ssaResult.Pkg.Prog,
		Pkg:      ssaResult.Pkg,
		SrcFuncs: ssaResult.SrcFuncs,
	}
}

// Funcs returns every function whose body belongs to the package: the
// source functions (closures included) followed by the package initializer
// and the closures of package-level variable initializers.
func (p *Program) Funcs() []*ssa.Function {
	if p == nil {
		return nil
	}

	funcs := make([]*ssa.Function, 0, len(p.SrcFuncs)+1)
	funcs = append(funcs, p.SrcFuncs...)
	if init := p.Pkg.Func("init"); init != nil {
		funcs = appendWithAnons(funcs, init)
	}
	return funcs
}

func appendWithAnons(funcs []*ssa.Function, fn *ssa.Function) []*ssa.Function {
	funcs = append(funcs, fn)
	for _, anon := range fn.AnonFuncs {
		funcs = appendWithAnons(funcs, anon)
	}
	return funcs
}

package ssa

import (
	"fmt"

	"golang.org/x/tools/go/ssa"

	"github.com/mpyw/implicitctor/internal/ir"
)

// Converter lowers SSA functions. Callee declarations are shared between
// all functions converted by the same Converter.
//
// A Converter is not safe for concurrent use.
type Converter struct {
	decls map[*ssa.Function]*ir.Function
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{decls: make(map[*ssa.Function]*ir.Function)}
}

// Function lowers fn with its body. Calls that have a static callee
// (functions, methods, closures called directly) resolve; interface
// invocations, calls through function values and builtins do not.
func (c *Converter) Function(fn *ssa.Function) *ir.Function {
	out := &ir.Function{
		Name:     fn.String(),
		Params:   declaredParams(fn.Signature),
		Variadic: fn.Signature.Variadic(),
	}

	for _, b := range fn.Blocks {
		blk := &ir.Block{
			Name:   fmt.Sprintf("%d.%s", b.Index, b.Comment),
			Instrs: make([]ir.Instruction, 0, len(b.Instrs)),
		}
		for _, instr := range b.Instrs {
			blk.Instrs = append(blk.Instrs, c.instruction(fn, instr))
		}
		out.Blocks = append(out.Blocks, blk)
	}

	return out
}

func (c *Converter) instruction(fn *ssa.Function, instr ssa.Instruction) ir.Instruction {
	// *ssa.Call, *ssa.Go and *ssa.Defer.
	ci, ok := instr.(ssa.CallInstruction)
	if !ok {
		return &ir.Other{Op: opName(instr)}
	}

	common := ci.Common()
	call := &ir.Call{
		Args: lowerArgs(common.Args),
		Pos:  ci.Pos(),
	}
	if !call.Pos.IsValid() {
		call.Pos = fn.Pos()
	}
	if callee := common.StaticCallee(); callee != nil {
		call.Callee = c.declaration(callee)
	}

	return call
}

// declaration lowers the identity and signature of a callee, without body.
func (c *Converter) declaration(fn *ssa.Function) *ir.Function {
	if decl, ok := c.decls[fn]; ok {
		return decl
	}

	decl := &ir.Function{
		Name:     fn.String(),
		Params:   declaredParams(fn.Signature),
		Variadic: fn.Signature.Variadic(),
	}
	c.decls[fn] = decl

	return decl
}

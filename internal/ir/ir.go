// Package ir is the host-neutral program representation read by implicitctor.
//
// Front ends (go/ssa, LLVM assembly, YAML fixtures) lower their own IR into
// these types. Nothing in this module mutates a Program once it is built.
package ir

import (
	"go/token"
	"iter"
)

// Program is the unit under analysis.
type Program struct {
	Name  string
	Funcs []*Function
}

// Lookup returns the function with the given name, or nil.
func (p *Program) Lookup(name string) *Function {
	if p == nil {
		return nil
	}
	for _, fn := range p.Funcs {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

// Function is a named routine. A Function without blocks is an external
// declaration: it can be a call target but has no body to scan.
type Function struct {
	Name     string
	Params   []Param
	Variadic bool
	Blocks   []*Block
}

// IsDeclaration reports whether fn has no body.
func (fn *Function) IsDeclaration() bool {
	return len(fn.Blocks) == 0
}

// Instructions yields every instruction of fn in block order, then in
// instruction order within each block.
func (fn *Function) Instructions() iter.Seq[Instruction] {
	return func(yield func(Instruction) bool) {
		if fn == nil {
			return
		}
		for _, b := range fn.Blocks {
			if b == nil {
				continue
			}
			for _, instr := range b.Instrs {
				if !yield(instr) {
					return
				}
			}
		}
	}
}

// Block is a control-flow block.
type Block struct {
	Name   string
	Instrs []Instruction
}

// Param is a formal parameter.
type Param struct {
	Name string
	Type Type
}

// Type is the declared type of a parameter or operand as the host prints it.
type Type struct {
	Text    string
	Pointer bool
}

// String returns the host's spelling of the type.
func (t Type) String() string {
	return t.Text
}

// Value is an actual argument expression.
type Value struct {
	Text string
	Type Type
}

// Instruction is one operation within a Block.
//
// The set of variants is closed: *Call and *Other.
type Instruction interface {
	instruction()
}

// Call invokes another routine. Callee is nil when the target cannot be
// resolved statically (indirect calls, calls through function values,
// interface dispatch).
type Call struct {
	Callee *Function
	Args   []Value
	Pos    token.Pos
}

// Other is any non-call instruction. Op is informational only.
type Other struct {
	Op string
}

func (*Call) instruction()  {}
func (*Other) instruction() {}

var (
	_ Instruction = (*Call)(nil)
	_ Instruction = (*Other)(nil)
)

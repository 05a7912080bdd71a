// Package llvmir lowers textual LLVM IR into ir.Program.
//
// Every define and declare becomes an ir.Function; declarations have no
// blocks. A call resolves only when its callee operand is a function
// itself. Calls through loaded pointers, casts or inline asm keep a nil
// callee. Invoke terminators are not calls.
//
// Only typed-pointer IR (i8*, %class.Foo*) can be read: the parser does not
// accept the opaque ptr type that clang 15 and later emit by default. Such
// input fails with ErrOpaquePointers. Compile with
// -Xclang -no-opaque-pointers (clang 15 and 16) or describe the program in
// YAML instead.
package llvmir

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/llir/llvm/asm"
	llir "github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/mpyw/implicitctor/internal/ir"
)

// ErrOpaquePointers is returned for IR using the opaque ptr type.
var ErrOpaquePointers = errors.New("opaque pointer IR is not supported, only typed pointers (T*)")

// opaquePtr matches the ptr type keyword, not %ptr, @ptr or ptr.addr.
var opaquePtr = regexp.MustCompile(`(^|[^%@$.\w])ptr([^.\w]|$)`)

// ParseFile parses the LLVM assembly file at path.
func ParseFile(path string) (*ir.Program, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := asm.ParseBytes(path, src)
	if err != nil {
		return nil, parseError(path, string(src), err)
	}
	prog := Lower(m)
	if prog.Name == "" {
		prog.Name = path
	}
	return prog, nil
}

// ParseString parses LLVM assembly held in src; name is used in errors.
func ParseString(name, src string) (*ir.Program, error) {
	m, err := asm.ParseString(name, src)
	if err != nil {
		return nil, parseError(name, src, err)
	}
	prog := Lower(m)
	if prog.Name == "" {
		prog.Name = name
	}
	return prog, nil
}

func parseError(name, src string, err error) error {
	for line := range strings.Lines(src) {
		code, _, _ := strings.Cut(line, ";")
		if opaquePtr.MatchString(code) {
			return fmt.Errorf("parse %s: %w", name, ErrOpaquePointers)
		}
	}
	return fmt.Errorf("parse %s: %w", name, err)
}

// Lower converts a parsed module. The module is not modified.
func Lower(m *llir.Module) *ir.Program {
	prog := &ir.Program{Name: m.SourceFilename}
	funcs := make(map[*llir.Func]*ir.Function, len(m.Funcs))

	for _, f := range m.Funcs {
		fn := &ir.Function{
			// Numbered functions (@0, @1, ...) have no name.
			Name:     f.GlobalName,
			Variadic: f.Sig != nil && f.Sig.Variadic,
		}
		for _, p := range f.Params {
			fn.Params = append(fn.Params, ir.Param{Name: p.LocalName, Type: lowerType(p.Typ)})
		}
		funcs[f] = fn
		prog.Funcs = append(prog.Funcs, fn)
	}

	for _, f := range m.Funcs {
		fn := funcs[f]
		for _, b := range f.Blocks {
			blk := &ir.Block{Name: b.LocalName}
			for _, inst := range b.Insts {
				blk.Instrs = append(blk.Instrs, lowerInst(inst, funcs))
			}
			if b.Term != nil {
				blk.Instrs = append(blk.Instrs, &ir.Other{Op: opName(b.Term)})
			}
			fn.Blocks = append(fn.Blocks, blk)
		}
	}

	return prog
}

func lowerInst(inst llir.Instruction, funcs map[*llir.Func]*ir.Function) ir.Instruction {
	call, ok := inst.(*llir.InstCall)
	if !ok {
		return &ir.Other{Op: opName(inst)}
	}

	lowered := &ir.Call{Args: lowerArgs(call.Args)}
	if callee, ok := call.Callee.(*llir.Func); ok {
		lowered.Callee = funcs[callee]
	}
	return lowered
}

func lowerArgs(args []value.Value) []ir.Value {
	if len(args) == 0 {
		return nil
	}
	values := make([]ir.Value, len(args))
	for i, a := range args {
		values[i] = ir.Value{Text: a.Ident(), Type: lowerType(a.Type())}
	}
	return values
}

func lowerType(t types.Type) ir.Type {
	if t == nil {
		return ir.Type{}
	}
	_, isPtr := t.(*types.PointerType)
	return ir.Type{Text: t.String(), Pointer: isPtr}
}

// opName turns *ir.InstAlloca into "alloca" and *ir.TermRet into "ret".
func opName(v any) string {
	name := fmt.Sprintf("%T", v)
	name = name[strings.LastIndex(name, ".")+1:]
	name = strings.TrimPrefix(name, "Inst")
	name = strings.TrimPrefix(name, "Term")
	return strings.ToLower(name)
}

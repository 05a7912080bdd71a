package ssa

import (
	"fmt"
	"go/types"
	"strings"

	"golang.org/x/tools/go/ssa"

	"github.com/mpyw/implicitctor/internal/ir"
)

// declaredParams returns the parameters declared by sig. A method receiver
// comes first.
func declaredParams(sig *types.Signature) []ir.Param {
	var params []ir.Param

	if recv := sig.Recv(); recv != nil {
		params = append(params, lowerVar(recv))
	}

	tuple := sig.Params()
	for i := range tuple.Len() {
		params = append(params, lowerVar(tuple.At(i)))
	}

	return params
}

func lowerVar(v *types.Var) ir.Param {
	return ir.Param{Name: v.Name(), Type: lowerType(v.Type())}
}

func lowerType(t types.Type) ir.Type {
	return ir.Type{Text: types.TypeString(t, nil), Pointer: isPointer(t)}
}

// isPointer reports whether t is *T or unsafe.Pointer, possibly behind a
// named type.
func isPointer(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer:
		return true
	case *types.Basic:
		return u.Kind() == types.UnsafePointer
	}
	return false
}

func lowerArgs(args []ssa.Value) []ir.Value {
	if len(args) == 0 {
		return nil
	}
	values := make([]ir.Value, len(args))
	for i, a := range args {
		values[i] = ir.Value{Text: a.Name(), Type: lowerType(a.Type())}
	}
	return values
}

// opName turns *ssa.Alloc into "alloc".
func opName(instr ssa.Instruction) string {
	name := fmt.Sprintf("%T", instr)
	return strings.ToLower(name[strings.LastIndex(name, ".")+1:])
}

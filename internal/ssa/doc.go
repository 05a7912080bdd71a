// Package ssa lowers go/ssa functions into the implicitctor IR.
//
// # Overview
//
// The analyzer does not scan go/ssa directly. It lowers each SSA function
// into [ir.Function] and runs the same scanner used for LLVM and YAML
// programs, so the constructor heuristic and classification rules behave
// identically for every front end.
//
// # Program Building
//
// Use [Build] to obtain the SSA package from an analysis pass:
//
//	ssaProg := ssa.Build(pass)
//	for _, fn := range ssaProg.Funcs() {
//	    // ...
//	}
//
// [Program.Funcs] returns the buildssa source functions (closures
// included) and the package initializer.
//
// # Lowering
//
// [Converter.Function] maps instructions as follows:
//
//	┌──────────────────────────────┬───────────────────────────────────┐
//	│ SSA                          │ IR                                │
//	├──────────────────────────────┼───────────────────────────────────┤
//	│ *ssa.Call, *ssa.Go,          │ *ir.Call, callee = StaticCallee() │
//	│ *ssa.Defer                   │                                   │
//	│ interface invoke, func value │ *ir.Call, callee = nil            │
//	│ builtin                      │ *ir.Call, callee = nil            │
//	│ anything else                │ *ir.Other                         │
//	└──────────────────────────────┴───────────────────────────────────┘
//
// # Declared Parameters
//
// Callee parameters come from the callee's [types.Signature]. A method
// receiver is the first parameter:
//
//	func (w *Widget) ResetC1()    // 1 pointer parameter   -> Copy
//	func (w Widget) ValueC1()     // 1 value parameter     -> Parameterized
//	func WidgetC1() *Widget       // no parameters         -> Default
//
// Both *T and unsafe.Pointer (also behind named types) count as pointers.
package ssa

// Package ignore provides //implicitctor:ignore directive parsing.
//
// # Overview
//
// The ignore directive suppresses implicitctor diagnostics for a line,
// optionally only for some constructor kinds.
//
// # Directive Placement
//
// The directive can appear on the line before or the same line:
//
//	//implicitctor:ignore
//	w := NewWidgetC1()  // Diagnostic suppressed
//
//	w := NewWidgetC1()  //implicitctor:ignore  // Also works
//
// # Kind-Specific Ignores
//
//	//implicitctor:ignore copy
//	CloneC1(w)  // Only copy constructor calls are suppressed
//
//	//implicitctor:ignore default,parameterized - generated bindings
//	w := NewWidgetC1()
//
// # Valid Kind Names
//
//	┌───────────────┬───────────────────────────────────────┐
//	│ Name          │ Callee shape                          │
//	├───────────────┼───────────────────────────────────────┤
//	│ default       │ no declared parameters                │
//	│ copy          │ exactly one pointer parameter         │
//	│ parameterized │ anything else                         │
//	└───────────────┴───────────────────────────────────────┘
//
// # Unused Directives
//
// Directives that suppress nothing, and unknown kind names, are reported
// by the analyzer as "unused implicitctor:ignore directive".
package ignore

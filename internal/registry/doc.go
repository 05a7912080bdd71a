// Package registry maps analysis pass names to factories.
//
// # Overview
//
// A host discovers passes by name instead of relying on load-time side
// effects. The registry is an ordinary value: build it once at startup and
// hand it to whatever runs the passes.
//
//	reg := registry.New()
//	if err := registry.RegisterDefaults(reg); err != nil {
//	    return err
//	}
//
//	entry, err := reg.Lookup("implicit-ctor")
//	if err != nil {
//	    return err // wraps registry.ErrUnknownPass
//	}
//	pass := entry.New(registry.Options{Marker: "C1"})
//
// # Running a Pass
//
// A [Pass] is invoked once per function and returns its records together
// with a changed flag:
//
//	records, changed := pass.RunOnFunction(fn)
//
// The built-in implicit-ctor pass never changes the program, so changed is
// always false.
//
// # Built-in Registrations
//
//	┌───────────────┬───────────────────────────────────┬─────────┐
//	│ Name          │ Description                       │ Mutates │
//	├───────────────┼───────────────────────────────────┼─────────┤
//	│ implicit-ctor │ Detect Implicit Constructor Calls │ no      │
//	└───────────────┴───────────────────────────────────┴─────────┘
package registry

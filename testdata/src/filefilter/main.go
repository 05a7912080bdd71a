// Package filefilter tests file filtering functionality.
// Generated files are always skipped (see generated.go).
package filefilter

type Conn struct{}

func ConnC1() *Conn { return &Conn{} }

func dial() *Conn {
	return ConnC1() // want `implicit constructor detected: filefilter\.ConnC1 \(Default Constructor\)`
}

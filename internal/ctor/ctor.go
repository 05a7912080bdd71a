// Package ctor detects and classifies calls to constructor-like routines.
//
// A call is treated as a constructor call when the resolved target's name
// contains a marker substring. The default marker "C1" is the Itanium C++ ABI
// spelling of a complete object constructor. The test is a plain substring
// match, so any function whose name happens to contain the marker is
// reported, and constructors spelled differently are never seen.
package ctor

import (
	"fmt"
	"go/token"
	"strings"

	"github.com/mpyw/implicitctor/internal/ir"
)

// DefaultMarker is the constructor-name marker used when none is configured.
const DefaultMarker = "C1"

// Kind classifies a constructor call by the callee's declared parameters.
type Kind int

const (
	kindInvalid Kind = iota
	Default
	Copy
	Parameterized
)

// Kinds lists every valid classification.
func Kinds() []Kind {
	return []Kind{Default, Copy, Parameterized}
}

func (k Kind) String() string {
	switch k {
	case Default:
		return "Default Constructor"
	case Copy:
		return "Copy Constructor"
	case Parameterized:
		return "Parameterized Constructor"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ShortName returns the lower-case identifier used in directives and JSON.
func (k Kind) ShortName() string {
	switch k {
	case Default:
		return "default"
	case Copy:
		return "copy"
	case Parameterized:
		return "parameterized"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	name := k.ShortName()
	if name == "" {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	for _, kind := range Kinds() {
		if kind.ShortName() == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown constructor kind %q", b)
}

// Record is one reported constructor call.
type Record struct {
	Caller string
	Callee string
	Kind   Kind
	Pos    token.Pos
}

// IsConstructorName reports whether name contains marker. The comparison is
// case-sensitive and does no demangling.
func IsConstructorName(name, marker string) bool {
	if marker == "" {
		marker = DefaultMarker
	}
	return strings.Contains(name, marker)
}

// Classify returns the constructor kind implied by a declared parameter list.
func Classify(params []ir.Param) Kind {
	switch {
	case len(params) == 0:
		return Default
	case len(params) == 1 && params[0].Type.Pointer:
		return Copy
	default:
		return Parameterized
	}
}

// Scanner finds constructor calls in function bodies.
// It holds no mutable state and is safe for concurrent use.
type Scanner struct {
	marker string
}

// NewScanner creates a Scanner for the given marker. An empty marker selects
// DefaultMarker.
func NewScanner(marker string) *Scanner {
	if marker == "" {
		marker = DefaultMarker
	}
	return &Scanner{marker: marker}
}

// Marker returns the substring used to recognize constructor names.
func (s *Scanner) Marker() string {
	return s.marker
}

// Scan returns one Record per call in fn whose resolved target is named and
// matches the marker, in instruction order.
func (s *Scanner) Scan(fn *ir.Function) []Record {
	var records []Record

	for instr := range fn.Instructions() {
		call, ok := instr.(*ir.Call)
		if !ok {
			continue
		}

		callee := call.Callee
		if callee == nil || callee.Name == "" {
			continue
		}
		if !IsConstructorName(callee.Name, s.marker) {
			continue
		}

		records = append(records, Record{
			Caller: fn.Name,
			Callee: callee.Name,
			Kind:   Classify(callee.Params),
			Pos:    call.Pos,
		})
	}

	return records
}

package ctor

import (
	"reflect"
	"testing"

	"github.com/mpyw/implicitctor/internal/ir"
)

var (
	ptrType   = ir.Type{Text: "ptr", Pointer: true}
	intType   = ir.Type{Text: "i32"}
	floatType = ir.Type{Text: "float"}
)

func decl(name string, params ...ir.Type) *ir.Function {
	fn := &ir.Function{Name: name}
	for _, typ := range params {
		fn.Params = append(fn.Params, ir.Param{Type: typ})
	}
	return fn
}

func body(name string, instrs ...ir.Instruction) *ir.Function {
	return &ir.Function{
		Name:   name,
		Blocks: []*ir.Block{{Name: "entry", Instrs: instrs}},
	}
}

func call(callee *ir.Function, args ...string) *ir.Call {
	c := &ir.Call{Callee: callee}
	for _, a := range args {
		c.Args = append(c.Args, ir.Value{Text: a})
	}
	return c
}

func TestIsConstructorName(t *testing.T) {
	tests := []struct {
		name   string
		marker string
		want   bool
	}{
		{name: "_ZN7MyClassC1Ev", want: true},
		{name: "_ZN7MyClassC2Ev", want: false},
		{name: "Foo::Foo()", want: false},
		{name: "C1", want: true},
		{name: "c1", want: false},
		{name: "Calc1Sum", want: false},
		{name: "CalcC1Sum", want: true},
		{name: "", want: false},
		{name: "example.com/pkg.NewWidget", marker: "New", want: true},
		{name: "example.com/pkg.newWidget", marker: "New", want: false},
		{name: "_ZN3FooC1Ev", marker: "", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.marker, func(t *testing.T) {
			if got := IsConstructorName(tt.name, tt.marker); got != tt.want {
				t.Errorf("IsConstructorName(%q, %q) = %v, want %v", tt.name, tt.marker, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		params []ir.Type
		want   Kind
	}{
		{name: "no params", want: Default},
		{name: "single pointer", params: []ir.Type{ptrType}, want: Copy},
		{name: "pointer to pointer", params: []ir.Type{{Text: "i8**", Pointer: true}}, want: Copy},
		{name: "single int", params: []ir.Type{intType}, want: Parameterized},
		{name: "int and float", params: []ir.Type{intType, floatType}, want: Parameterized},
		{name: "two pointers", params: []ir.Type{ptrType, ptrType}, want: Parameterized},
		{name: "this and int", params: []ir.Type{ptrType, intType}, want: Parameterized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(decl("x", tt.params...).Params); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanScenarios(t *testing.T) {
	tests := []struct {
		name   string
		callee *ir.Function
		want   []Record
	}{
		{
			name:   "default constructor",
			callee: decl("_ZN3FooC1Ev"),
			want:   []Record{{Caller: "caller", Callee: "_ZN3FooC1Ev", Kind: Default}},
		},
		{
			name:   "copy constructor",
			callee: decl("_ZN3BarC1EPS_", ptrType),
			want:   []Record{{Caller: "caller", Callee: "_ZN3BarC1EPS_", Kind: Copy}},
		},
		{
			name:   "parameterized constructor",
			callee: decl("_ZN3BazC1Eif", intType, floatType),
			want:   []Record{{Caller: "caller", Callee: "_ZN3BazC1Eif", Kind: Parameterized}},
		},
		{
			name:   "single non-pointer parameter",
			callee: decl("_ZN3QuxC1Ei", intType),
			want:   []Record{{Caller: "caller", Callee: "_ZN3QuxC1Ei", Kind: Parameterized}},
		},
		{
			name:   "indirect call",
			callee: nil,
			want:   nil,
		},
		{
			name:   "lower-case c1 is not the marker",
			callee: decl("Calc1Sum", intType),
			want:   nil,
		},
		{
			name:   "marker inside a non-constructor name",
			callee: decl("CalcC1Sum", intType, intType),
			want:   []Record{{Caller: "caller", Callee: "CalcC1Sum", Kind: Parameterized}},
		},
		{
			name:   "anonymous target",
			callee: decl(""),
			want:   nil,
		},
		{
			name:   "base object constructor",
			callee: decl("_ZN3FooC2Ev"),
			want:   nil,
		},
	}

	scanner := NewScanner("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := body("caller", call(tt.callee))
			got := scanner.Scan(fn)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScanEmptyFunction(t *testing.T) {
	scanner := NewScanner(DefaultMarker)

	if got := scanner.Scan(&ir.Function{Name: "decl"}); len(got) != 0 {
		t.Errorf("declaration: got %d records, want 0", len(got))
	}
	if got := scanner.Scan(body("empty")); len(got) != 0 {
		t.Errorf("empty block: got %d records, want 0", len(got))
	}
}

func TestScanIgnoresOtherInstructions(t *testing.T) {
	fn := body("caller",
		&ir.Other{Op: "alloca"},
		&ir.Other{Op: "_ZN3FooC1Ev"},
		&ir.Other{Op: "ret"},
	)

	if got := NewScanner("").Scan(fn); len(got) != 0 {
		t.Errorf("got %+v, want no records", got)
	}
}

func TestScanPreservesOrderAcrossBlocks(t *testing.T) {
	a := decl("_ZN1AC1Ev")
	b := decl("_ZN1BC1EPS_", ptrType)
	c := decl("_ZN1CC1Ei", intType)
	plain := decl("_Z4workv")

	fn := &ir.Function{
		Name: "caller",
		Blocks: []*ir.Block{
			{Name: "entry", Instrs: []ir.Instruction{call(b), &ir.Other{Op: "br"}}},
			{Name: "then", Instrs: []ir.Instruction{call(plain), call(a), call(nil)}},
			{Name: "exit", Instrs: []ir.Instruction{call(c), call(b), &ir.Other{Op: "ret"}}},
		},
	}

	got := NewScanner("").Scan(fn)

	wantCallees := []string{"_ZN1BC1EPS_", "_ZN1AC1Ev", "_ZN1CC1Ei", "_ZN1BC1EPS_"}
	wantKinds := []Kind{Copy, Default, Parameterized, Copy}
	if len(got) != len(wantCallees) {
		t.Fatalf("got %d records, want %d: %+v", len(got), len(wantCallees), got)
	}
	for i := range got {
		if got[i].Callee != wantCallees[i] || got[i].Kind != wantKinds[i] {
			t.Errorf("record %d = %+v, want %s/%v", i, got[i], wantCallees[i], wantKinds[i])
		}
	}
}

func TestScanIgnoresActualArguments(t *testing.T) {
	target := decl("_ZN3BarC1EPS_", ptrType)
	fn := body("caller",
		call(target),
		call(target, "%a"),
		call(target, "%a", "%b", "%c"),
		call(target, "i32 7"),
	)

	got := NewScanner("").Scan(fn)
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}
	for i, rec := range got {
		if rec.Kind != Copy {
			t.Errorf("record %d kind = %v, want %v", i, rec.Kind, Copy)
		}
	}
}

func TestScanCustomMarker(t *testing.T) {
	fn := body("main",
		call(decl("example.com/shop.NewCart")),
		call(decl("example.com/shop.CartC1")),
	)

	got := NewScanner("New").Scan(fn)
	if len(got) != 1 || got[0].Callee != "example.com/shop.NewCart" {
		t.Errorf("got %+v, want only NewCart", got)
	}
}

func TestScanCarriesPosition(t *testing.T) {
	c := call(decl("_ZN3FooC1Ev"))
	c.Pos = 42

	got := NewScanner("").Scan(body("caller", c))
	if len(got) != 1 || got[0].Pos != 42 {
		t.Errorf("got %+v, want position 42", got)
	}
}

func TestNewScannerMarker(t *testing.T) {
	if got := NewScanner("").Marker(); got != DefaultMarker {
		t.Errorf("empty marker = %q, want %q", got, DefaultMarker)
	}
	if got := NewScanner("D1").Marker(); got != "D1" {
		t.Errorf("marker = %q, want D1", got)
	}
}

func TestKindText(t *testing.T) {
	for _, kind := range Kinds() {
		text, err := kind.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", kind, err)
		}

		var back Kind
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != kind {
			t.Errorf("round trip of %v gave %v", kind, back)
		}
	}

	if _, err := kindInvalid.MarshalText(); err == nil {
		t.Error("expected error marshaling invalid kind")
	}

	var k Kind
	if err := k.UnmarshalText([]byte("move")); err == nil {
		t.Error("expected error for unknown kind name")
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Default, "Default Constructor"},
		{Copy, "Copy Constructor"},
		{Parameterized, "Parameterized Constructor"},
		{Kind(9), "Kind(9)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

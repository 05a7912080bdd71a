// Package yamlir decodes a YAML description of a program into ir.Program.
//
// Example:
//
//	name: sample
//	functions:
//	  - name: _ZN7MyClassC1Ev
//	    params:
//	      - {name: this, type: ptr}
//	  - name: _Z12testFunctionv
//	    blocks:
//	      - name: entry
//	        instrs:
//	          - op: alloca
//	          - call: _ZN7MyClassC1Ev
//	            args: ["%obj"]
//	          - indirect: "%fp"
//	          - op: ret
//
// A call to a name that no function declares cannot be resolved and is
// lowered with a nil callee, as is every indirect call.
package yamlir

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mpyw/implicitctor/internal/ir"
)

// ErrInvalid is returned for structurally invalid documents.
var ErrInvalid = errors.New("invalid program")

type document struct {
	Name      string     `yaml:"name"`
	Functions []function `yaml:"functions"`
}

type function struct {
	Name     string  `yaml:"name"`
	Params   []param `yaml:"params"`
	Variadic bool    `yaml:"variadic"`
	Blocks   []block `yaml:"blocks"`
}

type param struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Pointer *bool  `yaml:"pointer"`
}

type block struct {
	Name   string        `yaml:"name"`
	Instrs []instruction `yaml:"instrs"`
}

type instruction struct {
	Op       string   `yaml:"op"`
	Call     string   `yaml:"call"`
	Indirect string   `yaml:"indirect"`
	Args     []string `yaml:"args"`
}

// ReadFile decodes the program stored at path.
func ReadFile(path string) (*ir.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if prog.Name == "" {
		prog.Name = path
	}
	return prog, nil
}

// Decode reads one YAML document from r.
func Decode(r io.Reader) (*ir.Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &ir.Program{}, nil
		}
		return nil, fmt.Errorf("decode program: %w", err)
	}

	return lower(&doc)
}

func lower(doc *document) (*ir.Program, error) {
	prog := &ir.Program{Name: doc.Name}
	byName := make(map[string]*ir.Function, len(doc.Functions))

	// Declare every function first so calls can refer forward.
	for _, f := range doc.Functions {
		if f.Name != "" {
			if _, dup := byName[f.Name]; dup {
				return nil, fmt.Errorf("%w: function %q declared twice", ErrInvalid, f.Name)
			}
		}

		fn := &ir.Function{Name: f.Name, Variadic: f.Variadic}
		for _, p := range f.Params {
			fn.Params = append(fn.Params, ir.Param{Name: p.Name, Type: lowerType(p)})
		}

		if f.Name != "" {
			byName[f.Name] = fn
		}
		prog.Funcs = append(prog.Funcs, fn)
	}

	for i, f := range doc.Functions {
		fn := prog.Funcs[i]
		for _, b := range f.Blocks {
			blk := &ir.Block{Name: b.Name}
			for j, in := range b.Instrs {
				instr, err := lowerInstr(in, byName)
				if err != nil {
					return nil, fmt.Errorf("function %q block %q instruction %d: %w", f.Name, b.Name, j, err)
				}
				blk.Instrs = append(blk.Instrs, instr)
			}
			fn.Blocks = append(fn.Blocks, blk)
		}
	}

	return prog, nil
}

func lowerInstr(in instruction, byName map[string]*ir.Function) (ir.Instruction, error) {
	set := 0
	for _, s := range []string{in.Op, in.Call, in.Indirect} {
		if s != "" {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of op, call, indirect must be set", ErrInvalid)
	}

	switch {
	case in.Op != "":
		if len(in.Args) > 0 {
			return nil, fmt.Errorf("%w: args are only allowed on calls", ErrInvalid)
		}
		return &ir.Other{Op: in.Op}, nil
	case in.Call != "":
		return &ir.Call{Callee: byName[in.Call], Args: lowerArgs(in.Args)}, nil
	default:
		return &ir.Call{Args: lowerArgs(in.Args)}, nil
	}
}

func lowerArgs(args []string) []ir.Value {
	if len(args) == 0 {
		return nil
	}
	values := make([]ir.Value, len(args))
	for i, a := range args {
		values[i] = ir.Value{Text: a}
	}
	return values
}

// lowerType honors an explicit pointer flag and otherwise recognizes the
// LLVM spellings "ptr" and "T*".
func lowerType(p param) ir.Type {
	t := ir.Type{Text: p.Type}
	if p.Pointer != nil {
		t.Pointer = *p.Pointer
		return t
	}
	text := strings.TrimSpace(p.Type)
	t.Pointer = text == "ptr" || strings.HasPrefix(text, "ptr addrspace(") || strings.HasSuffix(text, "*")
	return t
}

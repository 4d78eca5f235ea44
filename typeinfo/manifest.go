// Package typeinfo serializes a unit's type table for code generators and
// runtime bridges. Types are listed in ordinal order and refer to each
// other by ordinal, so a reader can construct them in sequence.
package typeinfo

import (
	"fmt"
	"strings"

	"github.com/pontaoski/toucan/ast"
	"gopkg.in/yaml.v2"
)

// Symbol is the global a compiled library exports its manifest under.
const Symbol = "__toucan_types"

type Field struct {
	Name string `yaml:"name"`
	Type int    `yaml:"type"`
}

type Method struct {
	Name    string `yaml:"name"`
	Index   int    `yaml:"index"`
	Static  bool   `yaml:"static,omitempty"`
	Virtual bool   `yaml:"virtual,omitempty"`
	Return  int    `yaml:"return"`
	Args    []int  `yaml:"args,omitempty"`
	// Bridge is the C declaration a runtime provides for a native method.
	Bridge string `yaml:"bridge,omitempty"`
}

type EnumValue struct {
	ID    string `yaml:"id"`
	Value int    `yaml:"value"`
}

// Entry describes the type at one ordinal. Reference fields hold ordinals.
type Entry struct {
	Ordinal    int         `yaml:"ordinal"`
	Kind       string      `yaml:"kind"`
	Name       string      `yaml:"name,omitempty"`
	Bits       int         `yaml:"bits,omitempty"`
	Signed     bool        `yaml:"signed,omitempty"`
	Length     int         `yaml:"length,omitempty"`
	Layout     string      `yaml:"layout,omitempty"`
	PtrKind    string      `yaml:"ptrKind,omitempty"`
	Qualifiers []string    `yaml:"qualifiers,omitempty"`
	Base       *int        `yaml:"base,omitempty"`
	Template   *int        `yaml:"template,omitempty"`
	Args       []int       `yaml:"args,omitempty"`
	Parent     *int        `yaml:"parent,omitempty"`
	Native     bool        `yaml:"native,omitempty"`
	Fields     []Field     `yaml:"fields,omitempty"`
	Methods    []Method    `yaml:"methods,omitempty"`
	Values     []EnumValue `yaml:"values,omitempty"`
}

type Manifest struct {
	Package string  `yaml:"package"`
	Types   []Entry `yaml:"types"`
}

type builder struct {
	table *ast.TypeTable
}

// ord returns the ordinal of t, or -1 for a type the table does not own.
func (b builder) ord(t ast.Type) int {
	if t == nil {
		return -1
	}
	i, ok := b.table.Ordinal(t)
	if !ok {
		return -1
	}
	return i
}

func (b builder) ref(t ast.Type) *int {
	i := b.ord(t)
	return &i
}

var layoutNames = map[ast.MemoryLayout]string{
	ast.LayoutDefault: "default",
	ast.LayoutStorage: "storage",
	ast.LayoutUniform: "uniform",
}

var ptrKindNames = map[ast.PtrKind]string{
	ast.StrongPtr: "strong",
	ast.WeakPtr:   "weak",
	ast.RawPtr:    "raw",
}

func (b builder) entry(i int, t ast.Type) Entry {
	e := Entry{Ordinal: i}
	switch t := t.(type) {
	case *ast.IntegerType:
		e.Kind, e.Bits, e.Signed = "int", t.Bits, t.Signed
	case *ast.FloatingPointType:
		e.Kind, e.Bits = "float", t.Bits
	case *ast.BoolType:
		e.Kind = "bool"
	case *ast.VoidType:
		e.Kind = "void"
	case *ast.NullType:
		e.Kind = "null"
	case *ast.AutoType:
		e.Kind = "auto"
	case *ast.StringType:
		e.Kind = "string"
	case *ast.VectorType:
		e.Kind, e.Base, e.Length = "vector", b.ref(t.Component), t.Length
	case *ast.MatrixType:
		e.Kind, e.Base, e.Length = "matrix", b.ref(t.Column), t.Columns
	case *ast.ArrayType:
		e.Kind, e.Base, e.Length, e.Layout = "array", b.ref(t.Elem), t.NumElements, layoutNames[t.Layout]
	case *ast.PtrType:
		e.Kind, e.Base, e.PtrKind = "pointer", b.ref(t.Base), ptrKindNames[t.Kind]
	case *ast.QualifiedType:
		e.Kind, e.Base = "qualified", b.ref(t.Base)
		if s := t.Qualifiers.String(); s != "" {
			e.Qualifiers = strings.Fields(s)
		}
	case *ast.EnumType:
		e.Kind, e.Name = "enum", t.Name
		for _, v := range t.Values {
			e.Values = append(e.Values, EnumValue{v.ID, v.Value})
		}
	case *ast.FormalTemplateArg:
		e.Kind, e.Name = "formal", t.Name
	case *ast.UnresolvedScopedType:
		e.Kind, e.Name, e.Base = "scoped", t.ID, b.ref(t.Base)
	case *ast.ClassType:
		b.class(&e, t)
	default:
		e.Kind = fmt.Sprintf("%T", t)
	}
	return e
}

func (b builder) class(e *Entry, c *ast.ClassType) {
	e.Kind, e.Name, e.Native = "class", c.Name, c.Native
	if c.IsTemplate() {
		e.Kind = "template"
		for _, formal := range c.FormalArgs {
			e.Args = append(e.Args, b.ord(formal))
		}
	}
	if c.Template != nil {
		e.Template = b.ref(c.Template)
		for _, arg := range c.TemplateArgs {
			e.Args = append(e.Args, b.ord(arg))
		}
	}
	if c.Parent != nil {
		e.Parent = b.ref(c.Parent)
	}
	for _, f := range c.Fields {
		e.Fields = append(e.Fields, Field{f.Name, b.ord(f.Type)})
	}
	for _, m := range c.Methods {
		out := Method{
			Name:    m.Name,
			Index:   m.Index,
			Static:  m.Modifiers&ast.Static != 0,
			Virtual: m.Modifiers&ast.Virtual != 0,
			Return:  b.ord(m.ReturnType),
		}
		for _, arg := range m.FormalArgs {
			out.Args = append(out.Args, b.ord(arg.Type))
		}
		if c.Native {
			out.Bridge = BridgeDecl(m)
		}
		e.Methods = append(e.Methods, out)
	}
}

// Build lists every type of table in ordinal order.
func Build(pkg string, table *ast.TypeTable) *Manifest {
	b := builder{table}
	m := &Manifest{Package: pkg}
	for i, t := range table.Types() {
		m.Types = append(m.Types, b.entry(i, t))
	}
	return m
}

func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

func Unmarshal(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// NativeType renders t as the C type a runtime bridge uses for it.
func NativeType(t ast.Type) string {
	switch t := t.(type) {
	case *ast.VoidType, *ast.FormalTemplateArg:
		return "void"
	case *ast.IntegerType:
		if t.Signed {
			return fmt.Sprintf("int%d_t", t.Bits)
		}
		return fmt.Sprintf("uint%d_t", t.Bits)
	case *ast.BoolType:
		return "bool"
	case *ast.FloatingPointType:
		if t.Bits == 64 {
			return "double"
		}
		return "float"
	case *ast.StringType:
		return "const char*"
	case *ast.ClassType:
		if t.Native {
			return t.Name
		}
		return "Object"
	case *ast.EnumType:
		return t.Name
	case *ast.PtrType:
		base, _ := ast.Unqualify(t.Base)
		switch base.(type) {
		case *ast.VoidType, *ast.FormalTemplateArg, *ast.ArrayType:
			return "Object*"
		}
		return NativeType(base) + "*"
	case *ast.ArrayType:
		return componentType(t.Elem) + "*"
	case *ast.VectorType, *ast.MatrixType:
		return componentType(t) + "*"
	case *ast.QualifiedType:
		return NativeType(t.Base)
	}
	return "void"
}

func componentType(t ast.Type) string {
	switch t := t.(type) {
	case *ast.VectorType:
		return NativeType(t.Component)
	case *ast.MatrixType:
		return NativeType(t.Column.Component)
	}
	return NativeType(t)
}

// BridgeName is the symbol a runtime exports for a native method.
func BridgeName(m *ast.Method) string {
	name := m.Name
	if strings.HasPrefix(name, "~") {
		name = "Destroy"
	}
	if m.Class == nil {
		return name
	}
	return m.Class.Name + "_" + name
}

// BridgeDecl renders the C prototype of a native method.
func BridgeDecl(m *ast.Method) string {
	args := make([]string, len(m.FormalArgs))
	for i, arg := range m.FormalArgs {
		args[i] = NativeType(arg.Type) + " " + arg.Name
	}
	return fmt.Sprintf("%s %s(%s)", NativeType(m.ReturnType), BridgeName(m), strings.Join(args, ", "))
}

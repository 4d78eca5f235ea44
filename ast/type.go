package ast

import (
	"fmt"
	"strings"
)

// Type is implemented by every type the TypeTable hands out. Identity is
// pointer identity: the table returns one instance per structural shape.
type Type interface {
	String() string
	isType()
}

type IntegerType struct {
	Bits   int
	Signed bool
}

func (*IntegerType) isType() {}

func (t *IntegerType) String() string {
	name := map[int]string{8: "byte", 16: "short", 32: "int", 64: "long"}[t.Bits]
	if name == "" {
		name = fmt.Sprintf("int%d", t.Bits)
	}
	if !t.Signed {
		return "u" + name
	}
	return name
}

type FloatingPointType struct {
	Bits int
}

func (*FloatingPointType) isType() {}

func (t *FloatingPointType) String() string {
	switch t.Bits {
	case 16:
		return "half"
	case 32:
		return "float"
	case 64:
		return "double"
	}
	return fmt.Sprintf("float%d", t.Bits)
}

type BoolType struct{}

func (*BoolType) isType()        {}
func (*BoolType) String() string { return "bool" }

type VoidType struct{}

func (*VoidType) isType()        {}
func (*VoidType) String() string { return "void" }

// NullType is the type of the null literal.
type NullType struct{}

func (*NullType) isType()        {}
func (*NullType) String() string { return "null" }

// AutoType stands in for a declaration type that is inferred later.
type AutoType struct{}

func (*AutoType) isType()        {}
func (*AutoType) String() string { return "auto" }

type StringType struct{}

func (*StringType) isType()        {}
func (*StringType) String() string { return "string" }

type VectorType struct {
	Component Type
	Length    int
}

func (*VectorType) isType() {}

func (t *VectorType) String() string {
	return fmt.Sprintf("%s<%d>", t.Component, t.Length)
}

type MatrixType struct {
	Column  *VectorType
	Columns int
}

func (*MatrixType) isType() {}

func (t *MatrixType) String() string {
	return fmt.Sprintf("%s<%d>", t.Column, t.Columns)
}

// MemoryLayout selects the storage layout of an array.
type MemoryLayout int

const (
	LayoutDefault MemoryLayout = iota
	LayoutStorage
	LayoutUniform
)

// ArrayType is a fixed-length array, or an unsized one when NumElements is 0.
type ArrayType struct {
	Elem        Type
	NumElements int
	Layout      MemoryLayout
}

func (*ArrayType) isType() {}

func (t *ArrayType) String() string {
	if t.NumElements == 0 {
		return fmt.Sprintf("%s[]", t.Elem)
	}
	return fmt.Sprintf("%s[%d]", t.Elem, t.NumElements)
}

type PtrKind int

const (
	// StrongPtr owns its referent.
	StrongPtr PtrKind = iota
	// WeakPtr refers without ownership.
	WeakPtr
	// RawPtr is the address of a storage location, produced by address-taking expressions.
	RawPtr
)

type PtrType struct {
	Kind PtrKind
	Base Type
}

func (*PtrType) isType() {}

func (t *PtrType) String() string {
	return [...]string{"*", "^", "&"}[t.Kind] + t.Base.String()
}

// Qualifier is a set of access-capability bits.
type Qualifier uint32

const (
	Uniform Qualifier = 1 << iota
	Storage
	Vertex
	Index
	Sampleable
	Renderable
	ReadOnly
	WriteOnly
	Coherent
)

var qualifierNames = []struct {
	q    Qualifier
	name string
}{
	{Uniform, "uniform"},
	{Storage, "storage"},
	{Vertex, "vertex"},
	{Index, "index"},
	{Sampleable, "sampleable"},
	{Renderable, "renderable"},
	{ReadOnly, "readonly"},
	{WriteOnly, "writeonly"},
	{Coherent, "coherent"},
}

func (q Qualifier) String() string {
	var parts []string
	for _, n := range qualifierNames {
		if q&n.q != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " ")
}

type QualifiedType struct {
	Base       Type
	Qualifiers Qualifier
}

func (*QualifiedType) isType() {}

func (t *QualifiedType) String() string {
	return t.Qualifiers.String() + " " + t.Base.String()
}

type EnumValue struct {
	ID    string
	Value int
	Type  *EnumType
}

type EnumType struct {
	Name   string
	Values []*EnumValue
}

func (*EnumType) isType()          {}
func (t *EnumType) String() string { return t.Name }

func (t *EnumType) Append(id string, value int) *EnumValue {
	v := &EnumValue{ID: id, Value: value, Type: t}
	t.Values = append(t.Values, v)
	return v
}

func (t *EnumType) Find(id string) *EnumValue {
	for _, v := range t.Values {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// FormalTemplateArg is a placeholder that is only meaningful inside the
// body of a class template.
type FormalTemplateArg struct {
	Name string
}

func (*FormalTemplateArg) isType()          {}
func (t *FormalTemplateArg) String() string { return t.Name }

// UnresolvedScopedType names a nested type of a type that is not known yet,
// such as T::Element inside a template.
type UnresolvedScopedType struct {
	Base Type
	ID   string
}

func (*UnresolvedScopedType) isType() {}

func (t *UnresolvedScopedType) String() string {
	return t.Base.String() + "::" + t.ID
}

// Unqualify strips one qualification layer, returning the base and its bits.
func Unqualify(t Type) (Type, Qualifier) {
	if q, ok := t.(*QualifiedType); ok {
		return q.Base, q.Qualifiers
	}
	return t, 0
}

func IsReadable(t Type) bool {
	_, q := Unqualify(t)
	return q&WriteOnly == 0
}

func IsWritable(t Type) bool {
	_, q := Unqualify(t)
	return q&(ReadOnly|Uniform) == 0
}

// PtrBase returns the pointee of a pointer type, or nil.
func PtrBase(t Type) Type {
	if p, ok := t.(*PtrType); ok {
		return p.Base
	}
	return nil
}

// ContainsFormal reports whether a formal template argument (or an
// unresolved scoped type) appears anywhere in t's structure.
func ContainsFormal(t Type) bool {
	switch t := t.(type) {
	case nil:
		return false
	case *FormalTemplateArg, *UnresolvedScopedType:
		return true
	case *VectorType:
		return ContainsFormal(t.Component)
	case *MatrixType:
		return ContainsFormal(t.Column)
	case *ArrayType:
		return ContainsFormal(t.Elem)
	case *PtrType:
		return ContainsFormal(t.Base)
	case *QualifiedType:
		return ContainsFormal(t.Base)
	case *ClassType:
		if t.IsTemplate() {
			return true
		}
		for _, arg := range t.TemplateArgs {
			if ContainsFormal(arg) {
				return true
			}
		}
	}
	return false
}

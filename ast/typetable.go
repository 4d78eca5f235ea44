package ast

import (
	"github.com/pontaoski/toucan/errors"
	"github.com/pontaoski/toucan/source"
)

type intKey struct {
	bits   int
	signed bool
}

type vectorKey struct {
	component Type
	length    int
}

type matrixKey struct {
	column  *VectorType
	columns int
}

type arrayKey struct {
	elem   Type
	n      int
	layout MemoryLayout
}

type ptrKey struct {
	kind PtrKind
	base Type
}

type qualifiedKey struct {
	base       Type
	qualifiers Qualifier
}

type scopedKey struct {
	base Type
	id   string
}

// TypeTable is the single source of truth for types in a compilation unit.
// Structural constructors (Get*) return one instance per shape; nominal
// constructors (New*) always allocate. Every type is assigned an ordinal,
// its position in Types, when it is first created.
type TypeTable struct {
	types    []Type
	ordinals map[Type]int

	boolType   *BoolType
	voidType   *VoidType
	nullType   *NullType
	autoType   *AutoType
	stringType *StringType

	ints      map[intKey]*IntegerType
	floats    map[int]*FloatingPointType
	vectors   map[vectorKey]*VectorType
	matrices  map[matrixKey]*MatrixType
	arrays    map[arrayKey]*ArrayType
	ptrs      map[ptrKey]*PtrType
	qualified map[qualifiedKey]*QualifiedType
	formals   map[string]*FormalTemplateArg
	scoped    map[scopedKey]*UnresolvedScopedType
	instances map[*ClassType][]*ClassType

	natives NativeRegistry
}

func NewTypeTable() *TypeTable {
	return &TypeTable{
		ordinals:  make(map[Type]int),
		ints:      make(map[intKey]*IntegerType),
		floats:    make(map[int]*FloatingPointType),
		vectors:   make(map[vectorKey]*VectorType),
		matrices:  make(map[matrixKey]*MatrixType),
		arrays:    make(map[arrayKey]*ArrayType),
		ptrs:      make(map[ptrKey]*PtrType),
		qualified: make(map[qualifiedKey]*QualifiedType),
		formals:   make(map[string]*FormalTemplateArg),
		scoped:    make(map[scopedKey]*UnresolvedScopedType),
		instances: make(map[*ClassType][]*ClassType),
		natives:   NativeRegistry{classes: make(map[string]*ClassType)},
	}
}

func (t *TypeTable) register(typ Type) {
	t.ordinals[typ] = len(t.types)
	t.types = append(t.types, typ)
}

// Types returns every type in ordinal order.
func (t *TypeTable) Types() []Type {
	return t.types
}

func (t *TypeTable) Len() int {
	return len(t.types)
}

// Ordinal returns the stable position of typ in the table.
func (t *TypeTable) Ordinal(typ Type) (int, bool) {
	i, ok := t.ordinals[typ]
	return i, ok
}

func (t *TypeTable) Natives() *NativeRegistry {
	return &t.natives
}

func (t *TypeTable) GetInteger(bits int, signed bool) *IntegerType {
	key := intKey{bits, signed}
	if typ, ok := t.ints[key]; ok {
		return typ
	}
	typ := &IntegerType{Bits: bits, Signed: signed}
	t.ints[key] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) GetInt() *IntegerType  { return t.GetInteger(32, true) }
func (t *TypeTable) GetUInt() *IntegerType { return t.GetInteger(32, false) }

func (t *TypeTable) GetFloatingPoint(bits int) *FloatingPointType {
	if typ, ok := t.floats[bits]; ok {
		return typ
	}
	typ := &FloatingPointType{Bits: bits}
	t.floats[bits] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) GetFloat() *FloatingPointType  { return t.GetFloatingPoint(32) }
func (t *TypeTable) GetDouble() *FloatingPointType { return t.GetFloatingPoint(64) }

func (t *TypeTable) GetBool() *BoolType {
	if t.boolType == nil {
		t.boolType = &BoolType{}
		t.register(t.boolType)
	}
	return t.boolType
}

func (t *TypeTable) GetVoid() *VoidType {
	if t.voidType == nil {
		t.voidType = &VoidType{}
		t.register(t.voidType)
	}
	return t.voidType
}

func (t *TypeTable) GetNull() *NullType {
	if t.nullType == nil {
		t.nullType = &NullType{}
		t.register(t.nullType)
	}
	return t.nullType
}

func (t *TypeTable) GetAuto() *AutoType {
	if t.autoType == nil {
		t.autoType = &AutoType{}
		t.register(t.autoType)
	}
	return t.autoType
}

func (t *TypeTable) GetString() *StringType {
	if t.stringType == nil {
		t.stringType = &StringType{}
		t.register(t.stringType)
	}
	return t.stringType
}

func (t *TypeTable) GetVector(component Type, length int) *VectorType {
	key := vectorKey{component, length}
	if typ, ok := t.vectors[key]; ok {
		return typ
	}
	typ := &VectorType{Component: component, Length: length}
	t.vectors[key] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) GetMatrix(column *VectorType, columns int) *MatrixType {
	key := matrixKey{column, columns}
	if typ, ok := t.matrices[key]; ok {
		return typ
	}
	typ := &MatrixType{Column: column, Columns: columns}
	t.matrices[key] = typ
	t.register(typ)
	return typ
}

// GetArrayType returns the array of n elements; n == 0 means unsized.
func (t *TypeTable) GetArrayType(elem Type, n int, layout MemoryLayout) *ArrayType {
	key := arrayKey{elem, n, layout}
	if typ, ok := t.arrays[key]; ok {
		return typ
	}
	typ := &ArrayType{Elem: elem, NumElements: n, Layout: layout}
	t.arrays[key] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) getPtrType(kind PtrKind, base Type) (*PtrType, error) {
	switch base.(type) {
	case nil:
		return nil, errors.Errorf(source.Location{}, "pointer to nothing")
	case *NullType, *AutoType:
		return nil, errors.Errorf(source.Location{}, "\"%s\" is not a valid pointer base", base)
	}
	key := ptrKey{kind, base}
	if typ, ok := t.ptrs[key]; ok {
		return typ, nil
	}
	typ := &PtrType{Kind: kind, Base: base}
	t.ptrs[key] = typ
	t.register(typ)
	return typ, nil
}

func (t *TypeTable) GetStrongPtrType(base Type) (*PtrType, error) {
	return t.getPtrType(StrongPtr, base)
}

func (t *TypeTable) GetWeakPtrType(base Type) (*PtrType, error) {
	return t.getPtrType(WeakPtr, base)
}

func (t *TypeTable) GetRawPtrType(base Type) (*PtrType, error) {
	return t.getPtrType(RawPtr, base)
}

// GetPtrType returns a pointer of the given kind.
func (t *TypeTable) GetPtrType(kind PtrKind, base Type) (*PtrType, error) {
	return t.getPtrType(kind, base)
}

// GetQualifiedType returns base annotated with qualifiers. Qualifying an
// already qualified type merges the bits; no qualifiers returns base.
// Qualifiers always sit beneath pointer layers: qualifying a pointer yields
// a pointer of the same kind to the qualified pointee.
func (t *TypeTable) GetQualifiedType(base Type, qualifiers Qualifier) Type {
	if qualifiers == 0 {
		return base
	}
	if ptr, ok := base.(*PtrType); ok {
		typ, err := t.getPtrType(ptr.Kind, t.GetQualifiedType(ptr.Base, qualifiers))
		if err != nil {
			return base
		}
		return typ
	}
	if q, ok := base.(*QualifiedType); ok {
		base = q.Base
		qualifiers |= q.Qualifiers
	}
	key := qualifiedKey{base, qualifiers}
	if typ, ok := t.qualified[key]; ok {
		return typ
	}
	typ := &QualifiedType{Base: base, Qualifiers: qualifiers}
	t.qualified[key] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) GetFormalTemplateArg(name string) *FormalTemplateArg {
	if typ, ok := t.formals[name]; ok {
		return typ
	}
	typ := &FormalTemplateArg{Name: name}
	t.formals[name] = typ
	t.register(typ)
	return typ
}

func (t *TypeTable) GetUnresolvedScopedType(base Type, id string) *UnresolvedScopedType {
	key := scopedKey{base, id}
	if typ, ok := t.scoped[key]; ok {
		return typ
	}
	typ := &UnresolvedScopedType{Base: base, ID: id}
	t.scoped[key] = typ
	t.register(typ)
	return typ
}

// NewClass allocates a distinct class. A class bearing a compiler-known
// native name is marked native and recorded in the native registry.
func (t *TypeTable) NewClass(name string) *ClassType {
	c := &ClassType{Name: name}
	t.register(c)
	t.natives.define(c)
	return c
}

func (t *TypeTable) NewClassTemplate(name string, formals []*FormalTemplateArg) *ClassType {
	c := &ClassType{Name: name, FormalArgs: formals}
	t.register(c)
	t.natives.define(c)
	return c
}

func (t *TypeTable) NewEnum(name string) *EnumType {
	e := &EnumType{Name: name}
	t.register(e)
	return e
}

// GetClassTemplateInstance returns the instance of tmpl for args, creating
// it on first request. The instance is empty until a monomorphization pass
// realizes it.
func (t *TypeTable) GetClassTemplateInstance(tmpl *ClassType, args []Type) (*ClassType, error) {
	if !tmpl.IsTemplate() {
		return nil, errors.Errorf(source.Location{}, "\"%s\" is not a class template", tmpl)
	}
	if len(args) != len(tmpl.FormalArgs) {
		return nil, errors.Errorf(source.Location{}, "class template \"%s\" takes %d arguments, got %d", tmpl, len(tmpl.FormalArgs), len(args))
	}
	for _, instance := range t.instances[tmpl] {
		if sameTypes(instance.TemplateArgs, args) {
			return instance, nil
		}
	}
	instance := &ClassType{
		Name:         tmpl.Name,
		Template:     tmpl,
		TemplateArgs: append([]Type(nil), args...),
		Native:       tmpl.Native,
	}
	t.instances[tmpl] = append(t.instances[tmpl], instance)
	t.register(instance)
	return instance, nil
}

// Instances returns every instance of tmpl in creation order.
func (t *TypeTable) Instances(tmpl *ClassType) []*ClassType {
	return t.instances[tmpl]
}

// PendingInstances returns the fully concrete instances that have been
// requested but not realized yet, in ordinal order.
func (t *TypeTable) PendingInstances() []*ClassType {
	var out []*ClassType
	for _, typ := range t.types {
		c, ok := typ.(*ClassType)
		if !ok || c.Template == nil || c.Realized || c.Native {
			continue
		}
		if !ContainsFormal(c) {
			out = append(out, c)
		}
	}
	return out
}

func sameTypes(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

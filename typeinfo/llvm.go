package typeinfo

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/pontaoski/toucan/ast"
)

// Embed stores the manifest in m as an immutable, NUL-terminated global
// named Symbol.
func Embed(m *ir.Module, manifest *Manifest) (*ir.Global, error) {
	data, err := manifest.Marshal()
	if err != nil {
		return nil, err
	}
	g := m.NewGlobalDef(Symbol, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
	return g, nil
}

// Bridge maps toucan types onto the LLVM types of native bridge functions.
type Bridge struct {
	Module *ir.Module

	// ControlBlock holds the reference counts of a heap object.
	ControlBlock types.Type
	// Object is the handle through which non-native objects cross the bridge.
	Object types.Type

	classes map[*ast.ClassType]types.Type
}

func NewBridge(m *ir.Module) *Bridge {
	b := &Bridge{
		Module:  m,
		classes: make(map[*ast.ClassType]types.Type),
	}
	b.ControlBlock = m.NewTypeDef("ControlBlock", types.NewStruct(types.I32, types.I32))
	b.Object = m.NewTypeDef("Object", types.NewStruct(types.NewPointer(b.ControlBlock), types.I8Ptr))
	return b
}

func (b *Bridge) objectPtr() types.Type {
	return types.NewPointer(b.Object)
}

func (b *Bridge) nativeClass(c *ast.ClassType) types.Type {
	if t, ok := b.classes[c]; ok {
		return t
	}
	t := b.Module.NewTypeDef(c.Name, &types.StructType{Opaque: true})
	b.classes[c] = t
	return t
}

func (b *Bridge) component(t ast.Type) types.Type {
	switch t := t.(type) {
	case *ast.VectorType:
		return b.Type(t.Component)
	case *ast.MatrixType:
		return b.Type(t.Column.Component)
	}
	return b.Type(t)
}

// Type returns the LLVM type for t under the same rules as NativeType.
func (b *Bridge) Type(t ast.Type) types.Type {
	switch t := t.(type) {
	case *ast.IntegerType:
		return types.NewInt(uint64(t.Bits))
	case *ast.BoolType:
		return types.I1
	case *ast.FloatingPointType:
		switch t.Bits {
		case 16:
			return types.Half
		case 64:
			return types.Double
		}
		return types.Float
	case *ast.StringType:
		return types.I8Ptr
	case *ast.EnumType:
		return types.I32
	case *ast.ClassType:
		if t.Native {
			return b.nativeClass(t)
		}
		return b.Object
	case *ast.PtrType:
		base, _ := ast.Unqualify(t.Base)
		switch base.(type) {
		case *ast.VoidType, *ast.FormalTemplateArg, *ast.ArrayType:
			return b.objectPtr()
		}
		return types.NewPointer(b.Type(base))
	case *ast.ArrayType:
		return types.NewPointer(b.component(t.Elem))
	case *ast.VectorType, *ast.MatrixType:
		return types.NewPointer(b.component(t))
	case *ast.QualifiedType:
		return b.Type(t.Base)
	}
	return types.Void
}

func (b *Bridge) param(t ast.Type) types.Type {
	if lt := b.Type(t); lt != types.Void {
		return lt
	}
	return b.objectPtr()
}

// Declare adds an external declaration for a native method.
func (b *Bridge) Declare(m *ast.Method) *ir.Func {
	params := make([]*ir.Param, len(m.FormalArgs))
	for i, arg := range m.FormalArgs {
		params[i] = ir.NewParam(arg.Name, b.param(arg.Type))
	}
	return b.Module.NewFunc(BridgeName(m), b.Type(m.ReturnType), params...)
}

// DeclareNatives declares a bridge function for every method of every
// native class registered in table.
func DeclareNatives(m *ir.Module, table *ast.TypeTable) map[string]*ir.Func {
	b := NewBridge(m)
	funcs := make(map[string]*ir.Func)
	for _, class := range table.Natives().Defined() {
		for _, method := range class.Methods {
			f := b.Declare(method)
			funcs[f.Name()] = f
		}
	}
	return funcs
}

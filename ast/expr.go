package ast

func rawPtr(types *TypeTable, base Type) Type {
	if base == nil {
		return nil
	}
	p, err := types.GetRawPtrType(base)
	if err != nil {
		return nil
	}
	return p
}

func ptrTo(types *TypeTable, kind PtrKind, base Type) Type {
	if base == nil {
		return nil
	}
	p, err := types.GetPtrType(kind, base)
	if err != nil {
		return nil
	}
	return p
}

// subobjectAddress types the address of a part of *container, carrying the
// container's qualifiers onto the part.
func subobjectAddress(types *TypeTable, container Type, part func(Type) Type) Type {
	base := PtrBase(container)
	if base == nil {
		return nil
	}
	unqualified, q := Unqualify(base)
	elem := part(unqualified)
	if elem == nil {
		return nil
	}
	return rawPtr(types, types.GetQualifiedType(elem, q))
}

func loadedType(ptr Type) Type {
	base := PtrBase(ptr)
	if base == nil {
		return nil
	}
	t, _ := Unqualify(base)
	return t
}

func typeOf(types *TypeTable, e Expr) Type {
	if e == nil {
		return nil
	}
	return e.Type(types)
}

// Data is an opaque constant blob, such as embedded file contents.
type Data struct {
	exprBase
	Typ   Type
	Bytes []byte
}

func (n *Data) Type(*TypeTable) Type { return n.Typ }

type IntConstant struct {
	exprBase
	Value int32
	Bits  int
}

func (n *IntConstant) Type(types *TypeTable) Type { return types.GetInteger(n.Bits, true) }
func (*IntConstant) IsIntConstant() bool          { return true }

type UIntConstant struct {
	exprBase
	Value uint32
	Bits  int
}

func (n *UIntConstant) Type(types *TypeTable) Type { return types.GetInteger(n.Bits, false) }

type FloatConstant struct {
	exprBase
	Value float32
}

func (n *FloatConstant) Type(types *TypeTable) Type { return types.GetFloat() }

type DoubleConstant struct {
	exprBase
	Value float64
}

func (n *DoubleConstant) Type(types *TypeTable) Type { return types.GetDouble() }

type BoolConstant struct {
	exprBase
	Value bool
}

func (n *BoolConstant) Type(types *TypeTable) Type { return types.GetBool() }

type EnumConstant struct {
	exprBase
	Value *EnumValue
}

func (n *EnumConstant) Type(*TypeTable) Type { return n.Value.Type }

type NullConstant struct {
	exprBase
}

func (n *NullConstant) Type(types *TypeTable) Type { return types.GetNull() }

type CastExpr struct {
	exprBase
	Typ  Type
	Expr Expr
}

func (n *CastExpr) Type(*TypeTable) Type { return n.Typ }

// Arg is a possibly named argument of an unresolved call.
type Arg struct {
	nodeBase
	ID   string
	Expr Expr
}

type ArgList struct {
	nodeBase
	Args []*Arg
}

func (n *ArgList) Append(arg *Arg) { n.Args = append(n.Args, arg) }

// IsNamed reports whether any argument is passed by name.
func (n *ArgList) IsNamed() bool {
	for _, arg := range n.Args {
		if arg.ID != "" {
			return true
		}
	}
	return false
}

type ExprList struct {
	nodeBase
	Exprs []Expr
}

func (n *ExprList) Append(e Expr) { n.Exprs = append(n.Exprs, e) }

type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpLT
	OpLE
	OpEQ
	OpGE
	OpGT
	OpNE
	OpLogicalAnd
	OpLogicalOr
	OpBitwiseAnd
	OpBitwiseXor
	OpBitwiseOr
)

func (op BinOp) String() string {
	return [...]string{
		"ADD", "SUB", "MUL", "DIV", "MOD",
		"LT", "LE", "EQ", "GE", "GT", "NE",
		"LOGICAL_AND", "LOGICAL_OR",
		"BITWISE_AND", "BITWISE_XOR", "BITWISE_OR",
	}[op]
}

type BinOpExpr struct {
	exprBase
	Op  BinOp
	LHS Expr
	RHS Expr
}

func (n *BinOpExpr) IsRelOp() bool {
	return n.Op >= OpLT && n.Op <= OpNE
}

func (n *BinOpExpr) Type(types *TypeTable) Type {
	lhs := typeOf(types, n.LHS)
	rhs := typeOf(types, n.RHS)
	switch {
	case n.Op == OpLogicalAnd || n.Op == OpLogicalOr:
		return types.GetBool()
	case n.IsRelOp():
		if v, ok := lhs.(*VectorType); ok {
			return types.GetVector(types.GetBool(), v.Length)
		}
		return types.GetBool()
	}
	if m, ok := lhs.(*MatrixType); ok && n.Op == OpMul {
		if _, ok := rhs.(*VectorType); ok {
			return m.Column
		}
	}
	switch rhs.(type) {
	case *VectorType, *MatrixType:
		switch lhs.(type) {
		case *VectorType, *MatrixType:
		default:
			return rhs
		}
	}
	return lhs
}

type UnaryOp int

const (
	OpMinus UnaryOp = iota
	OpNegate
)

type UnaryOpExpr struct {
	exprBase
	Op  UnaryOp
	RHS Expr
}

func (n *UnaryOpExpr) Type(types *TypeTable) Type {
	if n.Op == OpNegate {
		return types.GetBool()
	}
	return typeOf(types, n.RHS)
}

type Initializer struct {
	exprBase
	Typ  Type
	Args *ExprList
}

func (n *Initializer) Type(*TypeTable) Type { return n.Typ }

type ArrayAccess struct {
	exprBase
	Expr  Expr
	Index Expr
}

func (*ArrayAccess) IsArrayAccess() bool { return true }

func (n *ArrayAccess) Type(types *TypeTable) Type {
	return subobjectAddress(types, typeOf(types, n.Expr), func(t Type) Type {
		switch t := t.(type) {
		case *ArrayType:
			return t.Elem
		case *VectorType:
			return t.Component
		case *MatrixType:
			return t.Column
		}
		return nil
	})
}

type FieldAccess struct {
	exprBase
	Expr  Expr
	Field *Field
}

func (*FieldAccess) IsFieldAccess() bool { return true }

func (n *FieldAccess) Type(types *TypeTable) Type {
	return subobjectAddress(types, typeOf(types, n.Expr), func(Type) Type {
		return n.Field.Type
	})
}

type MethodCall struct {
	exprBase
	Method *Method
	Args   *ExprList
}

func (n *MethodCall) Type(*TypeTable) Type { return n.Method.ReturnType }

type LoadExpr struct {
	exprBase
	Expr Expr
}

func (n *LoadExpr) Type(types *TypeTable) Type { return loadedType(typeOf(types, n.Expr)) }

// VarExpr denotes the storage of a variable; its type is the address of it.
type VarExpr struct {
	exprBase
	Var *Var
}

func (*VarExpr) IsVarExpr() bool { return true }

func (n *VarExpr) Type(types *TypeTable) Type { return rawPtr(types, n.Var.Type) }

// TempVarExpr is anonymous storage, optionally initialized.
type TempVarExpr struct {
	exprBase
	Typ  Type
	Init Expr
}

func (n *TempVarExpr) Type(types *TypeTable) Type { return rawPtr(types, n.Typ) }

type SmartToRawPtr struct {
	exprBase
	Expr Expr
}

func (n *SmartToRawPtr) Type(types *TypeTable) Type {
	return rawPtr(types, PtrBase(typeOf(types, n.Expr)))
}

type RawToWeakPtr struct {
	exprBase
	Expr Expr
}

func (n *RawToWeakPtr) Type(types *TypeTable) Type {
	return ptrTo(types, WeakPtr, PtrBase(typeOf(types, n.Expr)))
}

type ExtractElementExpr struct {
	exprBase
	Expr  Expr
	Index int
}

func (n *ExtractElementExpr) Type(types *TypeTable) Type {
	switch t := typeOf(types, n.Expr).(type) {
	case *VectorType:
		return t.Component
	case *MatrixType:
		return t.Column
	}
	return nil
}

type InsertElementExpr struct {
	exprBase
	Expr       Expr
	NewElement Expr
	Index      int
}

func (n *InsertElementExpr) Type(types *TypeTable) Type { return typeOf(types, n.Expr) }

type LengthExpr struct {
	exprBase
	Expr Expr
}

func (n *LengthExpr) Type(types *TypeTable) Type { return types.GetInt() }

type IncDecOp int

const (
	OpInc IncDecOp = iota
	OpDec
)

type IncDecExpr struct {
	exprBase
	Op              IncDecOp
	Expr            Expr
	ReturnOrigValue bool
}

func (n *IncDecExpr) Type(types *TypeTable) Type { return loadedType(typeOf(types, n.Expr)) }

type NewArrayExpr struct {
	exprBase
	ElementType Type
	Size        Expr
}

func (n *NewArrayExpr) Type(types *TypeTable) Type {
	if n.ElementType == nil {
		return nil
	}
	return ptrTo(types, StrongPtr, types.GetArrayType(n.ElementType, 0, LayoutDefault))
}

type NewExpr struct {
	exprBase
	Typ Type
	// Length sizes an unsized array that is the class's last field.
	Length      Expr
	Constructor *Method
	Args        *ExprList
}

func (n *NewExpr) Type(types *TypeTable) Type { return ptrTo(types, StrongPtr, n.Typ) }

// ExprWithStmt evaluates Stmt for its side effects, sequenced around Expr:
// the statement runs after the expression is evaluated, and the whole
// evaluates to Expr's value.
type ExprWithStmt struct {
	exprBase
	Expr Expr
	Stmt Stmt
}

func (n *ExprWithStmt) Type(types *TypeTable) Type {
	if n.Expr == nil {
		return types.GetVoid()
	}
	return n.Expr.Type(types)
}

type UnresolvedInitializer struct {
	exprBase
	Typ         Type
	Args        *ArgList
	Constructor bool
}

func (n *UnresolvedInitializer) Type(*TypeTable) Type { return n.Typ }

type UnresolvedListExpr struct {
	exprBase
	Args *ArgList
}

func (*UnresolvedListExpr) IsUnresolvedListExpr() bool { return true }
func (*UnresolvedListExpr) Type(*TypeTable) Type       { return nil }

type UnresolvedDot struct {
	exprBase
	Expr Expr
	ID   string
}

func (*UnresolvedDot) Type(*TypeTable) Type { return nil }

type UnresolvedIdentifier struct {
	exprBase
	ID string
}

func (*UnresolvedIdentifier) Type(*TypeTable) Type { return nil }

type UnresolvedMethodCall struct {
	exprBase
	Expr Expr
	ID   string
	Args *ArgList
}

func (*UnresolvedMethodCall) Type(*TypeTable) Type { return nil }

type UnresolvedStaticMethodCall struct {
	exprBase
	Class *ClassType
	ID    string
	Args  *ArgList
}

func (*UnresolvedStaticMethodCall) Type(*TypeTable) Type { return nil }

type UnresolvedSwizzleExpr struct {
	exprBase
	Expr  Expr
	Index int
}

func (*UnresolvedSwizzleExpr) IsUnresolvedSwizzleExpr() bool { return true }
func (*UnresolvedSwizzleExpr) Type(*TypeTable) Type          { return nil }

type UnresolvedNewExpr struct {
	exprBase
	Typ    Type
	Length Expr
	Args   *ArgList
}

func (n *UnresolvedNewExpr) Type(types *TypeTable) Type { return ptrTo(types, StrongPtr, n.Typ) }

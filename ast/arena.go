package ast

import "github.com/pontaoski/toucan/source"

// Arena owns every node of one compilation unit or pass output. Nodes are
// never released individually; they may reference each other freely,
// including in cycles, and are dropped together by Release.
//
// Nodes are stamped with the arena's current location when created; use
// Enter to set it.
type Arena struct {
	source.Tracker
	nodes []Node
}

func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) add(n Node) {
	n.setID(NodeID(len(a.nodes)))
	n.SetLocation(a.Current())
	a.nodes = append(a.nodes, n)
}

// Node returns the node with the given handle, or nil.
func (a *Arena) Node(id NodeID) Node {
	if id < 0 || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

func (a *Arena) Len() int {
	return len(a.nodes)
}

// Release drops every node at once.
func (a *Arena) Release() {
	a.nodes = nil
}

func (a *Arena) NewData(t Type, bytes []byte) *Data {
	n := &Data{Typ: t, Bytes: bytes}
	a.add(n)
	return n
}

func (a *Arena) NewIntConstant(value int32, bits int) *IntConstant {
	n := &IntConstant{Value: value, Bits: bits}
	a.add(n)
	return n
}

func (a *Arena) NewUIntConstant(value uint32, bits int) *UIntConstant {
	n := &UIntConstant{Value: value, Bits: bits}
	a.add(n)
	return n
}

func (a *Arena) NewFloatConstant(value float32) *FloatConstant {
	n := &FloatConstant{Value: value}
	a.add(n)
	return n
}

func (a *Arena) NewDoubleConstant(value float64) *DoubleConstant {
	n := &DoubleConstant{Value: value}
	a.add(n)
	return n
}

func (a *Arena) NewBoolConstant(value bool) *BoolConstant {
	n := &BoolConstant{Value: value}
	a.add(n)
	return n
}

func (a *Arena) NewEnumConstant(value *EnumValue) *EnumConstant {
	n := &EnumConstant{Value: value}
	a.add(n)
	return n
}

func (a *Arena) NewNullConstant() *NullConstant {
	n := &NullConstant{}
	a.add(n)
	return n
}

func (a *Arena) NewCastExpr(t Type, e Expr) *CastExpr {
	n := &CastExpr{Typ: t, Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewArg(id string, e Expr) *Arg {
	n := &Arg{ID: id, Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewArgList(args ...*Arg) *ArgList {
	n := &ArgList{Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewExprList(exprs ...Expr) *ExprList {
	n := &ExprList{Exprs: exprs}
	a.add(n)
	return n
}

func (a *Arena) NewBinOpExpr(op BinOp, lhs, rhs Expr) *BinOpExpr {
	n := &BinOpExpr{Op: op, LHS: lhs, RHS: rhs}
	a.add(n)
	return n
}

func (a *Arena) NewUnaryOpExpr(op UnaryOp, rhs Expr) *UnaryOpExpr {
	n := &UnaryOpExpr{Op: op, RHS: rhs}
	a.add(n)
	return n
}

func (a *Arena) NewInitializer(t Type, args *ExprList) *Initializer {
	n := &Initializer{Typ: t, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewArrayAccess(e, index Expr) *ArrayAccess {
	n := &ArrayAccess{Expr: e, Index: index}
	a.add(n)
	return n
}

func (a *Arena) NewFieldAccess(e Expr, field *Field) *FieldAccess {
	n := &FieldAccess{Expr: e, Field: field}
	a.add(n)
	return n
}

func (a *Arena) NewMethodCall(method *Method, args *ExprList) *MethodCall {
	n := &MethodCall{Method: method, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewLoadExpr(e Expr) *LoadExpr {
	n := &LoadExpr{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewVarExpr(v *Var) *VarExpr {
	n := &VarExpr{Var: v}
	a.add(n)
	return n
}

func (a *Arena) NewTempVarExpr(t Type, init Expr) *TempVarExpr {
	n := &TempVarExpr{Typ: t, Init: init}
	a.add(n)
	return n
}

func (a *Arena) NewSmartToRawPtr(e Expr) *SmartToRawPtr {
	n := &SmartToRawPtr{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewRawToWeakPtr(e Expr) *RawToWeakPtr {
	n := &RawToWeakPtr{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewExtractElementExpr(e Expr, index int) *ExtractElementExpr {
	n := &ExtractElementExpr{Expr: e, Index: index}
	a.add(n)
	return n
}

func (a *Arena) NewInsertElementExpr(e, newElement Expr, index int) *InsertElementExpr {
	n := &InsertElementExpr{Expr: e, NewElement: newElement, Index: index}
	a.add(n)
	return n
}

func (a *Arena) NewLengthExpr(e Expr) *LengthExpr {
	n := &LengthExpr{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewIncDecExpr(op IncDecOp, e Expr, returnOrigValue bool) *IncDecExpr {
	n := &IncDecExpr{Op: op, Expr: e, ReturnOrigValue: returnOrigValue}
	a.add(n)
	return n
}

func (a *Arena) NewNewArrayExpr(elementType Type, size Expr) *NewArrayExpr {
	n := &NewArrayExpr{ElementType: elementType, Size: size}
	a.add(n)
	return n
}

func (a *Arena) NewNewExpr(t Type, length Expr, constructor *Method, args *ExprList) *NewExpr {
	n := &NewExpr{Typ: t, Length: length, Constructor: constructor, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewExprWithStmt(e Expr, s Stmt) *ExprWithStmt {
	n := &ExprWithStmt{Expr: e, Stmt: s}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedInitializer(t Type, args *ArgList, constructor bool) *UnresolvedInitializer {
	n := &UnresolvedInitializer{Typ: t, Args: args, Constructor: constructor}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedListExpr(args *ArgList) *UnresolvedListExpr {
	n := &UnresolvedListExpr{Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedDot(e Expr, id string) *UnresolvedDot {
	n := &UnresolvedDot{Expr: e, ID: id}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedIdentifier(id string) *UnresolvedIdentifier {
	n := &UnresolvedIdentifier{ID: id}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedMethodCall(e Expr, id string, args *ArgList) *UnresolvedMethodCall {
	n := &UnresolvedMethodCall{Expr: e, ID: id, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedStaticMethodCall(class *ClassType, id string, args *ArgList) *UnresolvedStaticMethodCall {
	n := &UnresolvedStaticMethodCall{Class: class, ID: id, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedSwizzleExpr(e Expr, index int) *UnresolvedSwizzleExpr {
	n := &UnresolvedSwizzleExpr{Expr: e, Index: index}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedNewExpr(t Type, length Expr, args *ArgList) *UnresolvedNewExpr {
	n := &UnresolvedNewExpr{Typ: t, Length: length, Args: args}
	a.add(n)
	return n
}

func (a *Arena) NewStmts(stmts ...Stmt) *Stmts {
	n := &Stmts{List: stmts}
	a.add(n)
	return n
}

func (a *Arena) NewExprStmt(e Expr) *ExprStmt {
	n := &ExprStmt{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewStoreStmt(lhs, rhs Expr) *StoreStmt {
	n := &StoreStmt{LHS: lhs, RHS: rhs}
	a.add(n)
	return n
}

func (a *Arena) NewDestroyStmt(e Expr) *DestroyStmt {
	n := &DestroyStmt{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewZeroInitStmt(lhs Expr) *ZeroInitStmt {
	n := &ZeroInitStmt{LHS: lhs}
	a.add(n)
	return n
}

func (a *Arena) NewVarDeclaration(id string, t Type, init Expr) *VarDeclaration {
	n := &VarDeclaration{ID: id, Typ: t, Init: init}
	a.add(n)
	return n
}

func (a *Arena) NewIfStmt(cond Expr, then, els Stmt) *IfStmt {
	n := &IfStmt{Cond: cond, Then: then, Else: els}
	a.add(n)
	return n
}

func (a *Arena) NewWhileStmt(cond Expr, body Stmt) *WhileStmt {
	n := &WhileStmt{Cond: cond, Body: body}
	a.add(n)
	return n
}

func (a *Arena) NewDoStmt(body Stmt, cond Expr) *DoStmt {
	n := &DoStmt{Body: body, Cond: cond}
	a.add(n)
	return n
}

func (a *Arena) NewForStmt(init Stmt, cond Expr, loop, body Stmt) *ForStmt {
	n := &ForStmt{Init: init, Cond: cond, Loop: loop, Body: body}
	a.add(n)
	return n
}

func (a *Arena) NewReturnStmt(e Expr) *ReturnStmt {
	n := &ReturnStmt{Expr: e}
	a.add(n)
	return n
}

func (a *Arena) NewUnresolvedClassDefinition(scope *Scope) *UnresolvedClassDefinition {
	n := &UnresolvedClassDefinition{Scope: scope}
	a.add(n)
	return n
}

package ast

import (
	"github.com/pontaoski/toucan/errors"
)

// TypeResolver maps a type of the input tree to the type used in the copy.
type TypeResolver interface {
	ResolveType(t Type) Type
}

// CopyVisitor produces a structural copy of a tree in a destination arena.
// Passes embed it, set Self to themselves and override only the kinds they
// change; every other kind reaches Default and is copied with its children
// resolved through Self.
//
// Input nodes are never modified.
type CopyVisitor struct {
	Nodes *Arena
	Types *TypeTable
	// Self receives dispatch for children. Nil means the CopyVisitor itself.
	Self Visitor
	// Resolver, if set, rewrites every type carried by a copied node.
	Resolver TypeResolver

	Vars    map[*Var]*Var
	Fields  map[*Field]*Field
	Methods map[*Method]*Method

	// MaxDepth bounds the nesting of Resolve calls; zero means unbounded.
	MaxDepth int
	depth    int
}

func NewCopyVisitor(nodes *Arena, types *TypeTable) *CopyVisitor {
	return &CopyVisitor{
		Nodes:   nodes,
		Types:   types,
		Vars:    make(map[*Var]*Var),
		Fields:  make(map[*Field]*Field),
		Methods: make(map[*Method]*Method),
	}
}

func (c *CopyVisitor) self() Visitor {
	if c.Self != nil {
		return c.Self
	}
	return c
}

// Resolve dispatches n to Self and returns the produced node. Nodes created
// meanwhile are stamped with n's location.
func (c *CopyVisitor) Resolve(n Node) Node {
	if n == nil {
		return nil
	}
	c.depth++
	defer func() { c.depth-- }()
	if c.MaxDepth > 0 && c.depth > c.MaxDepth {
		errors.Raise(errors.DepthExceeded, n.Location(), "tree is nested deeper than %d", c.MaxDepth)
	}
	restore := c.Nodes.Enter(n.Location())
	defer restore()
	return n.Accept(c.self()).Node()
}

func (c *CopyVisitor) ResolveExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	out := c.Resolve(e)
	if out == nil {
		return nil
	}
	expr, ok := out.(Expr)
	if !ok {
		errors.Raise(errors.UnhandledNode, e.Location(), "expression resolved to non-expression %T", out)
	}
	return expr
}

func (c *CopyVisitor) ResolveStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}
	out := c.Resolve(s)
	if out == nil {
		return nil
	}
	stmt, ok := out.(Stmt)
	if !ok {
		errors.Raise(errors.UnhandledNode, s.Location(), "statement resolved to non-statement %T", out)
	}
	return stmt
}

func (c *CopyVisitor) ResolveStmts(s *Stmts) *Stmts {
	if s == nil {
		return nil
	}
	out, _ := c.ResolveStmt(s).(*Stmts)
	return out
}

func (c *CopyVisitor) ResolveExprList(l *ExprList) *ExprList {
	if l == nil {
		return nil
	}
	out, _ := c.Resolve(l).(*ExprList)
	return out
}

func (c *CopyVisitor) ResolveArgList(l *ArgList) *ArgList {
	if l == nil {
		return nil
	}
	out, _ := c.Resolve(l).(*ArgList)
	return out
}

func (c *CopyVisitor) MapType(t Type) Type {
	if t == nil || c.Resolver == nil {
		return t
	}
	return c.Resolver.ResolveType(t)
}

func (c *CopyVisitor) MapVar(v *Var) *Var {
	if mapped, ok := c.Vars[v]; ok {
		return mapped
	}
	return v
}

func (c *CopyVisitor) MapField(f *Field) *Field {
	if mapped, ok := c.Fields[f]; ok {
		return mapped
	}
	return f
}

func (c *CopyVisitor) MapMethod(m *Method) *Method {
	if mapped, ok := c.Methods[m]; ok {
		return mapped
	}
	return m
}

func (c *CopyVisitor) mapClass(class *ClassType) *ClassType {
	if class == nil {
		return nil
	}
	if mapped, ok := c.MapType(class).(*ClassType); ok {
		return mapped
	}
	return class
}

// Default copies n, resolving every child.
func (c *CopyVisitor) Default(n Node) Result {
	a := c.Nodes
	switch n := n.(type) {
	case *Data:
		return NodeResult(a.NewData(c.MapType(n.Typ), n.Bytes))
	case *IntConstant:
		return NodeResult(a.NewIntConstant(n.Value, n.Bits))
	case *UIntConstant:
		return NodeResult(a.NewUIntConstant(n.Value, n.Bits))
	case *FloatConstant:
		return NodeResult(a.NewFloatConstant(n.Value))
	case *DoubleConstant:
		return NodeResult(a.NewDoubleConstant(n.Value))
	case *BoolConstant:
		return NodeResult(a.NewBoolConstant(n.Value))
	case *EnumConstant:
		return NodeResult(a.NewEnumConstant(n.Value))
	case *NullConstant:
		return NodeResult(a.NewNullConstant())
	case *CastExpr:
		return NodeResult(a.NewCastExpr(c.MapType(n.Typ), c.ResolveExpr(n.Expr)))
	case *Arg:
		return NodeResult(a.NewArg(n.ID, c.ResolveExpr(n.Expr)))
	case *ArgList:
		out := a.NewArgList()
		for _, arg := range n.Args {
			if arg == nil {
				continue
			}
			if resolved, ok := c.Resolve(arg).(*Arg); ok {
				out.Append(resolved)
			}
		}
		return NodeResult(out)
	case *ExprList:
		out := a.NewExprList()
		for _, e := range n.Exprs {
			if resolved := c.ResolveExpr(e); resolved != nil {
				out.Append(resolved)
			}
		}
		return NodeResult(out)
	case *BinOpExpr:
		return NodeResult(a.NewBinOpExpr(n.Op, c.ResolveExpr(n.LHS), c.ResolveExpr(n.RHS)))
	case *UnaryOpExpr:
		return NodeResult(a.NewUnaryOpExpr(n.Op, c.ResolveExpr(n.RHS)))
	case *Initializer:
		return NodeResult(a.NewInitializer(c.MapType(n.Typ), c.ResolveExprList(n.Args)))
	case *ArrayAccess:
		return NodeResult(a.NewArrayAccess(c.ResolveExpr(n.Expr), c.ResolveExpr(n.Index)))
	case *FieldAccess:
		return NodeResult(a.NewFieldAccess(c.ResolveExpr(n.Expr), c.MapField(n.Field)))
	case *MethodCall:
		return NodeResult(a.NewMethodCall(c.MapMethod(n.Method), c.ResolveExprList(n.Args)))
	case *LoadExpr:
		return NodeResult(a.NewLoadExpr(c.ResolveExpr(n.Expr)))
	case *VarExpr:
		return NodeResult(a.NewVarExpr(c.MapVar(n.Var)))
	case *TempVarExpr:
		return NodeResult(a.NewTempVarExpr(c.MapType(n.Typ), c.ResolveExpr(n.Init)))
	case *SmartToRawPtr:
		return NodeResult(a.NewSmartToRawPtr(c.ResolveExpr(n.Expr)))
	case *RawToWeakPtr:
		return NodeResult(a.NewRawToWeakPtr(c.ResolveExpr(n.Expr)))
	case *ExtractElementExpr:
		return NodeResult(a.NewExtractElementExpr(c.ResolveExpr(n.Expr), n.Index))
	case *InsertElementExpr:
		return NodeResult(a.NewInsertElementExpr(c.ResolveExpr(n.Expr), c.ResolveExpr(n.NewElement), n.Index))
	case *LengthExpr:
		return NodeResult(a.NewLengthExpr(c.ResolveExpr(n.Expr)))
	case *IncDecExpr:
		return NodeResult(a.NewIncDecExpr(n.Op, c.ResolveExpr(n.Expr), n.ReturnOrigValue))
	case *NewArrayExpr:
		return NodeResult(a.NewNewArrayExpr(c.MapType(n.ElementType), c.ResolveExpr(n.Size)))
	case *NewExpr:
		var ctor *Method
		if n.Constructor != nil {
			ctor = c.MapMethod(n.Constructor)
		}
		return NodeResult(a.NewNewExpr(c.MapType(n.Typ), c.ResolveExpr(n.Length), ctor, c.ResolveExprList(n.Args)))
	case *ExprWithStmt:
		return NodeResult(a.NewExprWithStmt(c.ResolveExpr(n.Expr), c.ResolveStmt(n.Stmt)))
	case *UnresolvedInitializer:
		return NodeResult(a.NewUnresolvedInitializer(c.MapType(n.Typ), c.ResolveArgList(n.Args), n.Constructor))
	case *UnresolvedListExpr:
		return NodeResult(a.NewUnresolvedListExpr(c.ResolveArgList(n.Args)))
	case *UnresolvedDot:
		return NodeResult(a.NewUnresolvedDot(c.ResolveExpr(n.Expr), n.ID))
	case *UnresolvedIdentifier:
		return NodeResult(a.NewUnresolvedIdentifier(n.ID))
	case *UnresolvedMethodCall:
		return NodeResult(a.NewUnresolvedMethodCall(c.ResolveExpr(n.Expr), n.ID, c.ResolveArgList(n.Args)))
	case *UnresolvedStaticMethodCall:
		return NodeResult(a.NewUnresolvedStaticMethodCall(c.mapClass(n.Class), n.ID, c.ResolveArgList(n.Args)))
	case *UnresolvedSwizzleExpr:
		return NodeResult(a.NewUnresolvedSwizzleExpr(c.ResolveExpr(n.Expr), n.Index))
	case *UnresolvedNewExpr:
		return NodeResult(a.NewUnresolvedNewExpr(c.MapType(n.Typ), c.ResolveExpr(n.Length), c.ResolveArgList(n.Args)))
	case *Stmts:
		out := a.NewStmts()
		out.Scope = n.Scope
		for _, v := range n.Vars {
			out.AppendVar(c.MapVar(v))
		}
		for _, s := range n.List {
			if resolved := c.ResolveStmt(s); resolved != nil {
				out.Append(resolved)
			}
		}
		return NodeResult(out)
	case *ExprStmt:
		return NodeResult(a.NewExprStmt(c.ResolveExpr(n.Expr)))
	case *StoreStmt:
		return NodeResult(a.NewStoreStmt(c.ResolveExpr(n.LHS), c.ResolveExpr(n.RHS)))
	case *DestroyStmt:
		return NodeResult(a.NewDestroyStmt(c.ResolveExpr(n.Expr)))
	case *ZeroInitStmt:
		return NodeResult(a.NewZeroInitStmt(c.ResolveExpr(n.LHS)))
	case *VarDeclaration:
		return NodeResult(a.NewVarDeclaration(n.ID, c.MapType(n.Typ), c.ResolveExpr(n.Init)))
	case *IfStmt:
		return NodeResult(a.NewIfStmt(c.ResolveExpr(n.Cond), c.ResolveStmt(n.Then), c.ResolveStmt(n.Else)))
	case *WhileStmt:
		return NodeResult(a.NewWhileStmt(c.ResolveExpr(n.Cond), c.ResolveStmt(n.Body)))
	case *DoStmt:
		return NodeResult(a.NewDoStmt(c.ResolveStmt(n.Body), c.ResolveExpr(n.Cond)))
	case *ForStmt:
		return NodeResult(a.NewForStmt(c.ResolveStmt(n.Init), c.ResolveExpr(n.Cond), c.ResolveStmt(n.Loop), c.ResolveStmt(n.Body)))
	case *ReturnStmt:
		return NodeResult(a.NewReturnStmt(c.ResolveExpr(n.Expr)))
	case *UnresolvedClassDefinition:
		return NodeResult(a.NewUnresolvedClassDefinition(n.Scope))
	}
	errors.Raise(errors.UnhandledNode, n.Location(), "cannot copy %T", n)
	return Result{}
}

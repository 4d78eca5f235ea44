package ast

type children []Node

func (c *children) expr(e Expr) {
	if e != nil {
		*c = append(*c, e)
	}
}

func (c *children) stmt(s Stmt) {
	if s != nil {
		*c = append(*c, s)
	}
}

func (c *children) exprs(l *ExprList) {
	if l != nil {
		*c = append(*c, l)
	}
}

func (c *children) args(l *ArgList) {
	if l != nil {
		*c = append(*c, l)
	}
}

// Children returns the direct child nodes of n in evaluation order.
func Children(n Node) []Node {
	var c children
	switch n := n.(type) {
	case *CastExpr:
		c.expr(n.Expr)
	case *Arg:
		c.expr(n.Expr)
	case *ArgList:
		for _, arg := range n.Args {
			if arg != nil {
				c = append(c, arg)
			}
		}
	case *ExprList:
		for _, e := range n.Exprs {
			c.expr(e)
		}
	case *BinOpExpr:
		c.expr(n.LHS)
		c.expr(n.RHS)
	case *UnaryOpExpr:
		c.expr(n.RHS)
	case *Initializer:
		c.exprs(n.Args)
	case *ArrayAccess:
		c.expr(n.Expr)
		c.expr(n.Index)
	case *FieldAccess:
		c.expr(n.Expr)
	case *MethodCall:
		c.exprs(n.Args)
	case *LoadExpr:
		c.expr(n.Expr)
	case *TempVarExpr:
		c.expr(n.Init)
	case *SmartToRawPtr:
		c.expr(n.Expr)
	case *RawToWeakPtr:
		c.expr(n.Expr)
	case *ExtractElementExpr:
		c.expr(n.Expr)
	case *InsertElementExpr:
		c.expr(n.Expr)
		c.expr(n.NewElement)
	case *LengthExpr:
		c.expr(n.Expr)
	case *IncDecExpr:
		c.expr(n.Expr)
	case *NewArrayExpr:
		c.expr(n.Size)
	case *NewExpr:
		c.expr(n.Length)
		c.exprs(n.Args)
	case *ExprWithStmt:
		c.expr(n.Expr)
		c.stmt(n.Stmt)
	case *UnresolvedInitializer:
		c.args(n.Args)
	case *UnresolvedListExpr:
		c.args(n.Args)
	case *UnresolvedDot:
		c.expr(n.Expr)
	case *UnresolvedMethodCall:
		c.expr(n.Expr)
		c.args(n.Args)
	case *UnresolvedStaticMethodCall:
		c.args(n.Args)
	case *UnresolvedSwizzleExpr:
		c.expr(n.Expr)
	case *UnresolvedNewExpr:
		c.expr(n.Length)
		c.args(n.Args)
	case *Stmts:
		for _, s := range n.List {
			c.stmt(s)
		}
	case *ExprStmt:
		c.expr(n.Expr)
	case *StoreStmt:
		c.expr(n.LHS)
		c.expr(n.RHS)
	case *DestroyStmt:
		c.expr(n.Expr)
	case *ZeroInitStmt:
		c.expr(n.LHS)
	case *VarDeclaration:
		c.expr(n.Init)
	case *IfStmt:
		c.expr(n.Cond)
		c.stmt(n.Then)
		c.stmt(n.Else)
	case *WhileStmt:
		c.expr(n.Cond)
		c.stmt(n.Body)
	case *DoStmt:
		c.stmt(n.Body)
		c.expr(n.Cond)
	case *ForStmt:
		c.stmt(n.Init)
		c.expr(n.Cond)
		c.stmt(n.Loop)
		c.stmt(n.Body)
	case *ReturnStmt:
		c.expr(n.Expr)
	}
	return c
}

// depthVisitor measures nesting. It stops descending once limit is reached,
// so its own recursion stays bounded.
type depthVisitor struct {
	limit int
	level int
}

func (v *depthVisitor) Default(n Node) Result {
	v.level++
	defer func() { v.level-- }()
	if v.limit > 0 && v.level > v.limit {
		return ValueResult(1)
	}
	var deepest uint32
	for _, child := range Children(n) {
		if d := child.Accept(v).Value(); d > deepest {
			deepest = d
		}
	}
	return ValueResult(deepest + 1)
}

// MaxDepth returns the nesting depth of the tree rooted at n, a leaf being
// depth 1. Measurement stops once limit is exceeded; a result above limit
// means the tree is too deep. A limit of zero measures the whole tree.
func MaxDepth(n Node, limit int) int {
	if n == nil {
		return 0
	}
	return int(n.Accept(&depthVisitor{limit: limit}).Value())
}

package ast

// Stmts is an ordered block. It may own a lexical scope and the variables
// declared in it.
type Stmts struct {
	stmtBase
	List  []Stmt
	Scope *Scope
	Vars  []*Var
}

func (n *Stmts) Append(s Stmt)  { n.List = append(n.List, s) }
func (n *Stmts) Prepend(s Stmt) { n.List = append([]Stmt{s}, n.List...) }

func (n *Stmts) AppendVar(v *Var) { n.Vars = append(n.Vars, v) }

func (n *Stmts) ContainsReturn() bool {
	for _, s := range n.List {
		if s.ContainsReturn() {
			return true
		}
	}
	return false
}

type ExprStmt struct {
	stmtBase
	Expr Expr
}

// StoreStmt writes RHS to the location LHS points at.
type StoreStmt struct {
	stmtBase
	LHS Expr
	RHS Expr
}

type DestroyStmt struct {
	stmtBase
	Expr Expr
}

type ZeroInitStmt struct {
	stmtBase
	LHS Expr
}

type VarDeclaration struct {
	stmtBase
	ID   string
	Typ  Type
	Init Expr
}

type IfStmt struct {
	stmtBase
	Cond Expr
	Then Stmt
	Else Stmt
}

func (n *IfStmt) ContainsReturn() bool {
	return n.Then != nil && n.Else != nil && n.Then.ContainsReturn() && n.Else.ContainsReturn()
}

type WhileStmt struct {
	stmtBase
	Cond Expr
	Body Stmt
}

type DoStmt struct {
	stmtBase
	Body Stmt
	Cond Expr
}

func (n *DoStmt) ContainsReturn() bool {
	return n.Body != nil && n.Body.ContainsReturn()
}

type ForStmt struct {
	stmtBase
	Init Stmt
	Cond Expr
	Loop Stmt
	Body Stmt
}

type ReturnStmt struct {
	stmtBase
	Expr Expr
}

func (*ReturnStmt) ContainsReturn() bool { return true }

// UnresolvedClassDefinition marks where a class body appears in the source.
type UnresolvedClassDefinition struct {
	stmtBase
	Scope *Scope
}

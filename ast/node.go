package ast

import "github.com/pontaoski/toucan/source"

// NodeID is a node's stable handle within its Arena.
type NodeID int

// Node is implemented by every AST node kind. The set of kinds is closed;
// it is listed in nodes.def.
type Node interface {
	Accept(v Visitor) Result
	Location() source.Location
	SetLocation(loc source.Location)
	Handle() NodeID

	setID(id NodeID)
}

// Expr is a node that computes a value.
type Expr interface {
	Node
	// Type reports the static type of the expression, or nil while it is unresolved.
	Type(types *TypeTable) Type

	IsArrayAccess() bool
	IsFieldAccess() bool
	IsUnresolvedSwizzleExpr() bool
	IsUnresolvedListExpr() bool
	IsIntConstant() bool
	IsVarExpr() bool
}

// Stmt is a node executed for its effect.
type Stmt interface {
	Node
	// ContainsReturn reports whether every path through the statement returns.
	ContainsReturn() bool
}

type nodeBase struct {
	loc source.Location
	id  NodeID
}

func (n *nodeBase) Location() source.Location       { return n.loc }
func (n *nodeBase) SetLocation(loc source.Location) { n.loc = loc }
func (n *nodeBase) Handle() NodeID                  { return n.id }
func (n *nodeBase) setID(id NodeID)                 { n.id = id }

type exprBase struct {
	nodeBase
}

func (*exprBase) IsArrayAccess() bool           { return false }
func (*exprBase) IsFieldAccess() bool           { return false }
func (*exprBase) IsUnresolvedSwizzleExpr() bool { return false }
func (*exprBase) IsUnresolvedListExpr() bool    { return false }
func (*exprBase) IsIntConstant() bool           { return false }
func (*exprBase) IsVarExpr() bool               { return false }

type stmtBase struct {
	nodeBase
}

func (*stmtBase) ContainsReturn() bool { return false }

// Result is what a visitor produces for one node: either a node or a
// numeric value. A given visitor produces only one of the two.
type Result struct {
	node    Node
	value   uint32
	numeric bool
}

func NodeResult(n Node) Result {
	return Result{node: n}
}

func ValueResult(v uint32) Result {
	return Result{value: v, numeric: true}
}

// Node returns the produced node; nil means the input was elided.
func (r Result) Node() Node {
	return r.node
}

func (r Result) Value() uint32 {
	return r.value
}

func (r Result) IsValue() bool {
	return r.numeric
}

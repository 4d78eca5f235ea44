// Package legalize rewrites type-checked method bodies for targets that
// cannot take the address of a field or array element.
package legalize

import (
	"fmt"
	"strings"

	"github.com/pontaoski/toucan/ast"
	"github.com/pontaoski/toucan/errors"
)

// Pass copies a tree, routing every pointer argument that addresses a
// sub-object through a local temporary.
type Pass struct {
	*ast.CopyVisitor

	enclosing *ast.Stmts
}

func New(nodes *ast.Arena, types *ast.TypeTable) *Pass {
	p := &Pass{CopyVisitor: ast.NewCopyVisitor(nodes, types)}
	p.Self = p
	return p
}

// Run legalizes a method body.
func (p *Pass) Run(body *ast.Stmts) (out *ast.Stmts, err error) {
	defer errors.Recover(&err)
	return p.ResolveStmts(body), nil
}

func (p *Pass) VisitStmts(n *ast.Stmts) ast.Result {
	prev := p.enclosing
	out := p.Nodes.NewStmts()
	out.Scope = n.Scope
	p.enclosing = out
	defer func() { p.enclosing = prev }()

	// Temporaries follow the block's own locals.
	for _, v := range n.Vars {
		out.AppendVar(v)
	}
	for _, s := range n.List {
		if stmt := p.ResolveStmt(s); stmt != nil {
			out.Append(stmt)
		}
	}
	return ast.NodeResult(out)
}

func (p *Pass) VisitMethodCall(n *ast.MethodCall) ast.Result {
	args := p.Nodes.NewExprList()
	var writeBack *ast.Stmts
	if n.Args != nil {
		for _, e := range n.Args.Exprs {
			arg := p.ResolveExpr(e)
			if arg == nil {
				continue
			}
			ptr, ok := arg.Type(p.Types).(*ast.PtrType)
			if !ok || !(arg.IsFieldAccess() || arg.IsArrayAccess()) {
				args.Append(arg)
				continue
			}
			if p.enclosing == nil {
				errors.Raise(errors.UnhandledNode, n.Location(), "call to %s outside of a statement block", n.Method)
			}
			temp := &ast.Var{Name: "temp", Type: ptr.Base}
			p.enclosing.AppendVar(temp)
			ref := p.Nodes.NewVarExpr(temp)
			if ast.IsWritable(ptr.Base) {
				if writeBack == nil {
					writeBack = p.Nodes.NewStmts()
				}
				writeBack.Append(p.Nodes.NewStoreStmt(arg, p.Nodes.NewLoadExpr(ref)))
			}
			if ast.IsReadable(ptr.Base) {
				copyIn := p.Nodes.NewStoreStmt(ref, p.Nodes.NewLoadExpr(arg))
				args.Append(p.Nodes.NewExprWithStmt(ref, copyIn))
			} else {
				args.Append(ref)
			}
		}
	}
	var result ast.Expr = p.Nodes.NewMethodCall(n.Method, args)
	if writeBack != nil {
		result = p.Nodes.NewExprWithStmt(result, writeBack)
	}
	return ast.NodeResult(result)
}

// VisitRawToWeakPtr drops the conversion; the target has one pointer kind.
func (p *Pass) VisitRawToWeakPtr(n *ast.RawToWeakPtr) ast.Result {
	return ast.NodeResult(p.ResolveExpr(n.Expr))
}

// VisitZeroInitStmt drops the statement; locals start zeroed on the target.
func (p *Pass) VisitZeroInitStmt(*ast.ZeroInitStmt) ast.Result {
	return ast.Result{}
}

// Default copies n. Front-end placeholders must be resolved before this
// pass runs.
func (p *Pass) Default(n ast.Node) ast.Result {
	switch n.(type) {
	case *ast.UnresolvedInitializer, *ast.UnresolvedListExpr, *ast.UnresolvedDot,
		*ast.UnresolvedIdentifier, *ast.UnresolvedMethodCall, *ast.UnresolvedStaticMethodCall,
		*ast.UnresolvedSwizzleExpr, *ast.UnresolvedNewExpr, *ast.UnresolvedClassDefinition:
		errors.Raise(errors.UnhandledNode, n.Location(), "%s reached legalization", strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."))
	}
	return p.CopyVisitor.Default(n)
}

package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/toucan/errors"
	"github.com/pontaoski/toucan/source"
)

func TestArenaStampsLocation(t *testing.T) {
	a := NewArena()
	restore := a.Enter(source.Location{File: "main.t", Line: 7})
	c := a.NewIntConstant(1, 32)
	restore()
	d := a.NewIntConstant(2, 32)

	if c.Location().Line != 7 || d.Location().IsValid() {
		t.Fatalf("unexpected locations %v %v", c.Location(), d.Location())
	}
	if a.Node(c.Handle()) != Node(c) || a.Node(d.Handle()) != Node(d) || a.Len() != 2 {
		t.Fatal("arena handles do not round-trip")
	}
	a.Release()
	if a.Len() != 0 || a.Node(c.Handle()) != nil {
		t.Fatal("release must drop every node")
	}
}

func TestContainsReturn(t *testing.T) {
	a := NewArena()
	ret := func() Stmt { return a.NewReturnStmt(nil) }
	cond := a.NewBoolConstant(true)

	if !a.NewStmts(a.NewExprStmt(cond), ret()).ContainsReturn() {
		t.Error("block ending in return")
	}
	if a.NewIfStmt(cond, ret(), nil).ContainsReturn() {
		t.Error("if without else does not return on every path")
	}
	if !a.NewIfStmt(cond, ret(), a.NewStmts(ret())).ContainsReturn() {
		t.Error("if with both branches returning")
	}
	if a.NewWhileStmt(cond, ret()).ContainsReturn() {
		t.Error("while body may not run")
	}
	if !a.NewDoStmt(a.NewStmts(ret()), cond).ContainsReturn() {
		t.Error("do body always runs")
	}
}

func TestExprTypes(t *testing.T) {
	types := NewTypeTable()
	a := NewArena()
	class := types.NewClass("Point")
	field := class.AddField("x", types.GetFloat())
	ro := types.GetQualifiedType(class, ReadOnly)
	v := &Var{Name: "p", Type: ro}

	access := a.NewFieldAccess(a.NewVarExpr(v), field)
	want, _ := types.GetRawPtrType(types.GetQualifiedType(types.GetFloat(), ReadOnly))
	if access.Type(types) != Type(want) {
		t.Fatalf("field access typed %s, want %s", access.Type(types), want)
	}
	if a.NewLoadExpr(access).Type(types) != Type(types.GetFloat()) {
		t.Fatal("load strips pointer and qualifiers")
	}

	vec := types.GetVector(types.GetFloat(), 4)
	cmp := a.NewBinOpExpr(OpLT, a.NewVarExpr(&Var{Name: "a", Type: vec}), a.NewVarExpr(&Var{Name: "b", Type: vec}))
	// Operands are addresses here, so the comparison is scalar.
	if cmp.Type(types) != Type(types.GetBool()) {
		t.Fatalf("got %s", cmp.Type(types))
	}
	if a.NewExprWithStmt(nil, a.NewStmts()).Type(types) != Type(types.GetVoid()) {
		t.Fatal("statement-only composite is void")
	}
}

func TestCopyVisitorCopiesStructurally(t *testing.T) {
	types := NewTypeTable()
	src := NewArena()
	restore := src.Enter(source.Location{File: "x.t", Line: 3})
	v := &Var{Name: "i", Type: types.GetInt()}
	body := src.NewStmts(
		src.NewStoreStmt(src.NewVarExpr(v), src.NewBinOpExpr(OpAdd, src.NewLoadExpr(src.NewVarExpr(v)), src.NewIntConstant(1, 32))),
		src.NewReturnStmt(nil),
	)
	body.AppendVar(v)
	restore()

	dst := NewArena()
	c := NewCopyVisitor(dst, types)
	out, ok := c.Resolve(body).(*Stmts)
	if !ok {
		t.Fatal("expected a block")
	}
	if out == body || len(out.List) != 2 || dst.Len() == 0 {
		t.Fatalf("not a copy: %s", repr.String(out))
	}
	store := out.List[0].(*StoreStmt)
	if store.LHS.(*VarExpr).Var != v {
		t.Error("vars are shared, not copied")
	}
	if store.Location().Line != 3 {
		t.Errorf("location not carried over: %v", store.Location())
	}
	if out.Vars[0] != v {
		t.Error("block vars not carried over")
	}

	var before, after bytes.Buffer
	PrintAST(&before, body)
	PrintAST(&after, out)
	if before.String() != after.String() {
		t.Errorf("copy differs:\n%s\nvs\n%s", before.String(), after.String())
	}
}

type elideReturns struct {
	*CopyVisitor
}

func (e *elideReturns) VisitReturnStmt(*ReturnStmt) Result {
	return Result{}
}

func TestCopyVisitorOverride(t *testing.T) {
	types := NewTypeTable()
	src := NewArena()
	body := src.NewStmts(src.NewExprStmt(src.NewIntConstant(1, 32)), src.NewIfStmt(src.NewBoolConstant(true), src.NewReturnStmt(nil), nil))

	pass := &elideReturns{NewCopyVisitor(NewArena(), types)}
	pass.Self = pass
	out := pass.Resolve(body).(*Stmts)
	if len(out.List) != 2 {
		t.Fatalf("expected two statements, got %d", len(out.List))
	}
	if out.List[1].(*IfStmt).Then != nil {
		t.Error("nested return must go through the override")
	}
}

func TestCopyVisitorDepthGuard(t *testing.T) {
	types := NewTypeTable()
	a := NewArena()
	var e Expr = a.NewIntConstant(0, 32)
	for i := 0; i < 20; i++ {
		e = a.NewUnaryOpExpr(OpMinus, e)
	}
	if got := MaxDepth(e, 0); got != 21 {
		t.Fatalf("depth %d, want 21", got)
	}
	if got := MaxDepth(e, 5); got <= 5 {
		t.Fatalf("limited depth %d must exceed the limit", got)
	}

	c := NewCopyVisitor(NewArena(), types)
	c.MaxDepth = 10
	err := func() (err error) {
		defer errors.Recover(&err)
		c.Resolve(e)
		return nil
	}()
	if fault, ok := errors.AsFault(err); !ok || fault.Kind != errors.DepthExceeded {
		t.Fatalf("expected a depth fault, got %v", err)
	}
}

func TestPrintAST(t *testing.T) {
	types := NewTypeTable()
	a := NewArena()
	class := types.NewClass("Foo")
	m := NewMethod(0, types.GetVoid(), "f", class)
	tree := a.NewStmts(
		a.NewExprStmt(a.NewMethodCall(m, a.NewExprList(a.NewIntConstant(4, 32)))),
		a.NewExprStmt(a.NewUnresolvedIdentifier("x")),
	)
	var buf bytes.Buffer
	PrintAST(&buf, tree)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"Stmts",
		"  ExprStmt",
		"    MethodCall Foo.f()",
		"      ExprList",
		"        IntConstant 4 (32 bit)",
		"  ExprStmt",
		"    *** unknown node ***",
	}
	if strings.Join(lines, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

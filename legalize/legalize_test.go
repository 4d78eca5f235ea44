package legalize

import (
	"bytes"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/toucan/ast"
	"github.com/pontaoski/toucan/errors"
)

type fixture struct {
	types *ast.TypeTable
	nodes *ast.Arena
	obj   *ast.Var
	field *ast.Field
	f     *ast.Method
}

// newFixture builds a class Obj with one field, a local obj of type q Obj,
// and a method f(float* p).
func newFixture(q ast.Qualifier) *fixture {
	types := ast.NewTypeTable()
	class := types.NewClass("Obj")
	field := class.AddField("field", types.GetFloat())
	f := ast.NewMethod(ast.Static, types.GetVoid(), "f", nil)
	ptr, _ := types.GetRawPtrType(types.GetFloat())
	f.AddFormalArg("p", ptr, nil)
	return &fixture{
		types: types,
		nodes: ast.NewArena(),
		obj:   &ast.Var{Name: "obj", Type: types.GetQualifiedType(class, q)},
		field: field,
		f:     f,
	}
}

// body is { f(&obj.field); }
func (fx *fixture) body() *ast.Stmts {
	n := fx.nodes
	access := n.NewFieldAccess(n.NewVarExpr(fx.obj), fx.field)
	body := n.NewStmts(n.NewExprStmt(n.NewMethodCall(fx.f, n.NewExprList(access))))
	body.AppendVar(fx.obj)
	return body
}

func run(t *testing.T, fx *fixture, body *ast.Stmts) *ast.Stmts {
	out, err := New(ast.NewArena(), fx.types).Run(body)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestReadWriteFieldArgument(t *testing.T) {
	fx := newFixture(0)
	out := run(t, fx, fx.body())

	// 1. declare temp
	if len(out.Vars) != 2 || out.Vars[0] != fx.obj {
		t.Fatalf("unexpected locals %s", repr.String(out.Vars))
	}
	temp := out.Vars[1]
	if temp.Type != ast.Type(fx.types.GetFloat()) {
		t.Fatalf("temp has type %s", temp.Type)
	}

	composite := out.List[0].(*ast.ExprStmt).Expr.(*ast.ExprWithStmt)
	call := composite.Expr.(*ast.MethodCall)
	arg := call.Args.Exprs[0].(*ast.ExprWithStmt)

	// 2. copy original into temp
	copyIn := arg.Stmt.(*ast.StoreStmt)
	if copyIn.LHS.(*ast.VarExpr).Var != temp {
		t.Error("copy-in must store into temp")
	}
	if !copyIn.RHS.(*ast.LoadExpr).Expr.IsFieldAccess() {
		t.Error("copy-in must load the original field")
	}

	// 3. call with temp's address
	if arg.Expr.(*ast.VarExpr).Var != temp {
		t.Error("argument must be the temp")
	}
	if call.Method != fx.f {
		t.Error("call target changed")
	}

	// 4. copy temp back into original
	writeBack := composite.Stmt.(*ast.Stmts)
	if len(writeBack.List) != 1 {
		t.Fatalf("expected one store-back, got %d", len(writeBack.List))
	}
	back := writeBack.List[0].(*ast.StoreStmt)
	if !back.LHS.IsFieldAccess() || back.RHS.(*ast.LoadExpr).Expr.(*ast.VarExpr).Var != temp {
		t.Error("store-back must copy temp into the field")
	}
}

func TestFieldArgumentThroughThis(t *testing.T) {
	fx := newFixture(0)
	n := fx.nodes
	class := fx.field.Class
	self, _ := fx.types.GetRawPtrType(class)
	this := &ast.Var{Name: "this", Type: self}

	// { f(&this.field); }
	access := n.NewFieldAccess(n.NewLoadExpr(n.NewVarExpr(this)), fx.field)
	if access.Type(fx.types) == nil {
		t.Fatal("field access through this has no type")
	}
	body := n.NewStmts(n.NewExprStmt(n.NewMethodCall(fx.f, n.NewExprList(access))))

	out := run(t, fx, body)
	if len(out.Vars) != 1 || out.Vars[0].Type != ast.Type(fx.types.GetFloat()) {
		t.Fatalf("expected one float temp, got %d locals", len(out.Vars))
	}
	composite, ok := out.List[0].(*ast.ExprStmt).Expr.(*ast.ExprWithStmt)
	if !ok {
		t.Fatalf("call was not legalized: %T", out.List[0].(*ast.ExprStmt).Expr)
	}
	call := composite.Expr.(*ast.MethodCall)
	if arg := call.Args.Exprs[0].(*ast.ExprWithStmt); arg.Expr.(*ast.VarExpr).Var != out.Vars[0] {
		t.Error("argument must be the temp")
	}
}

func TestFixpoint(t *testing.T) {
	fx := newFixture(0)
	once := run(t, fx, fx.body())
	twice := run(t, fx, once)
	if len(twice.Vars) != len(once.Vars) {
		t.Fatalf("second run added temporaries: %d vs %d", len(twice.Vars), len(once.Vars))
	}
	var a, b bytes.Buffer
	ast.PrintAST(&a, once)
	ast.PrintAST(&b, twice)
	if a.String() != b.String() {
		t.Fatalf("second run changed the tree:\n%s\nvs\n%s", a.String(), b.String())
	}
}

func TestReadOnlyField(t *testing.T) {
	fx := newFixture(ast.ReadOnly)
	out := run(t, fx, fx.body())
	expr := out.List[0].(*ast.ExprStmt).Expr
	call, ok := expr.(*ast.MethodCall)
	if !ok {
		t.Fatalf("read-only argument needs no store-back, got %T", expr)
	}
	if _, ok := call.Args.Exprs[0].(*ast.ExprWithStmt); !ok {
		t.Fatal("readable argument is copied in")
	}
}

func TestWriteOnlyField(t *testing.T) {
	fx := newFixture(ast.WriteOnly)
	out := run(t, fx, fx.body())
	composite := out.List[0].(*ast.ExprStmt).Expr.(*ast.ExprWithStmt)
	call := composite.Expr.(*ast.MethodCall)
	ref, ok := call.Args.Exprs[0].(*ast.VarExpr)
	if !ok || ref.Var != out.Vars[1] {
		t.Fatalf("unreadable argument must be a bare temp reference, got %s", repr.String(call.Args.Exprs[0]))
	}
	if len(composite.Stmt.(*ast.Stmts).List) != 1 {
		t.Fatal("writable argument is stored back")
	}
}

func TestArrayElementArgument(t *testing.T) {
	fx := newFixture(0)
	n := fx.nodes
	arr := &ast.Var{Name: "a", Type: fx.types.GetArrayType(fx.types.GetFloat(), 4, ast.LayoutDefault)}
	access := n.NewArrayAccess(n.NewVarExpr(arr), n.NewIntConstant(2, 32))
	body := n.NewStmts(n.NewExprStmt(n.NewMethodCall(fx.f, n.NewExprList(access))))

	out := run(t, fx, body)
	if len(out.Vars) != 1 {
		t.Fatalf("expected one temp, got %d", len(out.Vars))
	}
}

func TestLocalArgumentUntouched(t *testing.T) {
	fx := newFixture(0)
	n := fx.nodes
	local := &ast.Var{Name: "x", Type: fx.types.GetFloat()}
	body := n.NewStmts(n.NewExprStmt(n.NewMethodCall(fx.f, n.NewExprList(n.NewVarExpr(local)))))
	out := run(t, fx, body)
	call := out.List[0].(*ast.ExprStmt).Expr.(*ast.MethodCall)
	if call.Args.Exprs[0].(*ast.VarExpr).Var != local || len(out.Vars) != 0 {
		t.Fatal("plain local references are passed through")
	}
}

func TestElisions(t *testing.T) {
	fx := newFixture(0)
	n := fx.nodes
	weak := n.NewRawToWeakPtr(n.NewVarExpr(fx.obj))
	body := n.NewStmts(
		n.NewZeroInitStmt(n.NewVarExpr(fx.obj)),
		n.NewExprStmt(weak),
	)
	out := run(t, fx, body)
	if len(out.List) != 1 {
		t.Fatalf("zero-init must be dropped, have %d statements", len(out.List))
	}
	if _, ok := out.List[0].(*ast.ExprStmt).Expr.(*ast.VarExpr); !ok {
		t.Fatal("raw-to-weak conversion must be elided")
	}
}

func TestUnresolvedNodeFaults(t *testing.T) {
	fx := newFixture(0)
	n := fx.nodes
	body := n.NewStmts(n.NewExprStmt(n.NewUnresolvedIdentifier("x")))
	_, err := New(ast.NewArena(), fx.types).Run(body)
	fault, ok := errors.AsFault(err)
	if !ok || fault.Kind != errors.UnhandledNode {
		t.Fatalf("expected an unhandled node fault, got %v", err)
	}
}

package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pontaoski/toucan/errors"
)

func TestScopeShadowing(t *testing.T) {
	types := NewTypeTable()
	st := NewSymbolTable()
	st.PushNewScope()
	outer, err := st.DefineVar("x", types.GetInt())
	if err != nil {
		t.Fatal(err)
	}

	st.PushNewScope()
	inner, _ := st.DefineVar("x", types.GetFloat())
	if st.FindVar("x") != inner {
		t.Fatal("inner declaration must shadow the outer one")
	}
	popped := st.PopScope()
	if st.FindVar("x") != outer {
		t.Fatal("outer declaration must be visible again after pop")
	}
	if popped.LookupVar("x") != inner {
		t.Fatal("a popped scope keeps its contents")
	}
}

func TestDefineWithoutScope(t *testing.T) {
	st := NewSymbolTable()
	if _, err := st.DefineVar("x", nil); err != errors.ErrNoScope {
		t.Errorf("DefineVar: got %v", err)
	}
	if err := st.DefineType("T", nil); err != errors.ErrNoScope {
		t.Errorf("DefineType: got %v", err)
	}
	if err := st.DefineID("k", nil); err != errors.ErrNoScope {
		t.Errorf("DefineID: got %v", err)
	}
}

func TestPushScopeDiscipline(t *testing.T) {
	st := NewSymbolTable()
	root := st.PushNewScope()
	stray := NewScope(nil)

	err := func() (err error) {
		defer errors.Recover(&err)
		st.PushScope(stray)
		return nil
	}()
	fault, ok := errors.AsFault(err)
	if !ok || fault.Kind != errors.ScopeDiscipline {
		t.Fatalf("expected a scope discipline fault, got %v", err)
	}

	child := NewScope(root)
	st.PushScope(child)
	if st.PeekScope() != child {
		t.Fatal("child scope not active")
	}
}

func TestFindVarFormalArgs(t *testing.T) {
	types := NewTypeTable()
	class := types.NewClass("Foo")
	m := NewMethod(0, types.GetVoid(), "bar", class)
	arg := m.AddFormalArg("a", types.GetInt(), nil)

	st := NewSymbolTable()
	st.PushNewScope()
	global, _ := st.DefineVar("g", types.GetInt())
	body := st.PushNewScope()
	body.Method = m
	st.PushNewScope()

	if st.FindVar("a") != arg {
		t.Error("formal argument not found from a nested block")
	}
	if st.FindVar("g") != global {
		t.Error("lookup must continue past the method scope")
	}
	if st.FindVar("missing") != nil {
		t.Error("unknown names resolve to nil")
	}
}

func TestFindFieldAndType(t *testing.T) {
	types := NewTypeTable()
	base := types.NewClass("Base")
	f := base.AddField("x", types.GetFloat())
	derived := types.NewClass("Derived")
	derived.Parent = base

	st := NewSymbolTable()
	st.PushNewScope()
	st.DefineType("Derived", derived)
	classScope := st.PushNewScope()
	classScope.Class = derived
	st.PushNewScope()

	if st.FindField("x") != f {
		t.Error("inherited field not found through class scope")
	}
	if st.FindType("Derived") != Type(derived) {
		t.Error("type alias not found")
	}
	if st.FindType("Nope") != nil {
		t.Error("unknown type resolves to nil")
	}

	e := &IntConstant{Value: 3, Bits: 32}
	st.DefineID("three", e)
	if st.FindID("three") != Expr(e) {
		t.Error("bound expression not found")
	}
}

func TestDump(t *testing.T) {
	types := NewTypeTable()
	st := NewSymbolTable()
	st.PushNewScope()
	st.DefineVar("x", types.GetInt())
	st.DefineType("Foo", types.NewClass("Foo"))
	st.DefineType("E", types.NewEnum("E"))

	var buf bytes.Buffer
	st.Dump(&buf)
	for _, want := range []string{"int x;", "class Foo;", "enum E;"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("dump missing %q:\n%s", want, buf.String())
		}
	}
}

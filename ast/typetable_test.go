package ast

import (
	"testing"

	"github.com/alecthomas/repr"
)

func TestVectorCanonicalization(t *testing.T) {
	types := NewTypeTable()
	a := types.GetVector(types.GetFloat(), 3)
	b := types.GetVector(types.GetFloat(), 3)
	if a != b {
		t.Fatalf("float<3> was interned twice: %s", repr.String(types.Types()))
	}
	if c := types.GetVector(types.GetFloat(), 4); c == a {
		t.Fatal("float<4> must differ from float<3>")
	}
	if a.String() != "float<3>" {
		t.Fatalf("unexpected name %q", a.String())
	}
}

func TestStructuralCanonicalization(t *testing.T) {
	types := NewTypeTable()
	f := types.GetFloat()
	col := types.GetVector(f, 4)

	if types.GetMatrix(col, 4) != types.GetMatrix(types.GetVector(f, 4), 4) {
		t.Error("matrix not canonical")
	}
	if types.GetArrayType(f, 8, LayoutStorage) != types.GetArrayType(f, 8, LayoutStorage) {
		t.Error("array not canonical")
	}
	if types.GetArrayType(f, 8, LayoutStorage) == types.GetArrayType(f, 8, LayoutUniform) {
		t.Error("array layout must be part of the shape")
	}

	s1, err := types.GetStrongPtrType(col)
	if err != nil {
		t.Fatal(err)
	}
	s2, _ := types.GetStrongPtrType(col)
	w, _ := types.GetWeakPtrType(col)
	if s1 != s2 {
		t.Error("strong pointer not canonical")
	}
	if s1 == w {
		t.Error("strong and weak pointers must differ")
	}

	q1 := types.GetQualifiedType(f, ReadOnly)
	q2 := types.GetQualifiedType(f, ReadOnly)
	if q1 != q2 {
		t.Error("qualified type not canonical")
	}
	if types.GetQualifiedType(f, 0) != Type(f) {
		t.Error("empty qualifiers must return the base")
	}
	merged := types.GetQualifiedType(q1, Coherent)
	if merged != types.GetQualifiedType(f, ReadOnly|Coherent) {
		t.Errorf("nested qualifiers not merged: %s", merged)
	}
}

func TestInvalidPointerBase(t *testing.T) {
	types := NewTypeTable()
	for _, base := range []Type{nil, types.GetNull(), types.GetAuto()} {
		if _, err := types.GetStrongPtrType(base); err == nil {
			t.Errorf("expected an error for base %v", base)
		}
	}
}

func TestPointerToPointer(t *testing.T) {
	types := NewTypeTable()
	strong, _ := types.GetStrongPtrType(types.GetInt())
	for _, kind := range []PtrKind{StrongPtr, WeakPtr, RawPtr} {
		inner, err := types.GetPtrType(kind, types.GetInt())
		if err != nil {
			t.Fatal(err)
		}
		outer, err := types.GetRawPtrType(inner)
		if err != nil {
			t.Fatalf("raw pointer to %s: %v", inner, err)
		}
		if PtrBase(outer) != Type(inner) {
			t.Errorf("unexpected base %s", PtrBase(outer))
		}
	}
	a, _ := types.GetRawPtrType(strong)
	b, _ := types.GetRawPtrType(strong)
	if a != b {
		t.Error("pointer to pointer not canonical")
	}
}

func TestQualifyingPointerQualifiesPointee(t *testing.T) {
	types := NewTypeTable()
	f := types.GetFloat()
	strong, _ := types.GetStrongPtrType(f)
	raw, _ := types.GetRawPtrType(strong)

	got := types.GetQualifiedType(raw, ReadOnly)
	readOnly := types.GetQualifiedType(f, ReadOnly)
	innerWant, _ := types.GetStrongPtrType(readOnly)
	want, _ := types.GetRawPtrType(innerWant)
	if got != Type(want) {
		t.Errorf("got %s, want %s", got, want)
	}
	for _, typ := range types.Types() {
		if q, ok := typ.(*QualifiedType); ok {
			if _, isPtr := q.Base.(*PtrType); isPtr {
				t.Errorf("table holds qualified pointer %s", q)
			}
		}
	}
}

func TestGenericMemoization(t *testing.T) {
	types := NewTypeTable()
	tmpl := types.NewClassTemplate("Box", []*FormalTemplateArg{types.GetFormalTemplateArg("T")})

	a, err := types.GetClassTemplateInstance(tmpl, []Type{types.GetInt()})
	if err != nil {
		t.Fatal(err)
	}
	b, _ := types.GetClassTemplateInstance(tmpl, []Type{types.GetInteger(32, true)})
	c, _ := types.GetClassTemplateInstance(tmpl, []Type{types.GetFloat()})
	if a != b {
		t.Error("identical argument lists must yield the same instance")
	}
	if a == c {
		t.Error("different argument lists must yield distinct instances")
	}
	if a.String() != "Box<int>" {
		t.Errorf("unexpected name %q", a.String())
	}
	if got := len(types.Instances(tmpl)); got != 2 {
		t.Errorf("expected 2 instances, got %d", got)
	}

	if _, err := types.GetClassTemplateInstance(tmpl, []Type{types.GetInt(), types.GetInt()}); err == nil {
		t.Error("expected an arity error")
	}
	plain := types.NewClass("Plain")
	if _, err := types.GetClassTemplateInstance(plain, nil); err == nil {
		t.Error("expected an error instantiating a non-template")
	}
}

func TestNominalTypesAreDistinct(t *testing.T) {
	types := NewTypeTable()
	if types.NewClass("Foo") == types.NewClass("Foo") {
		t.Error("classes are nominal")
	}
	if types.NewEnum("E") == types.NewEnum("E") {
		t.Error("enums are nominal")
	}
}

func TestOrdinals(t *testing.T) {
	types := NewTypeTable()
	i := types.GetInt()
	v := types.GetVector(i, 2)
	p, _ := types.GetRawPtrType(v)
	for want, typ := range []Type{i, v, p} {
		got, ok := types.Ordinal(typ)
		if !ok || got != want {
			t.Errorf("%s: ordinal %d, want %d", typ, got, want)
		}
		if types.Types()[want] != typ {
			t.Errorf("Types()[%d] is not %s", want, typ)
		}
	}
	types.GetVector(i, 2)
	if types.Len() != 3 {
		t.Errorf("re-requesting a shape must not register it again, have %d types", types.Len())
	}
}

func TestPendingInstances(t *testing.T) {
	types := NewTypeTable()
	T := types.GetFormalTemplateArg("T")
	tmpl := types.NewClassTemplate("Box", []*FormalTemplateArg{T})
	concrete, _ := types.GetClassTemplateInstance(tmpl, []Type{types.GetInt()})
	types.GetClassTemplateInstance(tmpl, []Type{T})

	pending := types.PendingInstances()
	if len(pending) != 1 || pending[0] != concrete {
		t.Fatalf("unexpected pending set %s", repr.String(pending))
	}
	concrete.Realized = true
	if len(types.PendingInstances()) != 0 {
		t.Fatal("realized instances are not pending")
	}
}

func TestNativeRegistry(t *testing.T) {
	types := NewTypeTable()
	math := types.NewClass("Math")
	user := types.NewClass("Mine")
	buf := types.NewClassTemplate("Buffer", []*FormalTemplateArg{types.GetFormalTemplateArg("T")})

	if !math.Native || user.Native || !buf.Native {
		t.Fatalf("native flags wrong: Math=%v Mine=%v Buffer=%v", math.Native, user.Native, buf.Native)
	}
	if types.Natives().Lookup("Math") != math {
		t.Error("Math not registered")
	}
	if types.Natives().Lookup("Mine") != nil {
		t.Error("user class registered as native")
	}
	defined := types.Natives().Defined()
	if len(defined) != 2 || defined[0] != buf || defined[1] != math {
		t.Errorf("unexpected registry order %v", defined)
	}

	inst, _ := types.GetClassTemplateInstance(buf, []Type{types.GetFloat()})
	if !inst.Native {
		t.Error("instances of native templates are native")
	}
}

func TestContainsFormal(t *testing.T) {
	types := NewTypeTable()
	T := types.GetFormalTemplateArg("T")
	p, _ := types.GetStrongPtrType(types.GetArrayType(T, 4, LayoutDefault))
	if !ContainsFormal(p) {
		t.Error("formal hidden behind pointer and array not found")
	}
	if ContainsFormal(types.GetVector(types.GetFloat(), 4)) {
		t.Error("float<4> has no formal")
	}
	if !ContainsFormal(types.GetUnresolvedScopedType(T, "Inner")) {
		t.Error("scoped types are unresolved")
	}
}

func TestQualifierAccess(t *testing.T) {
	types := NewTypeTable()
	f := types.GetFloat()
	cases := []struct {
		typ                Type
		readable, writable bool
	}{
		{f, true, true},
		{types.GetQualifiedType(f, ReadOnly), true, false},
		{types.GetQualifiedType(f, WriteOnly), false, true},
		{types.GetQualifiedType(f, Uniform), true, false},
		{types.GetQualifiedType(f, Storage|Coherent), true, true},
	}
	for _, c := range cases {
		if IsReadable(c.typ) != c.readable || IsWritable(c.typ) != c.writable {
			t.Errorf("%s: readable=%v writable=%v", c.typ, IsReadable(c.typ), IsWritable(c.typ))
		}
	}
}

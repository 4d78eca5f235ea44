package typeinfo

import (
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/llir/llvm/ir"
	"github.com/pontaoski/toucan/ast"
)

func sampleTable() (*ast.TypeTable, *ast.ClassType) {
	types := ast.NewTypeTable()
	f := types.GetFloat()
	vec := types.GetVector(f, 4)

	window := types.NewClass("Window")
	size := types.GetVector(types.GetUInt(), 2)
	self, _ := types.GetRawPtrType(window)
	getSize := ast.NewMethod(0, size, "GetSize", window)
	getSize.AddFormalArg("this", self, nil)
	window.AddMethod(getSize, 0)

	user := types.NewClass("Particle")
	user.AddField("pos", vec)
	user.AddField("owner", self)
	return types, window
}

func TestBuildOrdinals(t *testing.T) {
	types, _ := sampleTable()
	m := Build("demo", types)
	if len(m.Types) != types.Len() {
		t.Fatalf("got %d entries for %d types", len(m.Types), types.Len())
	}
	for i, e := range m.Types {
		if e.Ordinal != i {
			t.Fatalf("entry %d has ordinal %d", i, e.Ordinal)
		}
	}

	vec := m.Types[1]
	if vec.Kind != "vector" || vec.Length != 4 || *vec.Base != 0 || m.Types[0].Kind != "float" {
		t.Fatalf("unexpected vector entry %s", repr.String(vec))
	}

	var particle *Entry
	for i := range m.Types {
		if m.Types[i].Name == "Particle" {
			particle = &m.Types[i]
		}
	}
	if particle == nil || len(particle.Fields) != 2 {
		t.Fatalf("Particle missing: %s", repr.String(m))
	}
	owner := m.Types[particle.Fields[1].Type]
	if owner.Kind != "pointer" || owner.PtrKind != "raw" || m.Types[*owner.Base].Name != "Window" {
		t.Fatalf("owner field refers to %s", repr.String(owner))
	}
}

func TestManifestRoundTrip(t *testing.T) {
	types, _ := sampleTable()
	m := Build("demo", types)
	data, err := m.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if repr.String(back) != repr.String(m) {
		t.Fatalf("round trip changed the manifest:\n%s", data)
	}
}

func TestNativeBridge(t *testing.T) {
	types, window := sampleTable()
	want := "uint32_t* Window_GetSize(Window* this)"
	if got := BridgeDecl(window.Methods[0]); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	T := types.GetFormalTemplateArg("T")
	weakT, _ := types.GetWeakPtrType(T)
	cases := map[string]ast.Type{
		"int8_t":   types.GetInteger(8, true),
		"uint16_t": types.GetInteger(16, false),
		"double":   types.GetDouble(),
		"Object":   types.NewClass("Mine"),
		"Object*":  weakT,
		"float*":   types.GetMatrix(types.GetVector(types.GetFloat(), 4), 4),
		"void":     T,
		"bool":     types.GetQualifiedType(types.GetBool(), ast.ReadOnly),
	}
	for want, typ := range cases {
		if got := NativeType(typ); got != want {
			t.Errorf("%s: got %q, want %q", typ, got, want)
		}
	}
}

func TestEmbedAndDeclare(t *testing.T) {
	types, _ := sampleTable()
	mod := ir.NewModule()
	if _, err := Embed(mod, Build("demo", types)); err != nil {
		t.Fatal(err)
	}
	funcs := DeclareNatives(mod, types)
	if _, ok := funcs["Window_GetSize"]; !ok {
		t.Fatalf("bridge not declared: %v", funcs)
	}

	out := mod.String()
	for _, want := range []string{"@" + Symbol, "%ControlBlock = type", "%Window = type opaque", "declare"} {
		if !strings.Contains(out, want) {
			t.Errorf("module lacks %q:\n%s", want, out)
		}
	}
}

package toucan

import (
	"github.com/pontaoski/toucan/ast"
)

func (u *Unit) definePrelude() {
	t := u.Types
	aliases := []struct {
		name string
		typ  ast.Type
	}{
		{"bool", t.GetBool()},
		{"byte", t.GetInteger(8, true)},
		{"ubyte", t.GetInteger(8, false)},
		{"short", t.GetInteger(16, true)},
		{"ushort", t.GetInteger(16, false)},
		{"int", t.GetInt()},
		{"uint", t.GetUInt()},
		{"float", t.GetFloat()},
		{"double", t.GetDouble()},
		{"void", t.GetVoid()},
		{"string", t.GetString()},
	}
	for _, alias := range aliases {
		u.Root.SetType(alias.name, alias.typ)
	}
	if u.Config.Natives {
		u.defineNatives()
	}
}

func (u *Unit) nativeClass(name string) *ast.ClassType {
	c := u.Types.NewClass(name)
	u.Root.SetType(name, c)
	return c
}

func (u *Unit) ptr(kind ast.PtrKind, base ast.Type) ast.Type {
	p, err := u.Types.GetPtrType(kind, base)
	if err != nil {
		panic(err)
	}
	return p
}

type nativeMethod struct {
	mods ast.Modifier
	ret  ast.Type
	name string
	args []ast.Var
	wgsl string
}

func (u *Unit) addMethods(c *ast.ClassType, methods []nativeMethod) {
	for i, nm := range methods {
		m := ast.NewMethod(nm.mods, nm.ret, nm.name, c)
		m.WGSL = nm.wgsl
		if nm.mods&ast.Static == 0 {
			m.AddFormalArg("this", u.ptr(ast.RawPtr, c), nil)
		}
		for _, arg := range nm.args {
			m.AddFormalArg(arg.Name, arg.Type, nil)
		}
		c.AddMethod(m, i)
	}
}

// defineNatives declares the compiler-known classes the runtime bridges
// implement.
func (u *Unit) defineNatives() {
	t := u.Types
	f := t.GetFloat()
	float3 := t.GetVector(f, 3)
	int2 := t.GetVector(t.GetInt(), 2)
	uint2 := t.GetVector(t.GetUInt(), 2)

	math := u.nativeClass("Math")
	unary := func(name string) nativeMethod {
		return nativeMethod{ast.Static, f, name, []ast.Var{{Name: "x", Type: f}}, name}
	}
	u.addMethods(math, []nativeMethod{
		unary("sqrt"),
		unary("sin"),
		unary("cos"),
		unary("tan"),
		unary("fabs"),
		{ast.Static, f, "pow", []ast.Var{{Name: "x", Type: f}, {Name: "y", Type: f}}, "pow"},
		{ast.Static, f, "dot", []ast.Var{{Name: "a", Type: float3}, {Name: "b", Type: float3}}, "dot"},
		{ast.Static, float3, "cross", []ast.Var{{Name: "a", Type: float3}, {Name: "b", Type: float3}}, "cross"},
		{ast.Static, float3, "normalize", []ast.Var{{Name: "v", Type: float3}}, "normalize"},
	})

	event := u.nativeClass("Event")
	event.AddField("type", t.GetInt())
	event.AddField("position", int2)
	event.AddField("modifiers", t.GetUInt())

	system := u.nativeClass("System")
	u.addMethods(system, []nativeMethod{
		{ast.Static, t.GetBool(), "IsRunning", nil, ""},
		{ast.Static, t.GetBool(), "HasPendingEvents", nil, ""},
		{ast.Static, u.ptr(ast.StrongPtr, event), "GetNextEvent", nil, ""},
		{ast.Static, t.GetDouble(), "GetCurrentTime", nil, ""},
		{ast.Static, uint2, "GetScreenSize", nil, ""},
		{ast.Static, t.GetVoid(), "Print", []ast.Var{{Name: "str", Type: t.GetString()}}, ""},
	})

	window := u.nativeClass("Window")
	u.addMethods(window, []nativeMethod{
		{0, u.ptr(ast.StrongPtr, window), "Window", []ast.Var{{Name: "position", Type: int2}, {Name: "size", Type: uint2}}, ""},
		{0, uint2, "GetSize", nil, ""},
	})

	device := u.nativeClass("Device")
	u.addMethods(device, []nativeMethod{
		{0, u.ptr(ast.StrongPtr, device), "Device", nil, ""},
	})

	T := t.GetFormalTemplateArg("T")
	buffer := t.NewClassTemplate("Buffer", []*ast.FormalTemplateArg{T})
	u.Root.SetType("Buffer", buffer)
	u.addMethods(buffer, []nativeMethod{
		{0, u.ptr(ast.StrongPtr, buffer), "Buffer", []ast.Var{{Name: "device", Type: u.ptr(ast.StrongPtr, device)}}, ""},
		{0, t.GetVoid(), "SetData", []ast.Var{{Name: "data", Type: u.ptr(ast.StrongPtr, T)}}, ""},
		{0, u.ptr(ast.WeakPtr, T), "MapRead", nil, ""},
		{0, u.ptr(ast.WeakPtr, T), "MapWrite", nil, ""},
	})

	queue := u.nativeClass("Queue")
	encoder := u.nativeClass("CommandEncoder")
	commands := u.nativeClass("CommandBuffer")
	u.addMethods(encoder, []nativeMethod{
		{0, u.ptr(ast.StrongPtr, encoder), "CommandEncoder", []ast.Var{{Name: "device", Type: u.ptr(ast.StrongPtr, device)}}, ""},
		{0, u.ptr(ast.StrongPtr, commands), "Finish", nil, ""},
	})
	u.addMethods(queue, []nativeMethod{
		{0, u.ptr(ast.StrongPtr, queue), "Queue", []ast.Var{{Name: "device", Type: u.ptr(ast.StrongPtr, device)}}, ""},
		{0, t.GetVoid(), "Submit", []ast.Var{{Name: "commands", Type: u.ptr(ast.StrongPtr, commands)}}, ""},
	})
}

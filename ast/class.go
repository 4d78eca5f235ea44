package ast

import (
	"fmt"
	"strings"
)

// Var is a declared variable. Every expression denoting the declaration
// holds the same *Var.
type Var struct {
	Name string
	Type Type
}

type Field struct {
	Name  string
	Type  Type
	Index int
	Class *ClassType
}

type ClassType struct {
	Name    string
	Parent  *ClassType
	Fields  []*Field
	Methods []*Method
	// Scope holds nested type aliases. It is nil until the class body is resolved.
	Scope *Scope

	// FormalArgs is non-empty for a class template.
	FormalArgs []*FormalTemplateArg
	// Template and TemplateArgs are set for an instance of a class template.
	Template     *ClassType
	TemplateArgs []Type

	// Native marks a compiler-intrinsic class.
	Native bool
	// Realized is set once an instance's fields and methods have been produced.
	Realized bool
}

func (*ClassType) isType() {}

func (c *ClassType) String() string {
	if c.Template == nil {
		return c.Name
	}
	args := make([]string, len(c.TemplateArgs))
	for i, arg := range c.TemplateArgs {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s<%s>", c.Template.Name, strings.Join(args, ", "))
}

func (c *ClassType) IsTemplate() bool {
	return len(c.FormalArgs) > 0
}

func (c *ClassType) AddField(name string, t Type) *Field {
	f := &Field{Name: name, Type: t, Index: len(c.Fields), Class: c}
	c.Fields = append(c.Fields, f)
	return f
}

// AddMethod appends m with an explicit dispatch index.
func (c *ClassType) AddMethod(m *Method, index int) {
	m.Index = index
	c.Methods = append(c.Methods, m)
}

// FindField searches the class, then its ancestors.
func (c *ClassType) FindField(name string) *Field {
	for class := c; class != nil; class = class.Parent {
		for _, f := range class.Fields {
			if f.Name == name {
				return f
			}
		}
	}
	return nil
}

func (c *ClassType) FindMethod(name string) *Method {
	for class := c; class != nil; class = class.Parent {
		for _, m := range class.Methods {
			if m.Name == name {
				return m
			}
		}
	}
	return nil
}

// FindType looks up a nested type alias.
func (c *ClassType) FindType(name string) Type {
	if c.Scope == nil {
		return nil
	}
	t, _ := c.Scope.LookupType(name)
	return t
}

type Modifier uint

const (
	Static Modifier = 1 << iota
	Virtual
)

type ShaderStage int

const (
	StageNone ShaderStage = iota
	StageVertex
	StageFragment
	StageCompute
)

type Method struct {
	Modifiers  Modifier
	Name       string
	ReturnType Type
	Class      *ClassType
	FormalArgs []*Var
	// DefaultArgs parallels FormalArgs; entries are nil where there is no default.
	DefaultArgs []Expr
	Index       int
	Body        *Stmts

	// TemplateMethod links an instance method to the method it was produced from.
	TemplateMethod *Method
	Stage          ShaderStage

	// Backend payloads for intrinsic methods.
	SPIRV []uint32
	WGSL  string
}

func NewMethod(modifiers Modifier, returnType Type, name string, class *ClassType) *Method {
	return &Method{
		Modifiers:  modifiers,
		ReturnType: returnType,
		Name:       name,
		Class:      class,
	}
}

func (m *Method) AddFormalArg(name string, t Type, defaultValue Expr) *Var {
	v := &Var{Name: name, Type: t}
	m.FormalArgs = append(m.FormalArgs, v)
	m.DefaultArgs = append(m.DefaultArgs, defaultValue)
	return v
}

// IsIntrinsic reports whether the method is implemented by the backend
// rather than by a body.
func (m *Method) IsIntrinsic() bool {
	return m.Body == nil && (len(m.SPIRV) > 0 || m.WGSL != "" || (m.Class != nil && m.Class.Native))
}

func (m *Method) String() string {
	var sb strings.Builder
	if m.Class != nil {
		sb.WriteString(m.Class.String())
		sb.WriteString(".")
	}
	sb.WriteString(m.Name)
	sb.WriteString("(")
	for i, arg := range m.FormalArgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if arg.Type != nil {
			sb.WriteString(arg.Type.String())
			sb.WriteString(" ")
		}
		sb.WriteString(arg.Name)
	}
	sb.WriteString(")")
	return sb.String()
}

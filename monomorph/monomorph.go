// Package monomorph produces concrete classes from class templates.
package monomorph

import (
	"github.com/pontaoski/toucan/ast"
	"github.com/pontaoski/toucan/errors"
)

type binding struct {
	src ast.Type
	dst ast.Type
}

// Pass substitutes types throughout a class template. Bindings form a
// stack so that an instantiation can trigger a nested one.
type Pass struct {
	*ast.CopyVisitor

	Symbols *ast.SymbolTable
	Errors  *errors.List

	bindings []binding
	realized []*ast.ClassType
}

func New(nodes *ast.Arena, symbols *ast.SymbolTable, types *ast.TypeTable, errs *errors.List) *Pass {
	p := &Pass{
		CopyVisitor: ast.NewCopyVisitor(nodes, types),
		Symbols:     symbols,
		Errors:      errs,
	}
	p.Self = p
	p.Resolver = p
	return p
}

// Bind maps src to dst until the matching Unbind.
func (p *Pass) Bind(src, dst ast.Type) {
	p.bindings = append(p.bindings, binding{src, dst})
}

// Unbind pops the n most recent bindings.
func (p *Pass) Unbind(n int) {
	p.bindings = p.bindings[:len(p.bindings)-n]
}

func (p *Pass) lookup(t ast.Type) (ast.Type, bool) {
	for i := len(p.bindings) - 1; i >= 0; i-- {
		if p.bindings[i].src == t {
			return p.bindings[i].dst, true
		}
	}
	return nil, false
}

func (p *Pass) errorf(format string, args ...interface{}) ast.Type {
	p.Errors.Errorf(p.Nodes.Current(), format, args...)
	return nil
}

func (p *Pass) ptr(kind ast.PtrKind, base ast.Type) ast.Type {
	if base == nil {
		return nil
	}
	t, err := p.Types.GetPtrType(kind, base)
	if err != nil {
		return p.errorf("%v", err)
	}
	return t
}

// PushQualifiers applies qualifiers beneath any pointer layers of t.
func (p *Pass) PushQualifiers(t ast.Type, q ast.Qualifier) ast.Type {
	if t == nil {
		return nil
	}
	return p.Types.GetQualifiedType(t, q)
}

// ResolveType returns t with every bound type substituted. Errors are
// recorded and yield nil.
func (p *Pass) ResolveType(t ast.Type) ast.Type {
	if t == nil {
		return nil
	}
	if dst, ok := p.lookup(t); ok {
		return dst
	}
	switch t := t.(type) {
	case *ast.ArrayType:
		elem := p.ResolveType(t.Elem)
		if elem == nil {
			return nil
		}
		return p.Types.GetArrayType(elem, t.NumElements, t.Layout)
	case *ast.VectorType:
		component := p.ResolveType(t.Component)
		if component == nil {
			return nil
		}
		return p.Types.GetVector(component, t.Length)
	case *ast.MatrixType:
		column, ok := p.ResolveType(t.Column).(*ast.VectorType)
		if !ok {
			return p.errorf("matrix column \"%s\" did not resolve to a vector", t.Column)
		}
		return p.Types.GetMatrix(column, t.Columns)
	case *ast.PtrType:
		return p.ptr(t.Kind, p.ResolveType(t.Base))
	case *ast.QualifiedType:
		return p.PushQualifiers(p.ResolveType(t.Base), t.Qualifiers)
	case *ast.ClassType:
		if t.Template == nil {
			return t
		}
		args := make([]ast.Type, len(t.TemplateArgs))
		for i, arg := range t.TemplateArgs {
			if args[i] = p.ResolveType(arg); args[i] == nil {
				return nil
			}
		}
		instance, err := p.Types.GetClassTemplateInstance(t.Template, args)
		if err != nil {
			return p.errorf("%v", err)
		}
		return instance
	case *ast.UnresolvedScopedType:
		base := p.ResolveType(t.Base)
		if base == nil {
			return nil
		}
		class, ok := base.(*ast.ClassType)
		if !ok {
			return p.errorf("\"%s\" is not a class", base)
		}
		found := class.FindType(t.ID)
		if found == nil {
			return p.errorf("Type \"%s\" not found in \"%s\"", t.ID, base)
		}
		return found
	}
	return t
}

func (p *Pass) resolveClass(t ast.Type) *ast.ClassType {
	c, _ := p.ResolveType(t).(*ast.ClassType)
	return c
}

// ResolveClassInstance populates instance from its template, with each
// formal bound to the matching template argument.
func (p *Pass) ResolveClassInstance(instance *ast.ClassType) {
	tmpl := instance.Template
	instance.Realized = true
	p.realized = append(p.realized, instance)

	vars, fields, methods := p.Vars, p.Fields, p.Methods
	p.Vars = make(map[*ast.Var]*ast.Var)
	p.Fields = make(map[*ast.Field]*ast.Field)
	p.Methods = make(map[*ast.Method]*ast.Method)
	defer func() {
		p.Vars, p.Fields, p.Methods = vars, fields, methods
	}()

	for i, formal := range tmpl.FormalArgs {
		p.Bind(formal, instance.TemplateArgs[i])
	}
	p.Bind(tmpl, instance)
	defer p.Unbind(len(tmpl.FormalArgs) + 1)

	if tmpl.Parent != nil {
		instance.Parent = p.resolveClass(tmpl.Parent)
	}

	// The instance lives where its template was declared, not in whatever
	// body requested it.
	declared := p.Symbols.Root()
	if tmpl.Scope != nil {
		declared = tmpl.Scope.Parent
	}
	scope, restore := p.Symbols.PushNewScopeIn(declared)
	defer restore()
	instance.Scope = scope
	instance.Scope.Class = instance

	if tmpl.Scope != nil {
		for _, name := range tmpl.Scope.TypeNames() {
			t, _ := tmpl.Scope.LookupType(name)
			instance.Scope.SetType(name, p.ResolveType(t))
		}
	}

	resolved := make([]*ast.Method, len(tmpl.Methods))
	for i, m := range tmpl.Methods {
		resolved[i] = p.resolveSignature(m)
		instance.AddMethod(resolved[i], m.Index)
	}
	for _, f := range tmpl.Fields {
		p.Fields[f] = instance.AddField(f.Name, p.ResolveType(f.Type))
	}
	for i, m := range tmpl.Methods {
		p.resolveBody(m, resolved[i])
	}
}

// Rollback returns every instance this pass populated to its unrealized
// state, so that a failed instantiation is redone, and fails again, when
// requested later.
func (p *Pass) Rollback() {
	for _, instance := range p.realized {
		instance.Realized = false
		instance.Parent = nil
		instance.Fields = nil
		instance.Methods = nil
		instance.Scope = nil
	}
	p.realized = nil
}

func (p *Pass) resolveSignature(m *ast.Method) *ast.Method {
	out := ast.NewMethod(m.Modifiers, p.ResolveType(m.ReturnType), m.Name, p.resolveClass(m.Class))
	out.TemplateMethod = m
	out.Stage = m.Stage
	out.SPIRV = m.SPIRV
	out.WGSL = m.WGSL
	for i, arg := range m.FormalArgs {
		// Defaults are carried over as written.
		p.Vars[arg] = out.AddFormalArg(arg.Name, p.ResolveType(arg.Type), m.DefaultArgs[i])
	}
	p.Methods[m] = out
	return out
}

func (p *Pass) resolveBody(m, out *ast.Method) {
	if m.Body == nil {
		return
	}
	out.Body = p.ResolveStmts(m.Body)
	if out.Body != nil && out.Body.Scope != nil {
		out.Body.Scope.Method = out
	}
}

// ResolveMethod builds the concrete counterpart of m under the current
// bindings.
func (p *Pass) ResolveMethod(m *ast.Method) *ast.Method {
	out := p.resolveSignature(m)
	p.resolveBody(m, out)
	return out
}

func (p *Pass) VisitStmts(n *ast.Stmts) ast.Result {
	out := p.Nodes.NewStmts()
	if n.Scope != nil {
		out.Scope = p.Symbols.PushNewScope()
		for _, v := range n.Scope.Vars {
			nv, err := p.Symbols.DefineVar(v.Name, p.ResolveType(v.Type))
			if err != nil {
				errors.Raise(errors.ScopeDiscipline, n.Location(), "%v", err)
			}
			p.Vars[v] = nv
		}
		defer p.Symbols.PopScope()
	}
	for _, v := range n.Vars {
		out.AppendVar(p.MapVar(v))
	}
	for _, s := range n.List {
		if stmt := p.ResolveStmt(s); stmt != nil {
			out.Append(stmt)
		}
	}
	return ast.NodeResult(out)
}

// realize returns the concrete counterpart of class, populating it first
// when it is a concrete instance nobody has realized yet.
func (p *Pass) realize(class *ast.ClassType) *ast.ClassType {
	resolved := p.resolveClass(class)
	if resolved == nil || resolved == class {
		return nil
	}
	if resolved.Template != nil && !resolved.Realized && !resolved.Native && !ast.ContainsFormal(resolved) {
		p.ResolveClassInstance(resolved)
	}
	return resolved
}

// VisitMethodCall retargets calls into other instances to the concrete
// instance's method, realizing that instance first if needed.
func (p *Pass) VisitMethodCall(n *ast.MethodCall) ast.Result {
	m := p.MapMethod(n.Method)
	if m == n.Method && m.Class != nil {
		if class := p.realize(m.Class); class != nil {
			for _, candidate := range class.Methods {
				if candidate.Index == m.Index && candidate.Name == m.Name {
					m = candidate
					break
				}
			}
		}
	}
	return ast.NodeResult(p.Nodes.NewMethodCall(m, p.ResolveExprList(n.Args)))
}

func (p *Pass) VisitFieldAccess(n *ast.FieldAccess) ast.Result {
	f := p.MapField(n.Field)
	if f == n.Field && f.Class != nil {
		if class := p.realize(f.Class); class != nil && f.Index < len(class.Fields) {
			f = class.Fields[f.Index]
		}
	}
	return ast.NodeResult(p.Nodes.NewFieldAccess(p.ResolveExpr(n.Expr), f))
}

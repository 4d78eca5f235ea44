package ast

import (
	"fmt"
	"io"

	"github.com/pontaoski/toucan/errors"
	"github.com/pontaoski/toucan/source"
)

// Scope is one node in the tree of lexical scopes.
type Scope struct {
	Parent *Scope
	Vars   []*Var
	// Class is set on a class-body scope.
	Class *ClassType
	// Method is set on the outermost scope of a method body.
	Method *Method

	ids       map[string]Expr
	typeNames []string
	types     map[string]Type
}

func NewScope(parent *Scope) *Scope {
	return &Scope{
		Parent: parent,
		ids:    make(map[string]Expr),
		types:  make(map[string]Type),
	}
}

// SetType binds a type alias. Rebinding keeps the original position.
func (s *Scope) SetType(name string, t Type) {
	if _, ok := s.types[name]; !ok {
		s.typeNames = append(s.typeNames, name)
	}
	s.types[name] = t
}

func (s *Scope) LookupType(name string) (Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// TypeNames returns the alias names in definition order.
func (s *Scope) TypeNames() []string {
	return s.typeNames
}

func (s *Scope) SetID(name string, e Expr) {
	s.ids[name] = e
}

func (s *Scope) LookupID(name string) (Expr, bool) {
	e, ok := s.ids[name]
	return e, ok
}

// LookupVar searches only this scope; the latest declaration wins.
func (s *Scope) LookupVar(name string) *Var {
	for i := len(s.Vars) - 1; i >= 0; i-- {
		if s.Vars[i].Name == name {
			return s.Vars[i]
		}
	}
	return nil
}

// SymbolTable tracks the active scope while a region is being resolved.
type SymbolTable struct {
	current *Scope
	scopes  []*Scope
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// PushNewScope creates a scope under the active one and activates it.
func (st *SymbolTable) PushNewScope() *Scope {
	scope := NewScope(st.current)
	st.scopes = append(st.scopes, scope)
	st.current = scope
	return scope
}

// PushNewScopeIn creates a scope under parent and activates it whatever
// the active scope is. The returned func reactivates the previous scope.
func (st *SymbolTable) PushNewScopeIn(parent *Scope) (*Scope, func()) {
	saved := st.current
	st.current = parent
	scope := st.PushNewScope()
	return scope, func() { st.current = saved }
}

// Root returns the first scope created by the table.
func (st *SymbolTable) Root() *Scope {
	if len(st.scopes) == 0 {
		return nil
	}
	return st.scopes[0]
}

// PushScope reactivates an existing scope. Its parent must be the active scope.
func (st *SymbolTable) PushScope(scope *Scope) {
	if scope == nil {
		errors.Raise(errors.ScopeDiscipline, source.Location{}, "pushed a nil scope")
	}
	if scope.Parent != st.current {
		errors.Raise(errors.ScopeDiscipline, source.Location{}, "pushed scope whose parent is not the active scope")
	}
	st.current = scope
}

// PopScope restores the parent of the active scope and returns the popped
// scope. Its contents stay valid for any node still referencing it.
func (st *SymbolTable) PopScope() *Scope {
	back := st.current
	if back != nil {
		st.current = back.Parent
	}
	return back
}

func (st *SymbolTable) PeekScope() *Scope {
	return st.current
}

// FindID returns the nearest expression bound to identifier, or nil.
func (st *SymbolTable) FindID(identifier string) Expr {
	for scope := st.current; scope != nil; scope = scope.Parent {
		if e, ok := scope.LookupID(identifier); ok {
			return e
		}
	}
	return nil
}

func (st *SymbolTable) DefineID(identifier string, e Expr) error {
	if st.current == nil {
		return errors.ErrNoScope
	}
	st.current.SetID(identifier, e)
	return nil
}

// DefineVar declares a variable in the active scope.
func (st *SymbolTable) DefineVar(identifier string, t Type) (*Var, error) {
	if st.current == nil {
		return nil, errors.ErrNoScope
	}
	v := &Var{Name: identifier, Type: t}
	st.current.Vars = append(st.current.Vars, v)
	return v, nil
}

func (st *SymbolTable) DefineType(identifier string, t Type) error {
	if st.current == nil {
		return errors.ErrNoScope
	}
	st.current.SetType(identifier, t)
	return nil
}

func (st *SymbolTable) FindType(identifier string) Type {
	for scope := st.current; scope != nil; scope = scope.Parent {
		if t, ok := scope.LookupType(identifier); ok {
			return t
		}
	}
	return nil
}

// FindVar walks outward from the active scope. Formal arguments are not
// scope locals: a method-body scope without a match checks its method's
// argument list before the walk continues.
func (st *SymbolTable) FindVar(identifier string) *Var {
	for scope := st.current; scope != nil; scope = scope.Parent {
		if v := scope.LookupVar(identifier); v != nil {
			return v
		}
		if scope.Method != nil {
			for _, arg := range scope.Method.FormalArgs {
				if arg.Name == identifier {
					return arg
				}
			}
		}
	}
	return nil
}

// FindField resolves an implicitly self-qualified field through the
// nearest enclosing class scope.
func (st *SymbolTable) FindField(identifier string) *Field {
	for scope := st.current; scope != nil; scope = scope.Parent {
		if scope.Class != nil {
			return scope.Class.FindField(identifier)
		}
	}
	return nil
}

// Dump writes every scope created by the table.
func (st *SymbolTable) Dump(w io.Writer) {
	for _, scope := range st.scopes {
		fmt.Fprintf(w, "Scope:\n")
		for _, v := range scope.Vars {
			fmt.Fprintf(w, "  %s %s;\n", v.Type, v.Name)
		}
		for _, name := range scope.typeNames {
			switch scope.types[name].(type) {
			case *ClassType:
				fmt.Fprintf(w, "  class %s;\n", name)
			case *EnumType:
				fmt.Fprintf(w, "  enum %s;\n", name)
			}
		}
	}
}

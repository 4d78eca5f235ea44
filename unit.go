// Package toucan ties the type table, node arena and symbol table of one
// compilation unit together and runs the middle-end passes over it.
package toucan

import (
	"fmt"
	"log"
	"os"

	"github.com/pontaoski/toucan/ast"
	"github.com/pontaoski/toucan/config"
	"github.com/pontaoski/toucan/errors"
	"github.com/pontaoski/toucan/legalize"
	"github.com/pontaoski/toucan/monomorph"
)

// maxRealizations bounds the instances one Instantiate call may realize,
// catching templates that request ever larger instances of themselves.
const maxRealizations = 4096

// Unit is the state of one compilation. Units share nothing, so
// independent compilations may run side by side; a single Unit must not
// be used from more than one goroutine.
type Unit struct {
	Config  config.Config
	Types   *ast.TypeTable
	Nodes   *ast.Arena
	Symbols *ast.SymbolTable
	Errors  *errors.List

	// Root is the outermost scope, holding the prelude.
	Root *ast.Scope
}

func NewUnit(cfg config.Config) *Unit {
	u := &Unit{
		Config:  cfg,
		Types:   ast.NewTypeTable(),
		Nodes:   ast.NewArena(),
		Symbols: ast.NewSymbolTable(),
		Errors:  &errors.List{},
	}
	if cfg.Verbose {
		u.Errors.Logger = log.New(os.Stderr, cfg.Package+": ", 0)
	}
	u.Root = u.Symbols.PushNewScope()
	u.definePrelude()
	return u
}

// Err reports every resolution error recorded so far.
func (u *Unit) Err() error {
	return u.Errors.Err()
}

func (u *Unit) since(before int) error {
	errs := u.Errors.Errors()
	if len(errs) == before {
		return nil
	}
	return append(errors.ErrorList(nil), errs[before:]...)
}

func (u *Unit) checkDepth(body *ast.Stmts) {
	if body == nil || u.Config.MaxDepth <= 0 {
		return
	}
	if ast.MaxDepth(body, u.Config.MaxDepth) > u.Config.MaxDepth {
		errors.Raise(errors.DepthExceeded, body.Location(), "method body is nested deeper than %d", u.Config.MaxDepth)
	}
}

// Instantiate returns the concrete instance of tmpl for args, realizing it
// and every concrete instance it requests. On failure the errors are also
// left in u.Errors, which blocks later passes.
func (u *Unit) Instantiate(tmpl *ast.ClassType, args ...ast.Type) (instance *ast.ClassType, err error) {
	defer errors.Recover(&err)

	before := u.Errors.Count()
	instance, err = u.Types.GetClassTemplateInstance(tmpl, args)
	if err != nil {
		u.Errors.Add(err.(*errors.ResolutionError))
		return nil, u.since(before)
	}
	if instance.Realized || instance.Native {
		return instance, nil
	}
	for _, m := range tmpl.Methods {
		u.checkDepth(m.Body)
	}

	pass := monomorph.New(u.Nodes, u.Symbols, u.Types, u.Errors)
	pass.MaxDepth = u.Config.MaxDepth
	done := false
	defer func() {
		if !done {
			pass.Rollback()
		}
	}()
	pass.ResolveClassInstance(instance)
	for realized := 1; u.Errors.Count() == before; realized++ {
		pending := u.Types.PendingInstances()
		if len(pending) == 0 {
			break
		}
		if realized >= maxRealizations {
			u.Errors.Errorf(u.Nodes.Current(), "instantiating \"%s\" requested more than %d instances", instance, maxRealizations)
			break
		}
		pass.ResolveClassInstance(pending[0])
	}

	if err := u.since(before); err != nil {
		return nil, err
	}
	done = true
	return instance, nil
}

// Legalize rewrites the body of m for a pointer-restricted target. It
// refuses to run while the unit has outstanding errors.
func (u *Unit) Legalize(m *ast.Method) (body *ast.Stmts, err error) {
	if n := u.Errors.Count(); n > 0 {
		return nil, fmt.Errorf("%d unresolved errors: %w", n, u.Errors.Err())
	}
	if m.Body == nil {
		return nil, nil
	}
	defer errors.Recover(&err)
	u.checkDepth(m.Body)

	pass := legalize.New(u.Nodes, u.Types)
	pass.MaxDepth = u.Config.MaxDepth
	return pass.Run(m.Body)
}

// LegalizeClass legalizes every method of class that has a body, in
// declaration order.
func (u *Unit) LegalizeClass(class *ast.ClassType) error {
	for _, m := range class.Methods {
		body, err := u.Legalize(m)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		if body != nil {
			m.Body = body
		}
	}
	return nil
}

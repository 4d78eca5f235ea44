package errors

import (
	"fmt"
	"log"
	"strings"

	"github.com/pontaoski/toucan/source"
	"github.com/ztrue/tracerr"
)

// ErrNoScope is returned when a definition is attempted with no active scope.
var ErrNoScope = fmt.Errorf("no active scope")

// ResolutionError is a user-facing error found while resolving types.
type ResolutionError struct {
	Message  string
	Location source.Location
}

func (e *ResolutionError) Error() string {
	if !e.Location.IsValid() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// Errorf builds a ResolutionError without recording it anywhere.
func Errorf(loc source.Location, format string, args ...interface{}) *ResolutionError {
	return &ResolutionError{
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	}
}

// ErrorList is the error value of a failed pass.
type ErrorList []*ResolutionError

func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", el[0].Error(), len(el)-1)
}

// FormatAll returns every error, one per line.
func (el ErrorList) FormatAll() string {
	var sb strings.Builder
	for i, e := range el {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// List accumulates resolution errors for one pass invocation.
// Execution continues after an error is recorded; the pass fails if
// Count is nonzero once it finishes.
type List struct {
	// Logger, if set, receives each error as it is recorded.
	Logger *log.Logger

	errs ErrorList
}

func (l *List) Add(err *ResolutionError) {
	l.errs = append(l.errs, err)
	if l.Logger != nil {
		l.Logger.Println(err.Error())
	}
}

func (l *List) Errorf(loc source.Location, format string, args ...interface{}) *ResolutionError {
	err := Errorf(loc, format, args...)
	l.Add(err)
	return err
}

func (l *List) Count() int {
	return len(l.errs)
}

func (l *List) Errors() ErrorList {
	return l.errs
}

// Err returns nil if nothing was recorded.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	out := make(ErrorList, len(l.errs))
	copy(out, l.errs)
	return out
}

// FaultKind classifies internal consistency failures.
type FaultKind int

const (
	// UnhandledNode means a pass reached its fallback for a kind it cannot process.
	UnhandledNode FaultKind = iota
	// ScopeDiscipline means a scope was pushed under the wrong parent.
	ScopeDiscipline
	// DepthExceeded means traversal went deeper than the configured guard.
	DepthExceeded
)

func (k FaultKind) String() string {
	return map[FaultKind]string{
		UnhandledNode:   "unhandled node kind",
		ScopeDiscipline: "scope discipline violation",
		DepthExceeded:   "nesting depth exceeded",
	}[k]
}

// Fault is a defect in a pass or its caller. Faults are raised with panic
// and abort processing of the unit; see Recover.
type Fault struct {
	Kind     FaultKind
	Message  string
	Location source.Location
}

func (f *Fault) Error() string {
	if !f.Location.IsValid() {
		return fmt.Sprintf("internal error: %s: %s", f.Kind, f.Message)
	}
	return fmt.Sprintf("%s: internal error: %s: %s", f.Location, f.Kind, f.Message)
}

// Raise panics with a new Fault.
func Raise(kind FaultKind, loc source.Location, format string, args ...interface{}) {
	panic(&Fault{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	})
}

// Recover converts a raised Fault into an error carrying a stack trace.
// It must be deferred directly. Panics that are not faults are re-raised.
func Recover(err *error) {
	if r := recover(); r != nil {
		fault, ok := r.(*Fault)
		if !ok {
			panic(r)
		}
		*err = tracerr.Wrap(fault)
	}
}

// AsFault extracts the Fault from an error produced by Recover.
func AsFault(err error) (*Fault, bool) {
	if err == nil {
		return nil, false
	}
	fault, ok := tracerr.Unwrap(err).(*Fault)
	return fault, ok
}

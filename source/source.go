package source

import "fmt"

// Location is the file and line a node was created from.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	file := l.File
	if file == "" {
		file = "<unknown>"
	}
	return fmt.Sprintf("%s:%d", file, l.Line)
}

// IsValid reports whether the location names a real source line.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// Tracker holds the location newly created nodes are stamped with.
type Tracker struct {
	current Location
}

func (t *Tracker) Current() Location {
	return t.current
}

// Enter makes loc the current location until the returned func is called.
func (t *Tracker) Enter(loc Location) (restore func()) {
	prev := t.current
	t.current = loc
	return func() {
		t.current = prev
	}
}

// Package reader loads data exported by compiled toucan libraries.
package reader

import "github.com/coreos/pkg/dlopen"

import "C"

// ReadSymbol opens the shared library at from and returns the
// NUL-terminated string stored in the named global.
func ReadSymbol(from, symbol string) (string, error) {
	handle, err := dlopen.GetHandle([]string{from})
	if err != nil {
		return "", err
	}
	defer handle.Close()

	sym, err := handle.GetSymbolPointer(symbol)
	if err != nil {
		return "", err
	}

	str := C.GoString((*C.char)(sym))
	return str, nil
}

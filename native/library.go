package native

// Symbols resolves exported symbols of a loaded shared library.
type Symbols interface {
	Lookup(name string) (uintptr, error)
}

// Library is a loaded shared library that can be released.
type Library interface {
	Symbols
	Close() error
}

// Binder stores a callable Go function for the native function at addr
// into fptr, which must be a pointer to a func variable.
// RegisterFunc is the production Binder.
type Binder func(fptr any, addr uintptr)

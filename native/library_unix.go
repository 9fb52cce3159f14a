//go:build darwin || freebsd || linux

package native

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
)

// SharedLibrary is a dlopen handle to the RenderDoc library.
type SharedLibrary struct {
	name   string
	handle uintptr
}

// DefaultLibraryName returns the platform-conventional file name of the
// RenderDoc in-application library. It is resolved through the dynamic
// loader's normal search path.
func DefaultLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "librenderdoc.dylib"
	}
	return "librenderdoc.so"
}

// OpenLibrary loads the library at path, or DefaultLibraryName when path
// is empty. If RenderDoc already injected itself into the process the
// loader hands back the existing image.
func OpenLibrary(path string) (*SharedLibrary, error) {
	if path == "" {
		path = DefaultLibraryName()
	}

	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "OpenLibrary",
			"package":  "native",
			"library":  path,
			"error":    err.Error(),
		}).Debug("dlopen failed")
		return nil, fmt.Errorf("%w: %s: %w", ErrLibraryNotFound, path, err)
	}

	return &SharedLibrary{name: path, handle: h}, nil
}

// Name returns the path the library was opened with.
func (so *SharedLibrary) Name() string {
	return so.name
}

// Lookup returns the address of the named symbol.
func (so *SharedLibrary) Lookup(name string) (uintptr, error) {
	addr, err := purego.Dlsym(so.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrEntryPointNotFound, name, err)
	}
	if addr == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEntryPointNotFound, name)
	}
	return addr, nil
}

// Close releases this process's reference to the library.
func (so *SharedLibrary) Close() error {
	return purego.Dlclose(so.handle)
}

// RegisterFunc binds fptr to the C function at addr.
func RegisterFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

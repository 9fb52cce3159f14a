//go:build windows

package native

import (
	"fmt"

	"github.com/ebitengine/purego"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

// SharedLibrary is a module handle to renderdoc.dll.
type SharedLibrary struct {
	name   string
	handle windows.Handle
}

// DefaultLibraryName returns the file name of the RenderDoc
// in-application library, resolved through the DLL search order.
func DefaultLibraryName() string {
	return "renderdoc.dll"
}

// OpenLibrary loads the library at path, or DefaultLibraryName when path
// is empty. An injected renderdoc.dll is reused and its reference count
// incremented.
func OpenLibrary(path string) (*SharedLibrary, error) {
	if path == "" {
		path = DefaultLibraryName()
	}

	h, err := windows.LoadLibrary(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function": "OpenLibrary",
			"package":  "native",
			"library":  path,
			"error":    err.Error(),
		}).Debug("LoadLibrary failed")
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
	addr, err := windows.GetProcAddress(so.handle, name)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrEntryPointNotFound, name, err)
	}
	return addr, nil
}

// Close releases this process's reference to the library.
func (so *SharedLibrary) Close() error {
	return windows.FreeLibrary(so.handle)
}

// RegisterFunc binds fptr to the C function at addr.
func RegisterFunc(fptr any, addr uintptr) {
	purego.RegisterFunc(fptr, addr)
}

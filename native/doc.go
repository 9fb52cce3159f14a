// Package native implements the process boundary to the RenderDoc
// in-application API.
//
// # Overview
//
// RenderDoc ships a shared library (librenderdoc.so, librenderdoc.dylib,
// renderdoc.dll) that exports a single function, RENDERDOC_GetAPI. Every
// other capability is reached through a table of function pointers that
// GetAPI hands back for a requested API version. This package owns the
// three pieces needed to get from a library name to callable Go
// functions:
//
//   - [OpenLibrary] loads the shared library through the platform loader
//     (purego's dlopen on unix, LoadLibrary on Windows).
//   - [APITable] mirrors struct RENDERDOC_API_1_6_0 field for field.
//   - [Handshake] performs the GetAPI negotiation, verifies the table
//     reports exactly version 1.6.0 and binds [EntryPoints].
//
// # Usage
//
//	lib, err := native.OpenLibrary("")
//	if err != nil {
//	    return err
//	}
//	entry, version, err := native.Handshake(lib, native.RegisterFunc, nil)
//	if err != nil {
//	    lib.Close()
//	    return err
//	}
//	entry.TriggerCapture()
//
// Most programs use the root renderdoc package instead, which wraps these
// steps with lifecycle and option handling.
//
// # Binding
//
// A [Binder] installs a Go func for a native address. [RegisterFunc] uses
// purego.RegisterFunc. Tests substitute a Binder that installs plain Go
// closures, which lets the full handshake run without the native library
// (see package renderdoctest).
//
// # Errors
//
// Failures are classified with errors.Is against [ErrLibraryNotFound],
// [ErrEntryPointNotFound], [ErrHandshakeRejected] and
// [ErrIncompatibleVersion].
package native

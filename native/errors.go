package native

import "errors"

// Sentinel errors for library discovery and the GetAPI handshake.
// Callers classify failures with errors.Is().
var (
	// ErrLibraryNotFound indicates the shared library could not be loaded.
	ErrLibraryNotFound = errors.New("renderdoc library not found")

	// ErrEntryPointNotFound indicates a required symbol or table slot is missing.
	ErrEntryPointNotFound = errors.New("renderdoc entry point not found")

	// ErrHandshakeRejected indicates RENDERDOC_GetAPI did not return success.
	ErrHandshakeRejected = errors.New("renderdoc GetAPI handshake rejected")

	// ErrIncompatibleVersion indicates the table reports a version other than 1.6.0.
	ErrIncompatibleVersion = errors.New("incompatible renderdoc API version")
)

package renderdoc

import (
	"errors"

	"github.com/opd-ai/renderdoc/native"
)

// Open errors. These are fatal: Open returns no RenderDoc when any of
// them occurs. The values are shared with package native so errors.Is()
// works on either.
var (
	// ErrLibraryNotFound indicates the RenderDoc shared library could not be loaded.
	ErrLibraryNotFound = native.ErrLibraryNotFound

	// ErrEntryPointNotFound indicates RENDERDOC_GetAPI or a table slot is missing.
	ErrEntryPointNotFound = native.ErrEntryPointNotFound

	// ErrHandshakeRejected indicates RENDERDOC_GetAPI returned a failure code.
	ErrHandshakeRejected = native.ErrHandshakeRejected

	// ErrIncompatibleVersion indicates the library does not report API 1.6.0.
	ErrIncompatibleVersion = native.ErrIncompatibleVersion
)

// Usage errors.
var (
	// ErrClosed indicates a method was called after Close.
	ErrClosed = errors.New("renderdoc is closed")

	// ErrUnknownOption indicates an OptionKind outside the supported set.
	ErrUnknownOption = errors.New("unrecognized capture option")
)

// Option errors.
var (
	// ErrOptionRejected indicates RenderDoc refused to set or report an option.
	ErrOptionRejected = errors.New("capture option rejected by renderdoc")

	// ErrOptionValueOutOfRange indicates a value that cannot be represented natively.
	ErrOptionValueOutOfRange = errors.New("capture option value out of range")
)

// Capture errors.
var (
	// ErrInvalidPath indicates an empty path or one containing a NUL byte.
	ErrInvalidPath = errors.New("invalid capture path")

	// ErrCaptureNotFound indicates no capture exists at the requested index.
	ErrCaptureNotFound = errors.New("capture not found")

	// ErrNotCapturing indicates EndFrameCapture or DiscardFrameCapture
	// found no frame capture in progress.
	ErrNotCapturing = errors.New("no frame capture in progress")

	// ErrInvalidFrameCount indicates a multi-frame capture of zero frames.
	ErrInvalidFrameCount = errors.New("frame count must be positive")
)

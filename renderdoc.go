package renderdoc

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/opd-ai/renderdoc/native"
	"github.com/sirupsen/logrus"
)

// Version is the RenderDoc API version reported by the library.
type Version = native.Version

// RenderDoc is an open session with the RenderDoc in-application API.
//
// Methods perform one synchronous call into the library. RenderDoc adds
// no locking of its own; concurrent calls reach the library concurrently
// and are subject to its thread-safety. After Close every method returns
// ErrClosed.
type RenderDoc struct {
	library native.Library
	api     *native.EntryPoints
	version Version
	logger  *logrus.Logger
	closed  atomic.Bool
}

// Open loads RenderDoc from the platform-conventional library name and
// negotiates API 1.6.0.
func Open() (*RenderDoc, error) {
	return OpenWithOptions(NewOptions())
}

// OpenWithOptions loads RenderDoc as configured by opts and negotiates
// API 1.6.0. On failure the library is released and no RenderDoc is
// returned; the error matches one of ErrLibraryNotFound,
// ErrEntryPointNotFound, ErrHandshakeRejected or ErrIncompatibleVersion.
func OpenWithOptions(opts *Options) (*RenderDoc, error) {
	logger := newLogger(opts.logger(), "OpenWithOptions")
	logger.Entry()

	lib, err := native.OpenLibrary(opts.libraryPath())
	if err != nil {
		logger.WithError(err, "load_library").Warn("Failed to load RenderDoc library")
		return nil, fmt.Errorf("renderdoc: open: %w", err)
	}
	return OpenFrom(lib, native.RegisterFunc, opts)
}

func (o *Options) libraryPath() string {
	if o == nil {
		return ""
	}
	return o.LibraryPath
}

// OpenFrom negotiates API 1.6.0 with an already loaded library, binding
// call-throughs with bind (native.RegisterFunc for a real library). The
// returned RenderDoc owns lib. On failure lib is closed, including when
// bind panics.
func OpenFrom(lib native.Library, bind native.Binder, opts *Options) (rd *RenderDoc, err error) {
	logger := newLogger(opts.logger(), "OpenFrom")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: binding failed: %v", ErrEntryPointNotFound, r)
		}
		if err == nil {
			return
		}
		if cerr := lib.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close library: %w", cerr))
		}
		logger.WithError(err, "handshake").Error("Failed to open RenderDoc")
		rd, err = nil, fmt.Errorf("renderdoc: open: %w", err)
	}()

	entry, version, err := native.Handshake(lib, bind, opts.logger())
	if err != nil {
		return nil, err
	}

	logger.WithField("version", version.String()).Debug("RenderDoc API ready")
	return &RenderDoc{
		library: lib,
		api:     entry,
		version: version,
		logger:  opts.logger(),
	}, nil
}

// Close releases the library. Only the first call has an effect; later
// calls return nil.
func (r *RenderDoc) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	newLogger(r.logger, "Close").Debug("Releasing RenderDoc library")
	if err := r.library.Close(); err != nil {
		return fmt.Errorf("renderdoc: close: %w", err)
	}
	return nil
}

// Closed reports whether Close has been called.
func (r *RenderDoc) Closed() bool {
	return r.closed.Load()
}

func (r *RenderDoc) checkOpen(op string) error {
	if r.closed.Load() {
		return fmt.Errorf("renderdoc: %s: %w", op, ErrClosed)
	}
	return nil
}

// APIVersion returns the version negotiated at Open.
func (r *RenderDoc) APIVersion() Version {
	return r.version
}

// SetOption sets a capture option. Boolean options are sent as 1 or 0.
func (r *RenderDoc) SetOption(opt CaptureOption) error {
	if err := r.checkOpen("set option"); err != nil {
		return err
	}
	id, value, err := encodeOption(opt)
	if err != nil {
		return fmt.Errorf("renderdoc: set option: %w", err)
	}

	newLogger(r.logger, "SetOption").
		WithField("option", opt.Kind().String()).
		WithField("value", value).
		Debug("Setting capture option")

	if r.api.SetCaptureOptionU32(id, value) != 1 {
		return fmt.Errorf("renderdoc: set option %s: %w", opt.Kind(), ErrOptionRejected)
	}
	return nil
}

// SetOptions sets each option in order, stopping at the first error.
func (r *RenderDoc) SetOptions(opts ...CaptureOption) error {
	for _, opt := range opts {
		if err := r.SetOption(opt); err != nil {
			return err
		}
	}
	return nil
}

// Option reads the current value of the option of the given kind.
func (r *RenderDoc) Option(kind OptionKind) (CaptureOption, error) {
	if err := r.checkOpen("get option"); err != nil {
		return nil, err
	}
	id, err := kind.NativeID()
	if err != nil {
		return nil, fmt.Errorf("renderdoc: get option: %w", err)
	}

	raw := r.api.GetCaptureOptionU32(id)
	if raw == native.InvalidOptionU32 {
		return nil, fmt.Errorf("renderdoc: get option %s: %w", kind, ErrOptionRejected)
	}
	return decodeOption(kind, raw)
}

// SetOptionF32 sets an option through RenderDoc's float accessor. Boolean
// options treat any non-zero value as enabled.
func (r *RenderDoc) SetOptionF32(kind OptionKind, value float32) error {
	if err := r.checkOpen("set option"); err != nil {
		return err
	}
	id, err := kind.NativeID()
	if err != nil {
		return fmt.Errorf("renderdoc: set option: %w", err)
	}
	if r.api.SetCaptureOptionF32(id, value) != 1 {
		return fmt.Errorf("renderdoc: set option %s: %w", kind, ErrOptionRejected)
	}
	return nil
}

// OptionF32 reads an option through RenderDoc's float accessor.
func (r *RenderDoc) OptionF32(kind OptionKind) (float32, error) {
	if err := r.checkOpen("get option"); err != nil {
		return 0, err
	}
	id, err := kind.NativeID()
	if err != nil {
		return 0, fmt.Errorf("renderdoc: get option: %w", err)
	}
	v := r.api.GetCaptureOptionF32(id)
	if v == native.InvalidOptionF32 {
		return 0, fmt.Errorf("renderdoc: get option %s: %w", kind, ErrOptionRejected)
	}
	return v, nil
}

// SetCaptureFilePathTemplate sets the path prefix for new captures.
// RenderDoc appends a frame number and extension to it.
func (r *RenderDoc) SetCaptureFilePathTemplate(path string) error {
	if err := r.checkOpen("set capture path"); err != nil {
		return err
	}
	if err := validatePath(path); err != nil {
		return fmt.Errorf("renderdoc: set capture path: %w", err)
	}
	newLogger(r.logger, "SetCaptureFilePathTemplate").
		WithField("path", path).
		Debug("Setting capture path template")
	r.api.SetCaptureFilePathTemplate(path)
	return nil
}

// CaptureFilePathTemplate returns the current path template. The boolean
// is false when RenderDoc has none configured. RenderDoc may return the
// path in a different but equivalent form from the one set.
func (r *RenderDoc) CaptureFilePathTemplate() (string, bool, error) {
	if err := r.checkOpen("get capture path"); err != nil {
		return "", false, err
	}
	path := r.api.GetCaptureFilePathTemplate()
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.IndexByte(path, 0) >= 0 {
		return fmt.Errorf("%w: path contains NUL", ErrInvalidPath)
	}
	return nil
}

package renderdoc

import (
	"errors"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/opd-ai/renderdoc/native"
	"github.com/opd-ai/renderdoc/renderdoctest"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietOptions() *Options {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	opts := NewOptions()
	opts.Logger = logger
	return opts
}

// newTestRenderDoc opens a RenderDoc backed by the simulated library.
func newTestRenderDoc(t *testing.T) (*RenderDoc, *renderdoctest.Library) {
	t.Helper()
	lib := renderdoctest.New()
	rd, err := OpenFrom(lib, lib.Bind, quietOptions())
	require.NoError(t, err)
	t.Cleanup(func() { rd.Close() })
	return rd, lib
}

func TestOpenFromNegotiatesVersion(t *testing.T) {
	rd, _ := newTestRenderDoc(t)
	assert.Equal(t, Version{Major: 1, Minor: 6, Patch: 0}, rd.APIVersion())
	assert.False(t, rd.Closed())
}

func TestOpenFromFailuresReleaseLibrary(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(*renderdoctest.Library)
		wantErr error
	}{
		{"missing entry symbol", func(l *renderdoctest.Library) { l.RemoveSymbol(native.GetAPISymbol) }, ErrEntryPointNotFound},
		{"handshake rejected", func(l *renderdoctest.Library) { l.SetGetAPIResult(-1) }, ErrHandshakeRejected},
		{"version mismatch", func(l *renderdoctest.Library) { l.SetVersion(1, 5, 0) }, ErrIncompatibleVersion},
		{"missing table slot", func(l *renderdoctest.Library) { l.ClearSlot("GetNumCaptures") }, ErrEntryPointNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lib := renderdoctest.New()
			tt.setup(lib)

			rd, err := OpenFrom(lib, lib.Bind, quietOptions())
			require.Error(t, err)
			assert.Nil(t, rd)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, lib.CloseCount())
		})
	}
}

func TestOpenFromJoinsCloseError(t *testing.T) {
	lib := renderdoctest.New()
	lib.SetVersion(2, 0, 0)
	closeErr := errors.New("dlclose failed")
	lib.SetCloseError(closeErr)

	rd, err := OpenFrom(lib, lib.Bind, quietOptions())
	assert.Nil(t, rd)
	assert.ErrorIs(t, err, ErrIncompatibleVersion)
	assert.ErrorIs(t, err, closeErr)
}

func TestOpenFromRecoversBinderPanic(t *testing.T) {
	lib := renderdoctest.New()
	bind := func(any, uintptr) { panic("unsupported signature") }

	rd, err := OpenFrom(lib, bind, quietOptions())
	assert.Nil(t, rd)
	assert.ErrorIs(t, err, ErrEntryPointNotFound)
	assert.Contains(t, err.Error(), "unsupported signature")
	assert.Equal(t, 1, lib.CloseCount())
}

func TestOpenWithOptionsMissingLibrary(t *testing.T) {
	opts := quietOptions()
	opts.LibraryPath = filepath.Join(t.TempDir(), "missing-renderdoc")

	rd, err := OpenWithOptions(opts)
	assert.Nil(t, rd)
	assert.ErrorIs(t, err, ErrLibraryNotFound)
}

func TestCloseIsIdempotent(t *testing.T) {
	rd, lib := newTestRenderDoc(t)

	require.NoError(t, rd.Close())
	require.NoError(t, rd.Close())
	assert.True(t, rd.Closed())
	assert.Equal(t, 1, lib.CloseCount())
}

func TestCloseConcurrent(t *testing.T) {
	rd, lib := newTestRenderDoc(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rd.Close())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, lib.CloseCount())
}

func TestCloseReportsLibraryError(t *testing.T) {
	rd, lib := newTestRenderDoc(t)
	lib.SetCloseError(errors.New("busy"))

	err := rd.Close()
	assert.ErrorContains(t, err, "busy")
	assert.NoError(t, rd.Close())
}

func TestUseAfterClose(t *testing.T) {
	rd, lib := newTestRenderDoc(t)
	require.NoError(t, rd.Close())

	calls := map[string]func() error{
		"TriggerCapture":             rd.TriggerCapture,
		"TriggerMultiFrameCapture":   func() error { return rd.TriggerMultiFrameCapture(2) },
		"NumCaptures":                func() error { _, err := rd.NumCaptures(); return err },
		"Capture":                    func() error { _, err := rd.Capture(0); return err },
		"Captures":                   func() error { _, err := rd.Captures(); return err },
		"CaptureFilePathTemplate":    func() error { _, _, err := rd.CaptureFilePathTemplate(); return err },
		"SetCaptureFilePathTemplate": func() error { return rd.SetCaptureFilePathTemplate("/tmp/x") },
		"SetOption":                  func() error { return rd.SetOption(APIValidation{Enabled: true}) },
		"SetOptions":                 func() error { return rd.SetOptions(APIValidation{Enabled: true}) },
		"Option":                     func() error { _, err := rd.Option(KindAPIValidation); return err },
		"SetOptionF32":               func() error { return rd.SetOptionF32(KindSoftMemoryLimit, 1) },
		"OptionF32":                  func() error { _, err := rd.OptionF32(KindSoftMemoryLimit); return err },
		"StartFrameCapture":          rd.StartFrameCapture,
		"IsFrameCapturing":           func() error { _, err := rd.IsFrameCapturing(); return err },
		"EndFrameCapture":            rd.EndFrameCapture,
		"DiscardFrameCapture":        rd.DiscardFrameCapture,
		"IsTargetControlConnected":   func() error { _, err := rd.IsTargetControlConnected(); return err },
		"SetCaptureTitle":            func() error { return rd.SetCaptureTitle("t") },
		"SetCaptureFileComments":     func() error { return rd.SetCaptureFileComments("", "c") },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrClosed)
		})
	}
	assert.Equal(t, 0, lib.TriggerCount())
}

func TestCaptureFilePathTemplate(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	path, ok, err := rd.CaptureFilePathTemplate()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)

	want := filepath.Join(t.TempDir(), "captures", "frame")
	require.NoError(t, rd.SetCaptureFilePathTemplate(want))

	path, ok, err = rd.CaptureFilePathTemplate()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, path)
}

func TestSetCaptureFilePathTemplateInvalid(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	assert.ErrorIs(t, rd.SetCaptureFilePathTemplate(""), ErrInvalidPath)
	assert.ErrorIs(t, rd.SetCaptureFilePathTemplate("bad\x00path"), ErrInvalidPath)

	_, ok, err := rd.CaptureFilePathTemplate()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv(LibraryPathEnv, "/opt/renderdoc/lib/librenderdoc.so")

	opts := OptionsFromEnv()
	assert.Equal(t, "/opt/renderdoc/lib/librenderdoc.so", opts.LibraryPath)
	assert.Same(t, logrus.StandardLogger(), opts.Logger)
}

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	assert.Empty(t, opts.LibraryPath)
	assert.NotNil(t, opts.Logger)

	var nilOpts *Options
	assert.Same(t, logrus.StandardLogger(), nilOpts.logger())
	assert.Empty(t, nilOpts.libraryPath())
}

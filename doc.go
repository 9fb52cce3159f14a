// Package renderdoc binds the RenderDoc in-application capture API.
//
// RenderDoc is a graphics debugger. When a program runs under RenderDoc,
// or loads its library itself, the in-application API lets the program
// trigger frame captures, choose where capture files go, and tune capture
// behaviour. This package loads that library at runtime without cgo,
// negotiates API version 1.6.0, and exposes the calls as Go methods.
//
// # Getting Started
//
//	rd, err := renderdoc.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rd.Close()
//
//	if err := rd.SetCaptureFilePathTemplate("/tmp/captures/frame"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := rd.SetOption(renderdoc.APIValidation{Enabled: true}); err != nil {
//	    log.Fatal(err)
//	}
//	rd.TriggerCapture()
//
// # Opening
//
// [Open] searches for librenderdoc.so, librenderdoc.dylib or renderdoc.dll
// through the platform loader. [OpenWithOptions] accepts an explicit
// library path and a logrus logger; [OptionsFromEnv] reads the path from
// RENDERDOC_LIBRARY. Opening fails, releasing anything it loaded, when the
// library is missing ([ErrLibraryNotFound]), does not export
// RENDERDOC_GetAPI ([ErrEntryPointNotFound]), refuses the request
// ([ErrHandshakeRejected]) or reports an API other than exactly 1.6.0
// ([ErrIncompatibleVersion]).
//
// # Capture Options
//
// Options are values of a closed set of types implementing
// [CaptureOption]. Each has an [OptionKind] used to read it back:
//
//	rd.SetOption(renderdoc.DelayForDebugger{Delay: 5 * time.Second})
//	opt, err := rd.Option(renderdoc.KindDelayForDebugger)
//	delay := opt.(renderdoc.DelayForDebugger).Delay
//
// An OptionKind outside the set yields [ErrUnknownOption].
//
// # Lifecycle
//
// [RenderDoc.Close] releases the library exactly once and may be called
// repeatedly. Every other method returns [ErrClosed] afterwards. RenderDoc
// adds no locking around library calls; their thread-safety is that of
// RenderDoc itself.
//
// # Profiles
//
// Package profile loads capture options and a path template from YAML
// and applies them to an open RenderDoc.
package renderdoc

package native

import (
	"fmt"
	"math"
)

// GetAPISymbol is the single exported entry point of the RenderDoc
// in-application library.
const GetAPISymbol = "RENDERDOC_GetAPI"

// getAPISuccess is the value RENDERDOC_GetAPI returns when it filled in
// the table pointer.
const getAPISuccess = 1

// APIVersion is the RENDERDOC_Version enumeration passed to
// RENDERDOC_GetAPI.
type APIVersion int32

// APIVersion1_6_0 requests the RENDERDOC_API_1_6_0 table.
const APIVersion1_6_0 APIVersion = 10600

// Version is a major.minor.patch triple reported by GetAPIVersion.
type Version struct {
	Major int
	Minor int
	Patch int
}

// RequiredVersion is the only table version whose layout APITable matches.
var RequiredVersion = Version{Major: 1, Minor: 6, Patch: 0}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CaptureOption is the RENDERDOC_CaptureOption enumeration.
type CaptureOption int32

// Values from renderdoc_app.h.
const (
	OptionAllowVSync                       CaptureOption = 0
	OptionAllowFullscreen                  CaptureOption = 1
	OptionAPIValidation                    CaptureOption = 2
	OptionCaptureCallstacks                CaptureOption = 3
	OptionCaptureCallstacksOnlyActions     CaptureOption = 4
	OptionDelayForDebugger                 CaptureOption = 5
	OptionVerifyBufferAccess               CaptureOption = 6
	OptionHookIntoChildren                 CaptureOption = 7
	OptionRefAllResources                  CaptureOption = 8
	OptionSaveAllInitials                  CaptureOption = 9
	OptionCaptureAllCmdLists               CaptureOption = 10
	OptionDebugOutputMute                  CaptureOption = 11
	OptionAllowUnsupportedVendorExtensions CaptureOption = 12
	OptionSoftMemoryLimit                  CaptureOption = 13
)

// InvalidOptionU32 is returned by GetCaptureOptionU32 for an option the
// library does not recognise.
const InvalidOptionU32 uint32 = 0xFFFFFFFF

// InvalidOptionF32 is returned by GetCaptureOptionF32 for an option the
// library does not recognise (-FLT_MAX).
const InvalidOptionF32 float32 = -math.MaxFloat32

// APITable mirrors struct RENDERDOC_API_1_6_0. Every field is a function
// pointer; the order and count are fixed by the native ABI and must not
// change. Unions in the C declaration (Shutdown/RemoveHooks,
// Set/GetLogFilePathTemplate) occupy a single slot.
type APITable struct {
	GetAPIVersion uintptr

	SetCaptureOptionU32 uintptr
	SetCaptureOptionF32 uintptr

	GetCaptureOptionU32 uintptr
	GetCaptureOptionF32 uintptr

	SetFocusToggleKeys uintptr
	SetCaptureKeys     uintptr

	GetOverlayBits  uintptr
	MaskOverlayBits uintptr

	RemoveHooks        uintptr
	UnloadCrashHandler uintptr

	SetCaptureFilePathTemplate uintptr
	GetCaptureFilePathTemplate uintptr

	GetNumCaptures uintptr
	GetCapture     uintptr

	TriggerCapture uintptr

	IsTargetControlConnected uintptr
	LaunchReplayUI           uintptr

	SetActiveWindow uintptr

	StartFrameCapture uintptr
	IsFrameCapturing  uintptr
	EndFrameCapture   uintptr

	// 1.1.0
	TriggerMultiFrameCapture uintptr

	// 1.2.0
	SetCaptureFileComments uintptr

	// 1.4.0
	DiscardFrameCapture uintptr

	// 1.5.0
	ShowReplayUI uintptr

	// 1.6.0
	SetCaptureTitle uintptr
}

package renderdoc

import (
	"fmt"
	"time"

	"github.com/opd-ai/renderdoc/native"
)

// OptionKind identifies one of the capture options understood by
// RenderDoc. The zero value is not a valid kind.
type OptionKind int

const (
	KindAllowVSync OptionKind = iota + 1
	KindAllowFullscreen
	KindAPIValidation
	KindCaptureCallstacks
	KindCaptureCallstacksOnlyActions
	KindDelayForDebugger
	KindVerifyBufferAccess
	KindHookIntoChildren
	KindRefAllResources
	KindCaptureAllCmdLists
	KindDebugOutputMute
	KindSoftMemoryLimit
)

// optionIDs is the single mapping from option kind to native identifier,
// shared by SetOption and Option.
var optionIDs = map[OptionKind]native.CaptureOption{
	KindAllowVSync:                   native.OptionAllowVSync,
	KindAllowFullscreen:              native.OptionAllowFullscreen,
	KindAPIValidation:                native.OptionAPIValidation,
	KindCaptureCallstacks:            native.OptionCaptureCallstacks,
	KindCaptureCallstacksOnlyActions: native.OptionCaptureCallstacksOnlyActions,
	KindDelayForDebugger:             native.OptionDelayForDebugger,
	KindVerifyBufferAccess:           native.OptionVerifyBufferAccess,
	KindHookIntoChildren:             native.OptionHookIntoChildren,
	KindRefAllResources:              native.OptionRefAllResources,
	KindCaptureAllCmdLists:           native.OptionCaptureAllCmdLists,
	KindDebugOutputMute:              native.OptionDebugOutputMute,
	KindSoftMemoryLimit:              native.OptionSoftMemoryLimit,
}

var kindNames = map[OptionKind]string{
	KindAllowVSync:                   "AllowVSync",
	KindAllowFullscreen:              "AllowFullscreen",
	KindAPIValidation:                "APIValidation",
	KindCaptureCallstacks:            "CaptureCallstacks",
	KindCaptureCallstacksOnlyActions: "CaptureCallstacksOnlyActions",
	KindDelayForDebugger:             "DelayForDebugger",
	KindVerifyBufferAccess:           "VerifyBufferAccess",
	KindHookIntoChildren:             "HookIntoChildren",
	KindRefAllResources:              "RefAllResources",
	KindCaptureAllCmdLists:           "CaptureAllCmdLists",
	KindDebugOutputMute:              "DebugOutputMute",
	KindSoftMemoryLimit:              "SoftMemoryLimit",
}

// OptionKinds returns every supported kind in declaration order.
func OptionKinds() []OptionKind {
	kinds := make([]OptionKind, 0, len(optionIDs))
	for k := KindAllowVSync; k <= KindSoftMemoryLimit; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k OptionKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OptionKind(%d)", int(k))
}

// NativeID returns the RENDERDOC_CaptureOption value for k.
func (k OptionKind) NativeID() (native.CaptureOption, error) {
	id, ok := optionIDs[k]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownOption, k)
	}
	return id, nil
}

// CaptureOption is a capture option together with its value. The set of
// implementations is closed; only the types in this package satisfy it.
type CaptureOption interface {
	Kind() OptionKind
	captureOption()
}

// AllowVSync allows the application to enable vsync.
type AllowVSync struct{ Allow bool }

// AllowFullscreen allows the application to enable fullscreen.
type AllowFullscreen struct{ Allow bool }

// APIValidation records API debugging events and messages.
type APIValidation struct{ Enabled bool }

// CaptureCallstacks captures CPU callstacks for API events.
type CaptureCallstacks struct{ Enabled bool }

// CaptureCallstacksOnlyActions restricts callstack capture to actions.
type CaptureCallstacksOnlyActions struct{ Enabled bool }

// DelayForDebugger waits for a debugger to attach after launching.
// Only whole seconds are sent to RenderDoc.
type DelayForDebugger struct{ Delay time.Duration }

// VerifyBufferAccess checks mapped buffer writes for overruns.
type VerifyBufferAccess struct{ Enabled bool }

// HookIntoChildren injects RenderDoc into child processes recursively
// with the same options.
type HookIntoChildren struct{ Enabled bool }

// RefAllResources includes every live resource in a capture, not only
// those the frame needs.
type RefAllResources struct{ Enabled bool }

// CaptureAllCmdLists records command lists from the start of the
// application instead of only after a capture is triggered. Command lists
// recorded once and replayed many times may otherwise be missing.
type CaptureAllCmdLists struct{ Enabled bool }

// DebugOutputMute mutes API debug output when APIValidation is enabled.
type DebugOutputMute struct{ Enabled bool }

// SoftMemoryLimit asks supporting APIs to keep capture overhead under the
// given size, spilling the rest to disk.
type SoftMemoryLimit struct{ Megabytes uint32 }

func (AllowVSync) Kind() OptionKind                   { return KindAllowVSync }
func (AllowFullscreen) Kind() OptionKind              { return KindAllowFullscreen }
func (APIValidation) Kind() OptionKind                { return KindAPIValidation }
func (CaptureCallstacks) Kind() OptionKind            { return KindCaptureCallstacks }
func (CaptureCallstacksOnlyActions) Kind() OptionKind { return KindCaptureCallstacksOnlyActions }
func (DelayForDebugger) Kind() OptionKind             { return KindDelayForDebugger }
func (VerifyBufferAccess) Kind() OptionKind           { return KindVerifyBufferAccess }
func (HookIntoChildren) Kind() OptionKind             { return KindHookIntoChildren }
func (RefAllResources) Kind() OptionKind              { return KindRefAllResources }
func (CaptureAllCmdLists) Kind() OptionKind           { return KindCaptureAllCmdLists }
func (DebugOutputMute) Kind() OptionKind              { return KindDebugOutputMute }
func (SoftMemoryLimit) Kind() OptionKind              { return KindSoftMemoryLimit }

func (AllowVSync) captureOption()                   {}
func (AllowFullscreen) captureOption()              {}
func (APIValidation) captureOption()                {}
func (CaptureCallstacks) captureOption()            {}
func (CaptureCallstacksOnlyActions) captureOption() {}
func (DelayForDebugger) captureOption()             {}
func (VerifyBufferAccess) captureOption()           {}
func (HookIntoChildren) captureOption()             {}
func (RefAllResources) captureOption()              {}
func (CaptureAllCmdLists) captureOption()           {}
func (DebugOutputMute) captureOption()              {}
func (SoftMemoryLimit) captureOption()              {}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// encodeOption returns the native identifier and uint32 value for opt.
func encodeOption(opt CaptureOption) (native.CaptureOption, uint32, error) {
	if opt == nil {
		return 0, 0, fmt.Errorf("%w: nil option", ErrUnknownOption)
	}
	id, err := opt.Kind().NativeID()
	if err != nil {
		return 0, 0, err
	}

	var value uint32
	switch o := opt.(type) {
	case AllowVSync:
		value = boolToU32(o.Allow)
	case AllowFullscreen:
		value = boolToU32(o.Allow)
	case APIValidation:
		value = boolToU32(o.Enabled)
	case CaptureCallstacks:
		value = boolToU32(o.Enabled)
	case CaptureCallstacksOnlyActions:
		value = boolToU32(o.Enabled)
	case DelayForDebugger:
		value, err = durationToSeconds(o.Delay)
		if err != nil {
			return 0, 0, err
		}
	case VerifyBufferAccess:
		value = boolToU32(o.Enabled)
	case HookIntoChildren:
		value = boolToU32(o.Enabled)
	case RefAllResources:
		value = boolToU32(o.Enabled)
	case CaptureAllCmdLists:
		value = boolToU32(o.Enabled)
	case DebugOutputMute:
		value = boolToU32(o.Enabled)
	case SoftMemoryLimit:
		value = o.Megabytes
	default:
		return 0, 0, fmt.Errorf("%w: %T", ErrUnknownOption, opt)
	}
	return id, value, nil
}

// decodeOption builds the option of the given kind from a native value.
func decodeOption(kind OptionKind, raw uint32) (CaptureOption, error) {
	on := raw != 0
	switch kind {
	case KindAllowVSync:
		return AllowVSync{Allow: on}, nil
	case KindAllowFullscreen:
		return AllowFullscreen{Allow: on}, nil
	case KindAPIValidation:
		return APIValidation{Enabled: on}, nil
	case KindCaptureCallstacks:
		return CaptureCallstacks{Enabled: on}, nil
	case KindCaptureCallstacksOnlyActions:
		return CaptureCallstacksOnlyActions{Enabled: on}, nil
	case KindDelayForDebugger:
		return DelayForDebugger{Delay: secondsToDuration(raw)}, nil
	case KindVerifyBufferAccess:
		return VerifyBufferAccess{Enabled: on}, nil
	case KindHookIntoChildren:
		return HookIntoChildren{Enabled: on}, nil
	case KindRefAllResources:
		return RefAllResources{Enabled: on}, nil
	case KindCaptureAllCmdLists:
		return CaptureAllCmdLists{Enabled: on}, nil
	case KindDebugOutputMute:
		return DebugOutputMute{Enabled: on}, nil
	case KindSoftMemoryLimit:
		return SoftMemoryLimit{Megabytes: raw}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOption, kind)
}

package renderdoctest

import (
	"fmt"
	"reflect"
	"sync"
	"time"
	"unsafe"

	"github.com/opd-ai/renderdoc/native"
)

const baseAddress uintptr = 0x7f0000001000

// Library simulates the RenderDoc in-application library. It satisfies
// native.Library and provides a Bind method usable as a native.Binder, so
// native.Handshake runs unchanged against it.
type Library struct {
	mu sync.Mutex

	version      native.Version
	getAPIResult int32
	nullTable    bool
	missing      map[string]bool
	clearedSlots map[string]bool
	closeErr     error

	table native.APITable
	impls map[uintptr]any

	options      map[native.CaptureOption]uint32
	pathTemplate string
	title        string
	captures     []Capture
	capturing    bool
	triggers     int
	closes       int
	connected    bool
	now          func() time.Time
}

// Capture is a capture recorded by the simulated library.
type Capture struct {
	Path      string
	Timestamp time.Time
	Comments  string
}

// New returns a simulated library reporting API version 1.6.0 with
// RenderDoc's default option values.
func New() *Library {
	l := &Library{
		version:      native.RequiredVersion,
		getAPIResult: 1,
		missing:      make(map[string]bool),
		clearedSlots: make(map[string]bool),
		impls:        make(map[uintptr]any),
		now:          time.Now,
		options: map[native.CaptureOption]uint32{
			native.OptionAllowVSync:                       1,
			native.OptionAllowFullscreen:                  1,
			native.OptionAPIValidation:                    0,
			native.OptionCaptureCallstacks:                0,
			native.OptionCaptureCallstacksOnlyActions:     0,
			native.OptionDelayForDebugger:                 0,
			native.OptionVerifyBufferAccess:               0,
			native.OptionHookIntoChildren:                 0,
			native.OptionRefAllResources:                  0,
			native.OptionSaveAllInitials:                  0,
			native.OptionCaptureAllCmdLists:               0,
			native.OptionDebugOutputMute:                  1,
			native.OptionAllowUnsupportedVendorExtensions: 0,
			native.OptionSoftMemoryLimit:                  0,
		},
	}
	l.buildTable()
	return l
}

// SetVersion changes the version reported by GetAPIVersion.
func (l *Library) SetVersion(major, minor, patch int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version = native.Version{Major: major, Minor: minor, Patch: patch}
}

// SetGetAPIResult changes the code returned by RENDERDOC_GetAPI.
func (l *Library) SetGetAPIResult(code int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.getAPIResult = code
}

// SetNullTable makes RENDERDOC_GetAPI succeed without filling the table
// pointer.
func (l *Library) SetNullTable(null bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nullTable = null
}

// RemoveSymbol hides an exported symbol from Lookup.
func (l *Library) RemoveSymbol(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.missing[name] = true
}

// ClearSlot zeroes the named APITable field before GetAPI returns it.
func (l *Library) ClearSlot(field string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clearedSlots[field] = true
}

// SetCloseError makes Close return err.
func (l *Library) SetCloseError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeErr = err
}

// SetTargetControlConnected sets what IsTargetControlConnected reports.
func (l *Library) SetTargetControlConnected(connected bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = connected
}

// SetClock replaces the time source used to stamp captures.
func (l *Library) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Lookup implements native.Symbols.
func (l *Library) Lookup(name string) (uintptr, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if name != native.GetAPISymbol || l.missing[name] {
		return 0, fmt.Errorf("%w: %s", native.ErrEntryPointNotFound, name)
	}
	return baseAddress, nil
}

// Close implements native.Library. Every call is counted.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closes++
	return l.closeErr
}

// CloseCount reports how many times Close was called.
func (l *Library) CloseCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closes
}

// TriggerCount reports how many times TriggerCapture was called.
func (l *Library) TriggerCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.triggers
}

// RawOption returns the stored value of a native option.
func (l *Library) RawOption(opt native.CaptureOption) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.options[opt]
}

// Captures returns a copy of the recorded captures.
func (l *Library) Captures() []Capture {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Capture, len(l.captures))
	copy(out, l.captures)
	return out
}

// Title returns the last title passed to SetCaptureTitle.
func (l *Library) Title() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.title
}

// Bind installs the simulated implementation registered at addr into
// fptr. It panics on an unknown address or mismatched signature, as
// purego.RegisterFunc would for a bad binding.
func (l *Library) Bind(fptr any, addr uintptr) {
	l.mu.Lock()
	impl, ok := l.impls[addr]
	l.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("renderdoctest: no function at 0x%x", addr))
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(impl))
}

func (l *Library) buildTable() {
	l.impls[baseAddress] = l.getAPI

	tv := reflect.ValueOf(&l.table).Elem()
	for i := 0; i < tv.NumField(); i++ {
		tv.Field(i).SetUint(uint64(baseAddress + uintptr(i+1)*0x10))
	}

	l.register("GetAPIVersion", l.getAPIVersion)
	l.register("SetCaptureOptionU32", l.setCaptureOptionU32)
	l.register("SetCaptureOptionF32", l.setCaptureOptionF32)
	l.register("GetCaptureOptionU32", l.getCaptureOptionU32)
	l.register("GetCaptureOptionF32", l.getCaptureOptionF32)
	l.register("SetCaptureFilePathTemplate", l.setCaptureFilePathTemplate)
	l.register("GetCaptureFilePathTemplate", l.getCaptureFilePathTemplate)
	l.register("GetNumCaptures", l.getNumCaptures)
	l.register("GetCapture", l.getCapture)
	l.register("TriggerCapture", l.triggerCapture)
	l.register("TriggerMultiFrameCapture", l.triggerMultiFrameCapture)
	l.register("IsTargetControlConnected", l.isTargetControlConnected)
	l.register("StartFrameCapture", l.startFrameCapture)
	l.register("IsFrameCapturing", l.isFrameCapturing)
	l.register("EndFrameCapture", l.endFrameCapture)
	l.register("DiscardFrameCapture", l.discardFrameCapture)
	l.register("SetCaptureFileComments", l.setCaptureFileComments)
	l.register("SetCaptureTitle", l.setCaptureTitle)
}

func (l *Library) register(field string, impl any) {
	addr := uintptr(reflect.ValueOf(l.table).FieldByName(field).Uint())
	l.impls[addr] = impl
}

func (l *Library) getAPI(version native.APIVersion, out *unsafe.Pointer) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if version != native.APIVersion1_6_0 {
		return 0
	}
	if l.getAPIResult != 1 {
		return l.getAPIResult
	}
	if l.nullTable {
		*out = nil
		return 1
	}
	tv := reflect.ValueOf(&l.table).Elem()
	for field := range l.clearedSlots {
		tv.FieldByName(field).SetUint(0)
	}
	*out = unsafe.Pointer(&l.table)
	return 1
}

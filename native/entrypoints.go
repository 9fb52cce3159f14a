package native

// EntryPoints holds typed call-throughs for the RENDERDOC_API_1_6_0
// functions this module uses. Fields are filled by a Binder during
// Handshake; the signatures follow renderdoc_app.h.
type EntryPoints struct {
	GetAPIVersion func(major, minor, patch *int32)

	SetCaptureOptionU32 func(opt CaptureOption, val uint32) int32
	SetCaptureOptionF32 func(opt CaptureOption, val float32) int32
	GetCaptureOptionU32 func(opt CaptureOption) uint32
	GetCaptureOptionF32 func(opt CaptureOption) float32

	SetCaptureFilePathTemplate func(pathTemplate string)
	GetCaptureFilePathTemplate func() string

	GetNumCaptures func() uint32
	// GetCapture writes at most *pathLength bytes into filename when it is
	// non-nil; with a nil filename only the required length is reported.
	GetCapture func(idx uint32, filename *byte, pathLength *uint32, timestamp *uint64) uint32

	TriggerCapture           func()
	TriggerMultiFrameCapture func(numFrames uint32)

	IsTargetControlConnected func() uint32

	StartFrameCapture   func(device, window uintptr)
	IsFrameCapturing    func() uint32
	EndFrameCapture     func(device, window uintptr) uint32
	DiscardFrameCapture func(device, window uintptr) uint32

	// A nil filePath targets the most recent capture.
	SetCaptureFileComments func(filePath *byte, comments string)
	SetCaptureTitle        func(title string)
}

type binding struct {
	name string
	addr uintptr
	fptr any
}

// bindings pairs every call-through except GetAPIVersion with its slot in
// the validated table.
func (e *EntryPoints) bindings(t *APITable) []binding {
	return []binding{
		{"SetCaptureOptionU32", t.SetCaptureOptionU32, &e.SetCaptureOptionU32},
		{"SetCaptureOptionF32", t.SetCaptureOptionF32, &e.SetCaptureOptionF32},
		{"GetCaptureOptionU32", t.GetCaptureOptionU32, &e.GetCaptureOptionU32},
		{"GetCaptureOptionF32", t.GetCaptureOptionF32, &e.GetCaptureOptionF32},
		{"SetCaptureFilePathTemplate", t.SetCaptureFilePathTemplate, &e.SetCaptureFilePathTemplate},
		{"GetCaptureFilePathTemplate", t.GetCaptureFilePathTemplate, &e.GetCaptureFilePathTemplate},
		{"GetNumCaptures", t.GetNumCaptures, &e.GetNumCaptures},
		{"GetCapture", t.GetCapture, &e.GetCapture},
		{"TriggerCapture", t.TriggerCapture, &e.TriggerCapture},
		{"TriggerMultiFrameCapture", t.TriggerMultiFrameCapture, &e.TriggerMultiFrameCapture},
		{"IsTargetControlConnected", t.IsTargetControlConnected, &e.IsTargetControlConnected},
		{"StartFrameCapture", t.StartFrameCapture, &e.StartFrameCapture},
		{"IsFrameCapturing", t.IsFrameCapturing, &e.IsFrameCapturing},
		{"EndFrameCapture", t.EndFrameCapture, &e.EndFrameCapture},
		{"DiscardFrameCapture", t.DiscardFrameCapture, &e.DiscardFrameCapture},
		{"SetCaptureFileComments", t.SetCaptureFileComments, &e.SetCaptureFileComments},
		{"SetCaptureTitle", t.SetCaptureTitle, &e.SetCaptureTitle},
	}
}

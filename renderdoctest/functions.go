package renderdoctest

import (
	"fmt"
	"unsafe"

	"github.com/opd-ai/renderdoc/native"
)

func (l *Library) getAPIVersion(major, minor, patch *int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*major = int32(l.version.Major)
	*minor = int32(l.version.Minor)
	*patch = int32(l.version.Patch)
}

func (l *Library) setCaptureOptionU32(opt native.CaptureOption, val uint32) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.options[opt]; !ok {
		return 0
	}
	l.options[opt] = val
	return 1
}

func (l *Library) setCaptureOptionF32(opt native.CaptureOption, val float32) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.options[opt]; !ok || val < 0 {
		return 0
	}
	l.options[opt] = uint32(val)
	return 1
}

func (l *Library) getCaptureOptionU32(opt native.CaptureOption) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.options[opt]
	if !ok {
		return native.InvalidOptionU32
	}
	return v
}

func (l *Library) getCaptureOptionF32(opt native.CaptureOption) float32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	v, ok := l.options[opt]
	if !ok {
		return native.InvalidOptionF32
	}
	return float32(v)
}

func (l *Library) setCaptureFilePathTemplate(pathTemplate string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pathTemplate = pathTemplate
}

func (l *Library) getCaptureFilePathTemplate() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pathTemplate
}

func (l *Library) getNumCaptures() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return uint32(len(l.captures))
}

func (l *Library) getCapture(idx uint32, filename *byte, pathLength *uint32, timestamp *uint64) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if int(idx) >= len(l.captures) {
		return 0
	}
	c := l.captures[idx]
	if filename != nil {
		buf := unsafe.Slice(filename, len(c.Path)+1)
		copy(buf, c.Path)
		buf[len(c.Path)] = 0
	}
	if pathLength != nil {
		*pathLength = uint32(len(c.Path) + 1)
	}
	if timestamp != nil {
		*timestamp = uint64(c.Timestamp.Unix())
	}
	return 1
}

// recordLocked appends a capture named after the current path template.
func (l *Library) recordLocked() {
	tmpl := l.pathTemplate
	if tmpl == "" {
		tmpl = "capture"
	}
	l.captures = append(l.captures, Capture{
		Path:      fmt.Sprintf("%s_frame%d.rdc", tmpl, len(l.captures)+1),
		Timestamp: l.now(),
	})
}

func (l *Library) triggerCapture() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.triggers++
	l.recordLocked()
}

func (l *Library) triggerMultiFrameCapture(numFrames uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.triggers++
	for i := uint32(0); i < numFrames; i++ {
		l.recordLocked()
	}
}

func (l *Library) isTargetControlConnected() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.connected {
		return 1
	}
	return 0
}

func (l *Library) startFrameCapture(device, window uintptr) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.capturing = true
}

func (l *Library) isFrameCapturing() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.capturing {
		return 1
	}
	return 0
}

func (l *Library) endFrameCapture(device, window uintptr) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.capturing {
		return 0
	}
	l.capturing = false
	l.recordLocked()
	return 1
}

func (l *Library) discardFrameCapture(device, window uintptr) uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.capturing {
		return 0
	}
	l.capturing = false
	return 1
}

func (l *Library) setCaptureFileComments(filePath *byte, comments string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.captures) == 0 {
		return
	}
	if filePath == nil {
		l.captures[len(l.captures)-1].Comments = comments
		return
	}
	path := native.GoString(filePath)
	for i := range l.captures {
		if l.captures[i].Path == path {
			l.captures[i].Comments = comments
		}
	}
}

func (l *Library) setCaptureTitle(title string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.title = title
}

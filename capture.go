package renderdoc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/opd-ai/renderdoc/native"
)

// CaptureInfo describes a capture file written by RenderDoc.
type CaptureInfo struct {
	Index     uint32
	Path      string
	Timestamp time.Time
}

// TriggerCapture asks RenderDoc to capture the next frame presented to
// any window. It does not wait; observe NumCaptures or the capture path
// for the result.
func (r *RenderDoc) TriggerCapture() error {
	if err := r.checkOpen("trigger capture"); err != nil {
		return err
	}
	newLogger(r.logger, "TriggerCapture").Debug("Triggering capture")
	r.api.TriggerCapture()
	return nil
}

// TriggerMultiFrameCapture asks RenderDoc to capture the next frames
// consecutive frames.
func (r *RenderDoc) TriggerMultiFrameCapture(frames uint32) error {
	if err := r.checkOpen("trigger capture"); err != nil {
		return err
	}
	if frames == 0 {
		return fmt.Errorf("renderdoc: trigger capture: %w", ErrInvalidFrameCount)
	}
	newLogger(r.logger, "TriggerMultiFrameCapture").
		WithField("frames", frames).
		Debug("Triggering multi-frame capture")
	r.api.TriggerMultiFrameCapture(frames)
	return nil
}

// NumCaptures returns the number of captures made so far. The value is
// read from RenderDoc on every call.
func (r *RenderDoc) NumCaptures() (uint32, error) {
	if err := r.checkOpen("count captures"); err != nil {
		return 0, err
	}
	return r.api.GetNumCaptures(), nil
}

// Capture returns the path and time of the capture at idx.
func (r *RenderDoc) Capture(idx uint32) (CaptureInfo, error) {
	if err := r.checkOpen("get capture"); err != nil {
		return CaptureInfo{}, err
	}

	var length uint32
	if r.api.GetCapture(idx, nil, &length, nil) != 1 {
		return CaptureInfo{}, fmt.Errorf("renderdoc: get capture %d: %w", idx, ErrCaptureNotFound)
	}

	// length includes the terminating NUL.
	buf := make([]byte, length+1)
	var timestamp uint64
	if r.api.GetCapture(idx, &buf[0], &length, &timestamp) != 1 {
		return CaptureInfo{}, fmt.Errorf("renderdoc: get capture %d: %w", idx, ErrCaptureNotFound)
	}
	if n := bytes.IndexByte(buf, 0); n >= 0 {
		buf = buf[:n]
	}

	return CaptureInfo{
		Index:     idx,
		Path:      string(buf),
		Timestamp: time.Unix(int64(timestamp), 0),
	}, nil
}

// Captures returns every capture made so far, oldest first.
func (r *RenderDoc) Captures() ([]CaptureInfo, error) {
	n, err := r.NumCaptures()
	if err != nil {
		return nil, err
	}
	out := make([]CaptureInfo, 0, n)
	for i := uint32(0); i < n; i++ {
		info, err := r.Capture(i)
		if err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, nil
}

// StartFrameCapture begins capturing immediately on the active device and
// window. Every following API call is recorded until EndFrameCapture.
func (r *RenderDoc) StartFrameCapture() error {
	if err := r.checkOpen("start frame capture"); err != nil {
		return err
	}
	newLogger(r.logger, "StartFrameCapture").Debug("Starting frame capture")
	r.api.StartFrameCapture(0, 0)
	return nil
}

// IsFrameCapturing reports whether a frame capture is in progress.
func (r *RenderDoc) IsFrameCapturing() (bool, error) {
	if err := r.checkOpen("query frame capture"); err != nil {
		return false, err
	}
	return r.api.IsFrameCapturing() == 1, nil
}

// EndFrameCapture finishes a capture begun with StartFrameCapture and
// writes it to disk.
func (r *RenderDoc) EndFrameCapture() error {
	if err := r.checkOpen("end frame capture"); err != nil {
		return err
	}
	if r.api.EndFrameCapture(0, 0) != 1 {
		return fmt.Errorf("renderdoc: end frame capture: %w", ErrNotCapturing)
	}
	return nil
}

// DiscardFrameCapture abandons a capture begun with StartFrameCapture
// without writing anything.
func (r *RenderDoc) DiscardFrameCapture() error {
	if err := r.checkOpen("discard frame capture"); err != nil {
		return err
	}
	if r.api.DiscardFrameCapture(0, 0) != 1 {
		return fmt.Errorf("renderdoc: discard frame capture: %w", ErrNotCapturing)
	}
	return nil
}

// IsTargetControlConnected reports whether the RenderDoc UI or another
// remote-control client is connected to this process.
func (r *RenderDoc) IsTargetControlConnected() (bool, error) {
	if err := r.checkOpen("query target control"); err != nil {
		return false, err
	}
	return r.api.IsTargetControlConnected() == 1, nil
}

// SetCaptureTitle sets the title stored in the capture in progress or the
// next one made.
func (r *RenderDoc) SetCaptureTitle(title string) error {
	if err := r.checkOpen("set capture title"); err != nil {
		return err
	}
	r.api.SetCaptureTitle(title)
	return nil
}

// SetCaptureFileComments attaches comments to the capture file at path.
// An empty path targets the most recent capture.
func (r *RenderDoc) SetCaptureFileComments(path, comments string) error {
	if err := r.checkOpen("set capture comments"); err != nil {
		return err
	}
	if path != "" {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("renderdoc: set capture comments: %w", err)
		}
	}
	r.api.SetCaptureFileComments(native.CString(path), comments)
	return nil
}

package main

import (
	"fmt"
	"io"

	"github.com/opd-ai/renderdoc"
	"github.com/opd-ai/renderdoc/profile"
)

// run performs the configured actions against an open session and
// writes a report to w.
func run(rd *renderdoc.RenderDoc, config *CLIConfig, w io.Writer) error {
	fmt.Fprintf(w, "RenderDoc API %s\n", rd.APIVersion())

	if config.profilePath != "" {
		p, err := profile.Load(config.profilePath)
		if err != nil {
			return err
		}
		if err := p.Apply(rd); err != nil {
			return err
		}
		fmt.Fprintf(w, "Applied profile %q (%d options)\n", p.Name, len(p.CaptureOptions()))
	}

	if config.capturePath != "" {
		if err := rd.SetCaptureFilePathTemplate(config.capturePath); err != nil {
			return err
		}
	}
	if config.title != "" {
		if err := rd.SetCaptureTitle(config.title); err != nil {
			return err
		}
	}

	before, err := rd.NumCaptures()
	if err != nil {
		return err
	}

	for i := uint(0); i < config.triggers; i++ {
		if err := rd.TriggerCapture(); err != nil {
			return err
		}
	}
	if config.frames > 0 {
		if err := rd.TriggerMultiFrameCapture(uint32(config.frames)); err != nil {
			return err
		}
	}

	after, err := rd.NumCaptures()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Captures: %d (was %d)\n", after, before)

	captures, err := rd.Captures()
	if err != nil {
		return err
	}
	for _, c := range captures {
		fmt.Fprintf(w, "  [%d] %s %s\n", c.Index, c.Timestamp.Format("2006-01-02T15:04:05"), c.Path)
	}

	if config.dump {
		p, err := profile.Snapshot(rd, "snapshot")
		if err != nil {
			return err
		}
		data, err := p.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "---\n%s", data)
	}
	return nil
}

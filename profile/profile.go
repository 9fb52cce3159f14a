package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/opd-ai/renderdoc"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile indicates a profile document that could not be decoded.
var ErrInvalidProfile = errors.New("invalid capture profile")

// Profile is a named set of capture settings stored as YAML.
type Profile struct {
	Name        string      `yaml:"name,omitempty"`
	CapturePath string      `yaml:"capture_path,omitempty"`
	Title       string      `yaml:"title,omitempty"`
	Options     OptionsYAML `yaml:"options,omitempty"`
}

// OptionsYAML holds one optional field per capture option. Nil fields
// are left untouched when the profile is applied.
type OptionsYAML struct {
	AllowVSync                   *bool          `yaml:"allow_vsync,omitempty"`
	AllowFullscreen              *bool          `yaml:"allow_fullscreen,omitempty"`
	APIValidation                *bool          `yaml:"api_validation,omitempty"`
	CaptureCallstacks            *bool          `yaml:"capture_callstacks,omitempty"`
	CaptureCallstacksOnlyActions *bool          `yaml:"capture_callstacks_only_actions,omitempty"`
	DelayForDebugger             *time.Duration `yaml:"delay_for_debugger,omitempty"`
	VerifyBufferAccess           *bool          `yaml:"verify_buffer_access,omitempty"`
	HookIntoChildren             *bool          `yaml:"hook_into_children,omitempty"`
	RefAllResources              *bool          `yaml:"ref_all_resources,omitempty"`
	CaptureAllCmdLists           *bool          `yaml:"capture_all_cmd_lists,omitempty"`
	DebugOutputMute              *bool          `yaml:"debug_output_mute,omitempty"`
	SoftMemoryLimitMB            *uint32        `yaml:"soft_memory_limit_mb,omitempty"`
}

// Target is the part of *renderdoc.RenderDoc a profile is applied to.
type Target interface {
	SetOptions(opts ...renderdoc.CaptureOption) error
	SetCaptureFilePathTemplate(path string) error
	SetCaptureTitle(title string) error
}

// Source is the part of *renderdoc.RenderDoc a profile is captured from.
type Source interface {
	Option(kind renderdoc.OptionKind) (renderdoc.CaptureOption, error)
	CaptureFilePathTemplate() (string, bool, error)
}

// Load reads and parses the profile at path.
func Load(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open profile: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a profile from YAML bytes.
func Parse(data []byte) (*Profile, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML profile document from r. Unknown keys are
// rejected so a misspelled option is not silently ignored.
func Decode(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return &p, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	if p.Options.DelayForDebugger != nil && *p.Options.DelayForDebugger < 0 {
		return nil, fmt.Errorf("%w: delay_for_debugger must not be negative", ErrInvalidProfile)
	}
	return &p, nil
}

// Marshal encodes the profile as YAML.
func (p *Profile) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// CaptureOptions returns the options set in the profile, in
// renderdoc.OptionKinds order.
func (p *Profile) CaptureOptions() []renderdoc.CaptureOption {
	o := p.Options
	var opts []renderdoc.CaptureOption
	if o.AllowVSync != nil {
		opts = append(opts, renderdoc.AllowVSync{Allow: *o.AllowVSync})
	}
	if o.AllowFullscreen != nil {
		opts = append(opts, renderdoc.AllowFullscreen{Allow: *o.AllowFullscreen})
	}
	if o.APIValidation != nil {
		opts = append(opts, renderdoc.APIValidation{Enabled: *o.APIValidation})
	}
	if o.CaptureCallstacks != nil {
		opts = append(opts, renderdoc.CaptureCallstacks{Enabled: *o.CaptureCallstacks})
	}
	if o.CaptureCallstacksOnlyActions != nil {
		opts = append(opts, renderdoc.CaptureCallstacksOnlyActions{Enabled: *o.CaptureCallstacksOnlyActions})
	}
	if o.DelayForDebugger != nil {
		opts = append(opts, renderdoc.DelayForDebugger{Delay: *o.DelayForDebugger})
	}
	if o.VerifyBufferAccess != nil {
		opts = append(opts, renderdoc.VerifyBufferAccess{Enabled: *o.VerifyBufferAccess})
	}
	if o.HookIntoChildren != nil {
		opts = append(opts, renderdoc.HookIntoChildren{Enabled: *o.HookIntoChildren})
	}
	if o.RefAllResources != nil {
		opts = append(opts, renderdoc.RefAllResources{Enabled: *o.RefAllResources})
	}
	if o.CaptureAllCmdLists != nil {
		opts = append(opts, renderdoc.CaptureAllCmdLists{Enabled: *o.CaptureAllCmdLists})
	}
	if o.DebugOutputMute != nil {
		opts = append(opts, renderdoc.DebugOutputMute{Enabled: *o.DebugOutputMute})
	}
	if o.SoftMemoryLimitMB != nil {
		opts = append(opts, renderdoc.SoftMemoryLimit{Megabytes: *o.SoftMemoryLimitMB})
	}
	return opts
}

// Apply sets the profile's options, then its path template and title
// when present.
func (p *Profile) Apply(t Target) error {
	opts := p.CaptureOptions()
	logrus.WithFields(logrus.Fields{
		"function": "Apply",
		"package":  "profile",
		"profile":  p.Name,
		"options":  len(opts),
	}).Debug("Applying capture profile")

	if err := t.SetOptions(opts...); err != nil {
		return fmt.Errorf("apply profile %q: %w", p.Name, err)
	}
	if p.CapturePath != "" {
		if err := t.SetCaptureFilePathTemplate(p.CapturePath); err != nil {
			return fmt.Errorf("apply profile %q: %w", p.Name, err)
		}
	}
	if p.Title != "" {
		if err := t.SetCaptureTitle(p.Title); err != nil {
			return fmt.Errorf("apply profile %q: %w", p.Name, err)
		}
	}
	return nil
}

// Snapshot reads every option and the path template from s into a new
// profile.
func Snapshot(s Source, name string) (*Profile, error) {
	p := &Profile{Name: name}
	for _, kind := range renderdoc.OptionKinds() {
		opt, err := s.Option(kind)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", kind, err)
		}
		p.Options.set(opt)
	}

	path, ok, err := s.CaptureFilePathTemplate()
	if err != nil {
		return nil, fmt.Errorf("snapshot capture path: %w", err)
	}
	if ok {
		p.CapturePath = path
	}
	return p, nil
}

func (o *OptionsYAML) set(opt renderdoc.CaptureOption) {
	switch v := opt.(type) {
	case renderdoc.AllowVSync:
		o.AllowVSync = &v.Allow
	case renderdoc.AllowFullscreen:
		o.AllowFullscreen = &v.Allow
	case renderdoc.APIValidation:
		o.APIValidation = &v.Enabled
	case renderdoc.CaptureCallstacks:
		o.CaptureCallstacks = &v.Enabled
	case renderdoc.CaptureCallstacksOnlyActions:
		o.CaptureCallstacksOnlyActions = &v.Enabled
	case renderdoc.DelayForDebugger:
		o.DelayForDebugger = &v.Delay
	case renderdoc.VerifyBufferAccess:
		o.VerifyBufferAccess = &v.Enabled
	case renderdoc.HookIntoChildren:
		o.HookIntoChildren = &v.Enabled
	case renderdoc.RefAllResources:
		o.RefAllResources = &v.Enabled
	case renderdoc.CaptureAllCmdLists:
		o.CaptureAllCmdLists = &v.Enabled
	case renderdoc.DebugOutputMute:
		o.DebugOutputMute = &v.Enabled
	case renderdoc.SoftMemoryLimit:
		o.SoftMemoryLimitMB = &v.Megabytes
	}
}

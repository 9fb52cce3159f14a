package renderdoc

import (
	"math"
	"testing"
	"time"

	"github.com/opd-ai/renderdoc/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptionRoundTrip sets every option to a non-default value and reads
// it back through the same kind.
func TestOptionRoundTrip(t *testing.T) {
	tests := []struct {
		option CaptureOption
		raw    uint32
	}{
		{AllowVSync{Allow: false}, 0},
		{AllowFullscreen{Allow: false}, 0},
		{APIValidation{Enabled: true}, 1},
		{CaptureCallstacks{Enabled: true}, 1},
		{CaptureCallstacksOnlyActions{Enabled: true}, 1},
		{DelayForDebugger{Delay: 7 * time.Second}, 7},
		{VerifyBufferAccess{Enabled: true}, 1},
		{HookIntoChildren{Enabled: true}, 1},
		{RefAllResources{Enabled: true}, 1},
		{CaptureAllCmdLists{Enabled: true}, 1},
		{DebugOutputMute{Enabled: false}, 0},
		{SoftMemoryLimit{Megabytes: 768}, 768},
	}
	require.Len(t, tests, len(OptionKinds()))

	rd, lib := newTestRenderDoc(t)
	for _, tt := range tests {
		t.Run(tt.option.Kind().String(), func(t *testing.T) {
			require.NoError(t, rd.SetOption(tt.option))

			id, err := tt.option.Kind().NativeID()
			require.NoError(t, err)
			assert.Equal(t, tt.raw, lib.RawOption(id))

			got, err := rd.Option(tt.option.Kind())
			require.NoError(t, err)
			assert.Equal(t, tt.option, got)
		})
	}
}

func TestOptionDefaults(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	got, err := rd.Option(KindAllowVSync)
	require.NoError(t, err)
	assert.Equal(t, AllowVSync{Allow: true}, got)

	got, err = rd.Option(KindSoftMemoryLimit)
	require.NoError(t, err)
	assert.Equal(t, SoftMemoryLimit{Megabytes: 0}, got)
}

// TestAllowVSyncReadsBackAsAllowVSync guards against the vsync option
// decoding into the fullscreen variant.
func TestAllowVSyncReadsBackAsAllowVSync(t *testing.T) {
	rd, _ := newTestRenderDoc(t)
	require.NoError(t, rd.SetOption(AllowVSync{Allow: false}))
	require.NoError(t, rd.SetOption(AllowFullscreen{Allow: true}))

	got, err := rd.Option(KindAllowVSync)
	require.NoError(t, err)
	assert.IsType(t, AllowVSync{}, got)
	assert.Equal(t, AllowVSync{Allow: false}, got)
}

func TestUnknownOption(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	for _, kind := range []OptionKind{0, -1, KindSoftMemoryLimit + 1, 99} {
		got, err := rd.Option(kind)
		assert.ErrorIs(t, err, ErrUnknownOption, "kind %d", kind)
		assert.Nil(t, got)

		_, err = rd.OptionF32(kind)
		assert.ErrorIs(t, err, ErrUnknownOption)

		assert.ErrorIs(t, rd.SetOptionF32(kind, 1), ErrUnknownOption)
	}

	assert.ErrorIs(t, rd.SetOption(nil), ErrUnknownOption)
}

func TestDelayForDebuggerRange(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	err := rd.SetOption(DelayForDebugger{Delay: -time.Second})
	assert.ErrorIs(t, err, ErrOptionValueOutOfRange)

	err = rd.SetOption(DelayForDebugger{Delay: time.Duration(math.MaxUint32+1) * time.Second})
	assert.ErrorIs(t, err, ErrOptionValueOutOfRange)

	require.NoError(t, rd.SetOption(DelayForDebugger{Delay: 1500 * time.Millisecond}))
	got, err := rd.Option(KindDelayForDebugger)
	require.NoError(t, err)
	assert.Equal(t, DelayForDebugger{Delay: time.Second}, got)
}

func TestSetOptionsStopsAtFirstError(t *testing.T) {
	rd, lib := newTestRenderDoc(t)

	err := rd.SetOptions(
		APIValidation{Enabled: true},
		DelayForDebugger{Delay: -time.Second},
		RefAllResources{Enabled: true},
	)
	assert.ErrorIs(t, err, ErrOptionValueOutOfRange)
	assert.Equal(t, uint32(1), lib.RawOption(native.OptionAPIValidation))
	assert.Equal(t, uint32(0), lib.RawOption(native.OptionRefAllResources))
}

func TestOptionF32(t *testing.T) {
	rd, _ := newTestRenderDoc(t)

	require.NoError(t, rd.SetOptionF32(KindSoftMemoryLimit, 256))
	v, err := rd.OptionF32(KindSoftMemoryLimit)
	require.NoError(t, err)
	assert.Equal(t, float32(256), v)

	got, err := rd.Option(KindSoftMemoryLimit)
	require.NoError(t, err)
	assert.Equal(t, SoftMemoryLimit{Megabytes: 256}, got)

	assert.ErrorIs(t, rd.SetOptionF32(KindSoftMemoryLimit, -1), ErrOptionRejected)
}

func TestOptionKinds(t *testing.T) {
	kinds := OptionKinds()
	require.Len(t, kinds, 12)

	seen := make(map[native.CaptureOption]OptionKind)
	for _, kind := range kinds {
		id, err := kind.NativeID()
		require.NoError(t, err)
		prev, dup := seen[id]
		assert.False(t, dup, "%s and %s share native id %d", kind, prev, id)
		seen[id] = kind
		assert.NotContains(t, kind.String(), "OptionKind(")
	}

	assert.Equal(t, "OptionKind(42)", OptionKind(42).String())
}

func TestOptionKindMatchesVariant(t *testing.T) {
	for _, kind := range OptionKinds() {
		opt, err := decodeOption(kind, 0)
		require.NoError(t, err)
		assert.Equal(t, kind, opt.Kind())
	}
}

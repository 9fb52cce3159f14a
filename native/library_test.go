package native_test

import (
	"path/filepath"
	"testing"

	"github.com/opd-ai/renderdoc/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenLibraryMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-renderdoc-library")

	lib, err := native.OpenLibrary(path)
	require.Error(t, err)
	assert.Nil(t, lib)
	assert.ErrorIs(t, err, native.ErrLibraryNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestDefaultLibraryName(t *testing.T) {
	assert.Contains(t, native.DefaultLibraryName(), "renderdoc")
}

// TestHandshakeRealLibrary runs against an installed RenderDoc when one
// is available.
func TestHandshakeRealLibrary(t *testing.T) {
	lib, err := native.OpenLibrary("")
	if err != nil {
		t.Skipf("RenderDoc not available: %v", err)
	}
	defer lib.Close()

	entry, version, err := native.Handshake(lib, native.RegisterFunc, nil)
	require.NoError(t, err)
	assert.Equal(t, native.RequiredVersion, version)

	before := entry.GetNumCaptures()
	assert.GreaterOrEqual(t, entry.GetNumCaptures(), before)
}

package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedShaders(t *testing.T) {
	for _, name := range []string{"overlay.vert", "overlay.frag"} {
		src, err := LoadShader(Shaders, name)
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(src, "#version 330 core"), name)
		assert.True(t, strings.HasSuffix(src, "\x00"), name)
	}
	assert.Contains(t, mustLoad(t, "overlay.vert"), "uniform mat4 uProj;")
}

func TestLoadShaderFromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x.frag"), []byte("void main() {}\x00"), 0o644))

	src, err := LoadShader(ShadersFrom(dir), "x.frag")
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\x00", src)

	_, err = LoadShader(ShadersFrom(dir), "missing.frag")
	assert.ErrorContains(t, err, `load shader "missing.frag"`)
}

func mustLoad(t *testing.T, name string) string {
	t.Helper()
	src, err := LoadShader(Shaders, name)
	require.NoError(t, err)
	return src
}

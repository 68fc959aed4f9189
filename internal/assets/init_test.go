package assets

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() fstest.MapFS {
	return fstest.MapFS{
		"DAWLogos/fl_studio.png":    {Data: []byte("bundled-flp")},
		"DAWLogos/ableton_live.png": {Data: []byte("bundled-als")},
		"Themes/Dark.json":          {Data: []byte(`{"Colors":{}}`)},
	}
}

func TestEnsureExternal_CopiesDefaults(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Assets")

	result, err := EnsureExternal(root, testBundle())

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, root, result.Root)
	assert.ElementsMatch(t, []string{"DAWLogos/fl_studio.png", "DAWLogos/ableton_live.png", "Themes/Dark.json"}, result.Copied)
	assert.Empty(t, result.Skipped)

	data, err := os.ReadFile(filepath.Join(root, LogosDirName, "fl_studio.png"))
	require.NoError(t, err)
	assert.Equal(t, "bundled-flp", string(data))
}

func TestEnsureExternal_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	custom := filepath.Join(root, LogosDirName, "fl_studio.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(custom), 0755))
	require.NoError(t, os.WriteFile(custom, []byte("my-artwork"), 0644))

	result, err := EnsureExternal(root, testBundle())
	require.NoError(t, err)
	assert.Contains(t, result.Skipped, "DAWLogos/fl_studio.png")

	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "my-artwork", string(data))

	// Second run copies nothing
	again, err := EnsureExternal(root, testBundle())
	require.NoError(t, err)
	assert.Empty(t, again.Copied)
	assert.Len(t, again.Skipped, 3)
}

func TestEnsureExternal_UnwritableRoot(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := EnsureExternal(filepath.Join(blocker, "Assets"), testBundle())
	assert.Error(t, err)
}

func TestEnsureExternal_MissingBundledDir(t *testing.T) {
	bundle := fstest.MapFS{"DAWLogos/logic_pro.png": {Data: []byte("x")}}

	result, err := EnsureExternal(t.TempDir(), bundle)

	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Contains(t, result.Failed, ThemesDirName)
	assert.Equal(t, []string{"DAWLogos/logic_pro.png"}, result.Copied)
}

func TestDefaults_ContainsEveryLogoAndTheme(t *testing.T) {
	bundled := Defaults()

	for _, name := range []string{"logic_pro.png", "fl_studio.png", "ableton_live.png", AppIconName} {
		_, err := fs.Stat(bundled, filepath.ToSlash(filepath.Join(LogosDirName, name)))
		assert.NoError(t, err, name)
	}

	themes, err := fs.Glob(bundled, ThemesDirName+"/*.json")
	require.NoError(t, err)
	assert.NotEmpty(t, themes)
}

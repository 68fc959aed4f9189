package assets

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawbrowser/daw-browser/internal/model"
)

func TestResolver_BundledFallback(t *testing.T) {
	r := NewResolver(t.TempDir(), testBundle())

	res := r.Resolve(model.KindFLStudio)

	require.NotNil(t, res)
	assert.Equal(t, "fl_studio.png", res.Name())
	assert.Equal(t, []byte("bundled-flp"), res.Content())
}

func TestResolver_ExternalShadowsBundled(t *testing.T) {
	external := t.TempDir()
	path := filepath.Join(external, LogosDirName, "fl_studio.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("custom-flp"), 0644))

	r := NewResolver(external, testBundle())

	res := r.Resolve(model.KindFLStudio)
	require.NotNil(t, res)
	assert.Equal(t, []byte("custom-flp"), res.Content())
}

func TestResolver_NeitherTier(t *testing.T) {
	r := NewResolver(t.TempDir(), fstest.MapFS{})

	assert.Nil(t, r.Resolve(model.KindLogicPro))
	assert.Nil(t, NewResolver("", nil).Resolve(model.KindLogicPro))
}

func TestResolver_CacheAndInvalidate(t *testing.T) {
	external := t.TempDir()
	r := NewResolver(external, testBundle())

	first := r.Resolve(model.KindAbletonLive)
	require.NotNil(t, first)
	assert.Equal(t, []byte("bundled-als"), first.Content())

	path := filepath.Join(external, LogosDirName, "ableton_live.png")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("custom-als"), 0644))

	// Cached until invalidated
	assert.Equal(t, []byte("bundled-als"), r.Resolve(model.KindAbletonLive).Content())

	r.Invalidate()
	assert.Equal(t, []byte("custom-als"), r.Resolve(model.KindAbletonLive).Content())
}

func TestResolver_UnknownKindUsesAppIcon(t *testing.T) {
	r := NewResolver("", Defaults())

	res := r.Resolve(model.DAWKind("reaper"))
	require.NotNil(t, res)
	assert.Equal(t, AppIconName, res.Name())
}

package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dawbrowser/daw-browser/internal/model"
)

// writeFile creates path (and parents) with the given modification time
func writeFile(t *testing.T, path string, modTime time.Time) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

func TestScan_MissingRoot(t *testing.T) {
	projects := NewDefault().Scan(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestScan_RootIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "song.flp")
	writeFile(t, file, time.Now())

	assert.Empty(t, NewDefault().Scan(file))
}

func TestScan_NoProjects(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "notes.txt"), now)
	writeFile(t, filepath.Join(root, "a", "b", "mix.wav"), now)

	projects := NewDefault().Scan(root)

	require.NotNil(t, projects)
	assert.Empty(t, projects)
}

func TestScan_PicksNewestDemoClip(t *testing.T) {
	root := t.TempDir()
	base := time.Now().Add(-time.Hour)
	writeFile(t, filepath.Join(root, "song.flp"), base)
	writeFile(t, filepath.Join(root, "old_demo.wav"), base.Add(1*time.Minute))
	writeFile(t, filepath.Join(root, "song_demo.wav"), base.Add(10*time.Minute))

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 1)
	assert.Equal(t, model.KindFLStudio, projects[0].Kind)
	assert.Equal(t, "song", projects[0].Name)
	assert.Equal(t, filepath.Join(root, "song_demo.wav"), projects[0].DemoClipPath)
	assert.Equal(t, filepath.Join(root, "song.flp"), projects[0].FilePath)
}

func TestScan_DemoClipIsNotRecursive(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "track.als"), now)
	writeFile(t, filepath.Join(root, "Samples", "kick.wav"), now)

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 1)
	assert.Equal(t, model.KindAbletonLive, projects[0].Kind)
	assert.False(t, projects[0].HasDemoClip())
}

func TestScan_AllClipFormats(t *testing.T) {
	for _, ext := range []string{".mp3", ".wav", ".flac", ".m4a", ".MP3"} {
		t.Run(ext, func(t *testing.T) {
			root := t.TempDir()
			now := time.Now()
			writeFile(t, filepath.Join(root, "beat.flp"), now)
			writeFile(t, filepath.Join(root, "bounce"+ext), now)

			projects := NewDefault().Scan(root)

			require.Len(t, projects, 1)
			assert.Equal(t, filepath.Join(root, "bounce"+ext), projects[0].DemoClipPath)
		})
	}
}

func TestScan_ExcludedFolders(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "keep", "song.flp"), now)
	writeFile(t, filepath.Join(root, "Backups", "song.flp"), now)
	writeFile(t, filepath.Join(root, "keep", "backup", "song [2024].flp"), now)
	writeFile(t, filepath.Join(root, "a", "render", "deep", "x.als"), now)
	writeFile(t, filepath.Join(root, ".git", "objects", "y.als"), now)
	writeFile(t, filepath.Join(root, ".svn", "z.flp"), now)

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 1)
	assert.Equal(t, filepath.Join(root, "keep", "song.flp"), projects[0].FilePath)
}

func TestScan_RootInsideExcludedFolder(t *testing.T) {
	for _, dir := range []string{"Backups", "render", ".git"} {
		t.Run(dir, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), dir, "music")
			writeFile(t, filepath.Join(root, "song.flp"), time.Now())
			writeFile(t, filepath.Join(root, "song.wav"), time.Now())

			projects := NewDefault().Scan(root)

			require.NotNil(t, projects)
			assert.Empty(t, projects)
		})
	}
}

func TestScan_RootIsExcludedFolder(t *testing.T) {
	root := filepath.Join(t.TempDir(), "backup")
	writeFile(t, filepath.Join(root, "song.flp"), time.Now())

	assert.Empty(t, NewDefault().Scan(root))
}

func TestScan_LogicBundleDirectory(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	bundle := filepath.Join(root, "Album", "Ballad.logicx")
	writeFile(t, filepath.Join(bundle, "Alternatives", "000", "ProjectData"), now)
	writeFile(t, filepath.Join(root, "Album", "ballad_mix.mp3"), now)

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 1)
	assert.Equal(t, model.KindLogicPro, projects[0].Kind)
	assert.Equal(t, "Ballad", projects[0].Name)
	assert.Equal(t, bundle, projects[0].FilePath)
	assert.Equal(t, filepath.Join(root, "Album", "ballad_mix.mp3"), projects[0].DemoClipPath)
}

func TestScan_SiblingProjectsShareClip(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "a.flp"), now)
	writeFile(t, filepath.Join(root, "b.als"), now)
	writeFile(t, filepath.Join(root, "demo.wav"), now)

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 2)
	for _, p := range projects {
		assert.Equal(t, filepath.Join(root, "demo.wav"), p.DemoClipPath)
	}
}

func TestScan_RelativeRootYieldsAbsolutePaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "song.flp"), time.Now())

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	defer os.Chdir(wd)

	projects := NewDefault().Scan(".")

	require.Len(t, projects, 1)
	assert.True(t, filepath.IsAbs(projects[0].FilePath))
}

func TestScan_UnreadableSubtreeIsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "ok", "song.flp"), now)
	writeFile(t, filepath.Join(root, "locked", "hidden.flp"), now)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0000))
	defer os.Chmod(locked, 0755)

	projects := NewDefault().Scan(root)

	require.Len(t, projects, 1)
	assert.Equal(t, "song", projects[0].Name)
}

func TestScan_OnVisit(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	writeFile(t, filepath.Join(root, "a.txt"), now)
	writeFile(t, filepath.Join(root, "b", "c.flp"), now)

	var visited []string
	opts := DefaultOptions()
	opts.OnVisit = func(path string) { visited = append(visited, path) }

	New(opts).Scan(root)

	assert.Len(t, visited, 2)
}

func TestFindDemoClip_TieGoesToLastEnumerated(t *testing.T) {
	root := t.TempDir()
	same := time.Now().Add(-time.Minute).Truncate(time.Second)
	writeFile(t, filepath.Join(root, "a.wav"), same)
	writeFile(t, filepath.Join(root, "b.wav"), same)

	// os.ReadDir enumerates in name order
	assert.Equal(t, filepath.Join(root, "b.wav"), NewDefault().FindDemoClip(root))
}

func TestFindDemoClip_MissingDirectory(t *testing.T) {
	assert.Equal(t, "", NewDefault().FindDemoClip(filepath.Join(t.TempDir(), "gone")))
}

func TestIsExcludedPath(t *testing.T) {
	s := NewDefault()
	root := filepath.Join("/", "music")

	tests := []struct {
		path     string
		expected bool
	}{
		{filepath.Join(root, "song.flp"), false},
		{filepath.Join(root, "a", "song.flp"), false},
		{filepath.Join(root, "BACKUPS", "song.flp"), true},
		{filepath.Join(root, "a", "render", "b", "song.flp"), true},
		{filepath.Join(root, "rendered", "song.flp"), false},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, s.IsExcludedPath(root, test.path), test.path)
	}

	excludedRoot := filepath.Join("/", "backups", "music")
	assert.True(t, s.IsExcludedPath(excludedRoot, filepath.Join(excludedRoot, "song.flp")))
}

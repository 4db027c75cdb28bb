package hls

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterPlaylistBytes(t *testing.T) {
	want := "#EXTM3U\n" +
		"#EXT-X-VERSION:3\n\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=640x360\n360p.m3u8\n\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=1400000,RESOLUTION=854x480\n480p.m3u8\n\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=2800000,RESOLUTION=1280x720\n720p.m3u8\n\n" +
		"#EXT-X-STREAM-INF:BANDWIDTH=5000000,RESOLUTION=1920x1080\n1080p.m3u8\n\n"

	got, err := MasterPlaylist(Ladder)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// same input, same bytes
	again, err := MasterPlaylist(Ladder)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestMasterPlaylistRespectsOrder(t *testing.T) {
	got, err := MasterPlaylist([]string{"1080", "360"})
	require.NoError(t, err)
	assert.Equal(t,
		"#EXTM3U\n#EXT-X-VERSION:3\n\n"+
			"#EXT-X-STREAM-INF:BANDWIDTH=5000000,RESOLUTION=1920x1080\n1080p.m3u8\n\n"+
			"#EXT-X-STREAM-INF:BANDWIDTH=800000,RESOLUTION=640x360\n360p.m3u8\n\n",
		got)
}

func TestWriteMasterPlaylistUnsupportedLabel(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteMasterPlaylist(dir, []string{"360", "240"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported resolution")

	// nothing may be left behind, not even a partial file
	_, statErr := os.Stat(filepath.Join(dir, "master.m3u8"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteMasterPlaylistWritesFile(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteMasterPlaylist(dir, Ladder)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "master.m3u8"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	want, _ := MasterPlaylist(Ladder)
	assert.Equal(t, want, string(content))
}

func TestLookup(t *testing.T) {
	r, err := Lookup("720")
	require.NoError(t, err)
	assert.Equal(t, 2800000, r.Bandwidth)
	assert.Equal(t, 1280, r.Width)
	assert.Equal(t, 720, r.Height)
	assert.Equal(t, "2800k", r.Bitrate)

	_, err = Lookup("4k")
	assert.Error(t, err)
}

package ffmpeg

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscodeArgs(t *testing.T) {
	r := &fakeRunner{}
	err := Transcode(r, "media/videos/clip.mp4", "out", "720")
	require.NoError(t, err)
	require.Len(t, r.calls, 1)

	call := r.calls[0]
	assert.Equal(t, "ffmpeg", call[0])
	assert.Contains(t, call, "-hls_time")
	assert.Contains(t, call, "vod")
	assert.Contains(t, call, "scale=-2:720")
	assert.Contains(t, call, "2800k")
	assert.Contains(t, call, filepath.Join("out", "720p_%03d.ts"))
	assert.Equal(t, filepath.Join("out", "720p.m3u8"), call[len(call)-1])
}

func TestTranscodeUnsupportedLabel(t *testing.T) {
	r := &fakeRunner{}
	err := Transcode(r, "clip.mp4", "out", "240")
	require.Error(t, err)
	assert.Empty(t, r.calls, "unsupported label must not reach ffmpeg")
}

func TestTranscodeEncoderFailure(t *testing.T) {
	r := &fakeRunner{err: errors.New("exit status 1")}
	err := Transcode(r, "clip.mp4", "out", "360")
	assert.Error(t, err)
}

func TestPosterArgs(t *testing.T) {
	r := &fakeRunner{}
	err := Poster(r, "clip.mp4", "posters/clip.jpg")
	require.NoError(t, err)
	require.Len(t, r.calls, 1)

	assert.Equal(t, []string{
		"ffmpeg",
		"-i", "clip.mp4",
		"-ss", "00:00:10.000",
		"-vframes", "1",
		"-update", "1",
		"posters/clip.jpg",
	}, r.calls[0])
}

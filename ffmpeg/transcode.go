package ffmpeg

import (
	"fmt"
	"path/filepath"

	"videoflix-site/hls"
)

// Transcode produces one HLS rendition of src in outDir: 4-second .ts
// segments named <label>p_NNN.ts plus a <label>p.m3u8 sub-playlist.
// A non-zero ffmpeg exit means no usable output for this rendition.
func Transcode(r Runner, src, outDir, label string) error {
	ren, err := hls.Lookup(label)
	if err != nil {
		return err
	}

	segments := filepath.Join(outDir, fmt.Sprintf("%sp_%%03d.ts", label))
	playlist := filepath.Join(outDir, fmt.Sprintf("%sp.m3u8", label))

	args := []string{
		"-i", src,
		"-c:a", "aac",
		"-ar", "48000",
		"-b:a", "128k",
		"-c:v", "h264",
		"-profile:v", "main",
		"-crf", "20",
		"-sc_threshold", "0",
		"-g", "48",
		"-keyint_min", "48",
		"-hls_time", "4",
		"-hls_playlist_type", "vod",
		"-vf", fmt.Sprintf("scale=-2:%d", ren.Height),
		"-b:v", ren.Bitrate,
		"-hls_segment_filename", segments,
		playlist,
	}

	_, stderr, err := r.Run("ffmpeg", args...)
	if err != nil {
		return fmt.Errorf("transcode to %sp failed: %w: %s", label, err, stderr)
	}
	return nil
}

// Poster grabs a single frame at the 10 second mark, overwriting dst if
// it already exists.
func Poster(r Runner, src, dst string) error {
	_, stderr, err := r.Run("ffmpeg",
		"-i", src,
		"-ss", "00:00:10.000",
		"-vframes", "1",
		"-update", "1",
		dst)
	if err != nil {
		return fmt.Errorf("poster extraction failed: %w: %s", err, stderr)
	}
	return nil
}

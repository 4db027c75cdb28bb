package hls

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// MasterPlaylist renders the multivariant playlist text for the given
// resolution labels, in order. Same labels always produce identical bytes.
func MasterPlaylist(labels []string) (string, error) {
	var b strings.Builder
	b.WriteString("#EXTM3U\n")
	b.WriteString("#EXT-X-VERSION:3\n\n")

	for _, label := range labels {
		r, err := Lookup(label)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "#EXT-X-STREAM-INF:BANDWIDTH=%d,RESOLUTION=%dx%d\n", r.Bandwidth, r.Width, r.Height)
		fmt.Fprintf(&b, "%sp.m3u8\n\n", label)
	}

	return b.String(), nil
}

// WriteMasterPlaylist writes master.m3u8 into dir and returns its path.
// An unknown label fails before anything is written, so no partial
// playlist is ever left on disk.
func WriteMasterPlaylist(dir string, labels []string) (string, error) {
	text, err := MasterPlaylist(labels)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, "master.m3u8")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write master playlist: %w", err)
	}
	return path, nil
}

package videos

import (
	"strconv"

	"videoflix-site/storage"
)

// Sidecars are the per-field text objects under text/<name>/ that the
// read views assemble listings from. One field per object.
func (v *Video) Sidecars() map[string]string {
	return map[string]string{
		"title.txt":          v.Title,
		"description.txt":    v.Description,
		"category.txt":       v.Category,
		"age.txt":            strconv.FormatUint(uint64(v.Age), 10),
		"resolution.txt":     v.Resolution,
		"release_date.txt":   v.ReleaseYear,
		"video_duration.txt": v.VideoDuration,
		"hlsPlaylist.txt":    v.HLSPlaylist,
	}
}

// PublishSidecars pushes every metadata field for this video, reusing
// the publisher's best-effort contract.
func PublishSidecars(pub *storage.Publisher, v *Video) {
	prefix := storage.TextPrefix(v.BaseName())
	for file, content := range v.Sidecars() {
		pub.UploadString(content, prefix+file)
	}
}

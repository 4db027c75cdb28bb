package videos

import (
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"videoflix-site/database"
)

// Video is one uploaded source and its derived state. VideoFile is the
// filename of the locally stored source under <media root>/videos;
// HLSPlaylist stays empty until a master playlist has actually been
// produced and uploaded, and is never touched again after that.
type Video struct {
	gorm.Model
	Title         string
	Description   string
	Category      string
	Age           uint   // minimum viewer age
	Resolution    string // source resolution label, e.g. "HD"
	ReleaseYear   string
	VideoDuration string // HH:MM:SS, "00:00:00" when probing failed
	VideoFile     string
	HLSPlaylist   string
}

// BaseName is the source filename without its extension. It keys every
// remote artifact path for this video.
func (v *Video) BaseName() string {
	base := filepath.Base(v.VideoFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func Get(id uint) (*Video, error) {
	db := database.Get()
	var video Video
	if err := db.First(&video, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func SetDuration(id uint, duration string) error {
	db := database.Get()
	log.Debugln("video", id, "duration ->", duration)
	return db.Model(&Video{}).Where("id = ?", id).Update("video_duration", duration).Error
}

func SetHLSPlaylist(id uint, url string) error {
	db := database.Get()
	log.Debugln("video", id, "hls_playlist ->", url)
	return db.Model(&Video{}).Where("id = ?", id).Update("hls_playlist", url).Error
}

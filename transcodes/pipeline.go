package transcodes

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"videoflix-site/config"
	"videoflix-site/ffmpeg"
	"videoflix-site/hls"
	"videoflix-site/storage"
	"videoflix-site/videos"
)

// ConvertToHLS is the whole pipeline for one video: probe, poster,
// per-rendition transcode, master playlist, publish. Apart from a
// missing video record every stage failure is logged and the job keeps
// going, so a bad encode costs one rendition instead of the whole set.
// All stages overwrite their outputs, which is what makes redelivered
// jobs safe.
func (w *Worker) ConvertToHLS(videoID uint, videoName string) error {
	log.Infof("starting conversion for video %d (%s)", videoID, videoName)

	video, err := videos.Get(videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("video %d does not exist", videoID)
		}
		return fmt.Errorf("fetch video %d: %w", videoID, err)
	}

	srcPath := filepath.Join(config.GetMediaRoot(), "videos", video.VideoFile)
	if _, err := os.Stat(srcPath); err != nil {
		log.Warnln("source file missing:", srcPath)
	}

	duration := ffmpeg.Duration(w.runner, srcPath)
	if err := videos.SetDuration(videoID, duration); err != nil {
		log.Errorln("failed to persist duration:", err)
	}
	w.pub.UploadString(duration, storage.TextPrefix(videoName)+"video_duration.txt")

	outDir := filepath.Join(config.GetMediaRoot(), "videos", videoName)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create working directory %s: %w", outDir, err)
	}

	w.extractPoster(srcPath, videoName)

	for _, label := range hls.Ladder {
		log.Infof("converting video %d to %sp...", videoID, label)
		if err := ffmpeg.Transcode(w.runner, srcPath, outDir, label); err != nil {
			log.Errorf("error converting video %d to %sp: %v", videoID, label, err)
		}
	}

	// the master playlist deliberately lists all renditions, matching
	// what clients were already written against, even when an encode
	// failed and its sub-playlist is absent
	masterPath, err := hls.WriteMasterPlaylist(outDir, hls.Ladder)
	if err != nil {
		log.Errorln("failed to build master playlist:", err)
	} else {
		masterKey := storage.MasterPlaylistKey(videoName)
		w.pub.Upload(masterPath, masterKey)
		if err := videos.SetHLSPlaylist(videoID, storage.PublicURL(masterKey)); err != nil {
			log.Errorln("failed to persist playlist URL:", err)
		}
		w.pub.UploadString(storage.PublicURL(masterKey), storage.TextPrefix(videoName)+"hlsPlaylist.txt")
	}

	for _, label := range hls.Ladder {
		w.uploadRendition(outDir, videoName, label)
	}

	log.Infof("finished conversion for video %d", videoID)
	return nil
}

func (w *Worker) extractPoster(srcPath, videoName string) {
	postersDir := filepath.Join(config.GetMediaRoot(), "videos", "posters")
	if err := os.MkdirAll(postersDir, 0755); err != nil {
		log.Errorln("failed to create posters directory:", err)
		return
	}

	posterPath := filepath.Join(postersDir, videoName+".jpg")
	if err := ffmpeg.Poster(w.runner, srcPath, posterPath); err != nil {
		log.Errorln("failed to extract poster:", err)
		return
	}
	w.pub.Upload(posterPath, storage.PosterKey(videoName))
}

// uploadRendition publishes one rendition's sub-playlist and segments.
// A rendition whose encode failed has no playlist on disk and is
// skipped entirely.
func (w *Worker) uploadRendition(outDir, videoName, label string) {
	playlist := filepath.Join(outDir, label+"p.m3u8")
	if _, err := os.Stat(playlist); err != nil {
		log.Warnf("no %sp playlist for %s, skipping rendition upload", label, videoName)
		return
	}

	prefix := storage.HLSPrefix(videoName)
	w.pub.Upload(playlist, prefix+label+"p.m3u8")

	segments, err := filepath.Glob(filepath.Join(outDir, label+"p_*.ts"))
	if err != nil {
		log.Errorln("failed to glob segments:", err)
		return
	}
	for _, segment := range segments {
		w.pub.Upload(segment, prefix+filepath.Base(segment))
	}
}

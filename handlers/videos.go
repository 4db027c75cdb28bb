package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"videoflix-site/config"
	"videoflix-site/database"
	"videoflix-site/transcodes"
	"videoflix-site/videos"
)

// CreateVideo accepts a multipart upload, stores the source under the
// media root, and creates the record plus its conversion job in one
// transaction. The job only becomes visible to the worker when the
// record is committed with it.
func CreateVideo(c echo.Context) error {
	fileHeader, err := c.FormFile("video_file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "video_file is required"})
	}

	videosDir := filepath.Join(config.GetMediaRoot(), "videos")
	if err := os.MkdirAll(videosDir, 0755); err != nil {
		log.Errorln("failed to create videos directory:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error storing upload"})
	}

	filename := filepath.Base(fileHeader.Filename)
	dstPath := filepath.Join(videosDir, filename)
	if err := saveUpload(fileHeader, dstPath); err != nil {
		log.Errorln("failed to store upload:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error storing upload"})
	}

	age, _ := strconv.ParseUint(c.FormValue("age"), 10, 32)
	video := videos.Video{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Age:         uint(age),
		Resolution:  c.FormValue("resolution"),
		ReleaseYear: c.FormValue("release_date"),
		VideoFile:   filename,
	}

	db := database.Get()
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&video).Error; err != nil {
			return err
		}
		return transcodes.Enqueue(tx, video.ID, video.BaseName())
	})
	if err != nil {
		log.Errorln("failed to create video:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error creating video"})
	}
	log.Infof("enqueued video %d (%s) for conversion", video.ID, video.BaseName())

	videos.PublishSidecars(publisher, &video)

	return c.JSON(http.StatusCreated, map[string]uint{"id": video.ID})
}

// DeleteVideo removes the record first, then hands artifact cleanup to
// the reconciler. Cleanup problems never surface to the caller.
func DeleteVideo(c echo.Context) error {
	id, _ := strconv.ParseUint(c.Param("id"), 10, 64)

	video, err := videos.Get(uint(id))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No such video"})
	}

	db := database.Get()
	if err := db.Unscoped().Delete(&videos.Video{}, id).Error; err != nil {
		log.Errorln("failed to delete video record:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Error deleting video"})
	}

	reconciler.Run(video.VideoFile)

	return c.NoContent(http.StatusNoContent)
}

func saveUpload(fileHeader *multipart.FileHeader, dstPath string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

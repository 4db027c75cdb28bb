package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"videoflix-site/cache"
	"videoflix-site/storage"
)

// PlaybackURL resolves the direct playback address for one rendition of
// a video, cached under "<video_key>_<resolution>".
func PlaybackURL(c echo.Context) error {
	videoKey := c.QueryParam("video_key")
	resolution := c.QueryParam("resolution")

	if videoKey == "" || resolution == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Video key and resolution are required",
		})
	}

	cacheKey := fmt.Sprintf("%s_%s", videoKey, resolution)
	url, err := cache.GetOrCompute(c.Request().Context(), cacheStore, cacheKey, cache.DefaultTTL, func() (string, error) {
		return storage.PublicURL(fmt.Sprintf("hls/%s/%s.m3u8", videoKey, resolution)), nil
	})
	if err != nil {
		log.Errorln("error resolving playback URL:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
	}

	return c.JSON(http.StatusOK, map[string]string{"video_url": url})
}

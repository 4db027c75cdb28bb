package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"videoflix-site/cache"
	"videoflix-site/storage"
)

// VideoData is the cached listing entry assembled from a video's
// sidecar objects. The shape is fixed: writer and reader share this
// struct, so a cache entry cannot silently drift.
type VideoData struct {
	Subfolder      string `json:"subfolder"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	HLSPlaylistURL string `json:"hlsPlaylistUrl"`
	PosterURL      string `json:"posterUrlGcs"`
	Age            string `json:"age"`
	Resolution     string `json:"resolution"`
	ReleaseDate    string `json:"release_date"`
	VideoDuration  string `json:"video_duration"`
}

// PosterAndText serves the full video listing: one VideoData per video
// found in the bucket's text/ namespace, joined with its poster URL.
func PosterAndText(c echo.Context) error {
	ctx := c.Request().Context()

	posterURLs, err := getPosterURLs(c)
	if err != nil {
		log.Errorln("error fetching poster URLs:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	listing, err := cache.GetOrCompute(ctx, cacheStore, "gcs_video_text_data", cache.DefaultTTL, func() (string, error) {
		data, err := fetchVideoTextData(posterURLs)
		if err != nil {
			return "", err
		}
		encoded, err := json.Marshal(data)
		return string(encoded), err
	})
	if err != nil {
		log.Errorln("error fetching video text data:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, []byte(listing))
}

func getPosterURLs(c echo.Context) ([]string, error) {
	ctx := c.Request().Context()

	cached, err := cache.GetOrCompute(ctx, cacheStore, "poster_urls", cache.DefaultTTL, func() (string, error) {
		keys, err := store.List("video-posters/")
		if err != nil {
			return "", err
		}
		urls := make([]string, 0, len(keys))
		for _, key := range keys {
			urls = append(urls, storage.PublicURL(key))
		}
		encoded, err := json.Marshal(urls)
		return string(encoded), err
	})
	if err != nil {
		return nil, err
	}

	var urls []string
	if err := json.Unmarshal([]byte(cached), &urls); err != nil {
		return nil, err
	}
	return urls, nil
}

// fetchVideoTextData walks text/ for description.txt objects, treating
// each as one video, and reads the sibling sidecar fields.
func fetchVideoTextData(posterURLs []string) ([]VideoData, error) {
	keys, err := store.List("text/")
	if err != nil {
		return nil, err
	}

	data := []VideoData{}
	for _, key := range keys {
		if !strings.HasSuffix(key, "/description.txt") {
			continue
		}
		parts := strings.Split(key, "/")
		if len(parts) < 2 {
			continue
		}
		subfolder := parts[1]
		data = append(data, videoDataFor(subfolder, posterURLs))
	}
	return data, nil
}

func videoDataFor(subfolder string, posterURLs []string) VideoData {
	prefix := storage.TextPrefix(subfolder)

	posterURL := ""
	for _, url := range posterURLs {
		if strings.Contains(url, subfolder) {
			posterURL = url
			break
		}
	}

	return VideoData{
		Subfolder:      subfolder,
		Title:          sidecarText(prefix+"title.txt", ""),
		Description:    sidecarText(prefix+"description.txt", ""),
		Category:       sidecarText(prefix+"category.txt", ""),
		HLSPlaylistURL: sidecarText(prefix+"hlsPlaylist.txt", ""),
		PosterURL:      posterURL,
		Age:            sidecarText(prefix+"age.txt", "0"),
		Resolution:     sidecarText(prefix+"resolution.txt", "HD"),
		ReleaseDate:    sidecarText(prefix+"release_date.txt", "2020"),
		VideoDuration:  sidecarText(prefix+"video_duration.txt", "00:00:00"),
	}
}

func sidecarText(key, fallback string) string {
	content, err := store.GetString(key)
	if err != nil {
		return fallback
	}
	return strings.TrimSpace(content)
}

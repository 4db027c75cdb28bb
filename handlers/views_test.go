package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videoflix-site/cache"
	"videoflix-site/cleanup"
)

type fakeObjectStore struct {
	objects map[string]string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: map[string]string{}}
}

func (f *fakeObjectStore) PutFile(key, localPath string) error { f.objects[key] = localPath; return nil }
func (f *fakeObjectStore) PutString(key, content string) error { f.objects[key] = content; return nil }

func (f *fakeObjectStore) GetString(key string) (string, error) {
	content, ok := f.objects[key]
	if !ok {
		return "", errors.New("no such key")
	}
	return content, nil
}

func (f *fakeObjectStore) List(prefix string) ([]string, error) {
	var keys []string
	for key := range f.objects {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *fakeObjectStore) Delete(key string) error         { delete(f.objects, key); return nil }
func (f *fakeObjectStore) Exists(key string) (bool, error) { _, ok := f.objects[key]; return ok, nil }

type fakeCache struct {
	entries map[string]string
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (f *fakeCache) SetEx(_ context.Context, key, value string, _ time.Duration) error {
	f.entries[key] = value
	return nil
}

func setup(t *testing.T) (*fakeObjectStore, *fakeCache) {
	t.Helper()
	t.Setenv("VIDEOFLIX_PUBLIC_URL_BASE", "https://storage.googleapis.com/videoflix-storage")

	objects := newFakeObjectStore()
	entries := &fakeCache{entries: map[string]string{}}
	cache.Init(logrus.New())
	cleanup.Init(logrus.New())
	require.NoError(t, Init(logrus.New(), objects, entries, cleanup.NewReconciler(objects)))
	return objects, entries
}

func get(t *testing.T, handler echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestPlaybackURL(t *testing.T) {
	_, entries := setup(t)

	rec := get(t, PlaybackURL, "/api/video-url?video_key=clip&resolution=360p")
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t,
		"https://storage.googleapis.com/videoflix-storage/hls/clip/360p.m3u8",
		body["video_url"])

	// cached under <video_key>_<resolution>
	assert.Contains(t, entries.entries, "clip_360p")
}

func TestPlaybackURLMissingParams(t *testing.T) {
	setup(t)
	rec := get(t, PlaybackURL, "/api/video-url?video_key=clip")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPosterAndText(t *testing.T) {
	objects, entries := setup(t)
	objects.objects["video-posters/clip.jpg"] = "jpeg"
	objects.objects["text/clip/description.txt"] = "A short film"
	objects.objects["text/clip/title.txt"] = "Clip"
	objects.objects["text/clip/age.txt"] = "12\n"
	objects.objects["text/clip/hlsPlaylist.txt"] = "https://storage.googleapis.com/videoflix-storage/hls/clip/master.m3u8"

	rec := get(t, PosterAndText, "/api/videos")
	assert.Equal(t, http.StatusOK, rec.Code)

	var listing []VideoData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing, 1)

	got := listing[0]
	assert.Equal(t, "clip", got.Subfolder)
	assert.Equal(t, "Clip", got.Title)
	assert.Equal(t, "A short film", got.Description)
	assert.Equal(t, "12", got.Age)
	assert.Equal(t, "HD", got.Resolution, "missing sidecar falls back to default")
	assert.Contains(t, got.PosterURL, "video-posters/clip.jpg")

	assert.Contains(t, entries.entries, "poster_urls")
	assert.Contains(t, entries.entries, "gcs_video_text_data")
}

func TestMyFilmsListsAndCaches(t *testing.T) {
	objects, entries := setup(t)
	objects.objects["myFilms/alpha/placeholder.txt"] = ""
	objects.objects["myFilms/beta/placeholder.txt"] = ""

	rec := get(t, MyFilms, "/api/my-films")
	assert.Equal(t, http.StatusOK, rec.Code)

	var names []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &names))
	assert.Equal(t, []string{"alpha", "beta"}, names)
	assert.Contains(t, entries.entries, "my_films_subfolders")
}

func TestCreateMyFilmsIdempotent(t *testing.T) {
	objects, _ := setup(t)

	e := echo.New()
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/my-films",
			strings.NewReader(`{"file_name": "alpha"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, CreateMyFilms(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	assert.Contains(t, objects.objects, "myFilms/alpha/placeholder.txt")
}

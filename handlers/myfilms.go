package handlers

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"videoflix-site/cache"
	"videoflix-site/storage"
)

// MyFilms lists the user-film subfolders, identified by their
// placeholder objects under myFilms/.
func MyFilms(c echo.Context) error {
	listing, err := cache.GetOrCompute(c.Request().Context(), cacheStore, "my_films_subfolders", cache.DefaultTTL, func() (string, error) {
		keys, err := store.List("myFilms/")
		if err != nil {
			return "", err
		}

		seen := map[string]bool{}
		names := []string{}
		for _, key := range keys {
			if !strings.HasSuffix(key, "placeholder.txt") {
				continue
			}
			parts := strings.Split(key, "/")
			if len(parts) > 1 && !seen[parts[1]] {
				seen[parts[1]] = true
				names = append(names, parts[1])
			}
		}
		sort.Strings(names)

		encoded, err := json.Marshal(names)
		return string(encoded), err
	})
	if err != nil {
		log.Errorln("error fetching myFilms subfolders:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSONBlob(http.StatusOK, []byte(listing))
}

// CreateMyFilms creates an (empty) film subfolder by writing its
// placeholder object. Creating the same folder twice is a no-op.
func CreateMyFilms(c echo.Context) error {
	var body struct {
		FileName string `json:"file_name"`
	}
	if err := c.Bind(&body); err != nil || body.FileName == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file_name is required"})
	}

	prefix := storage.MyFilmsPrefix(body.FileName)
	placeholder := prefix + "placeholder.txt"

	exists, err := store.Exists(placeholder)
	if err != nil {
		log.Errorln("error checking myFilms folder:", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if !exists {
		if err := store.PutString(placeholder, ""); err != nil {
			log.Errorln("error creating myFilms folder:", err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		log.Infoln("created myFilms subfolder:", prefix)
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "folder " + prefix + " created",
		"url":     storage.PublicURL(prefix),
	})
}

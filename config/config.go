package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var gitSHA string
var buildDate string

// root for uploaded sources and per-video working directories
func GetMediaRoot() string {
	value, exists := os.LookupEnv("VIDEOFLIX_MEDIA_ROOT")
	if exists {
		return value
	}
	return "media"
}

// defaults to GetMediaRoot() / config
func GetConfigDir() string {
	value, exists := os.LookupEnv("VIDEOFLIX_CONFIG_DIR")
	if exists {
		return value
	}
	return filepath.Join(GetMediaRoot(), "config")
}

func GetBucketName() (string, error) {
	key := "VIDEOFLIX_BUCKET_NAME"
	value, exists := os.LookupEnv(key)
	if exists {
		return value, nil
	}
	return "", fmt.Errorf("please set %s", key)
}

// base URL under which bucket objects are publicly reachable.
// Defaults to the bucket's storage.googleapis.com address so object
// URLs keep the shape the frontend already expects.
func GetPublicURLBase() string {
	if value, exists := os.LookupEnv("VIDEOFLIX_PUBLIC_URL_BASE"); exists {
		return strings.TrimSuffix(value, "/")
	}
	bucket, err := GetBucketName()
	if err != nil {
		bucket = "videoflix-storage"
	}
	return "https://storage.googleapis.com/" + bucket
}

func GetRedisAddr() string {
	value, exists := os.LookupEnv("VIDEOFLIX_REDIS_ADDR")
	if exists {
		return value
	}
	return "localhost:6379"
}

func GetListenAddr() string {
	value, exists := os.LookupEnv("VIDEOFLIX_LISTEN_ADDR")
	if exists {
		return value
	}
	return ":8080"
}

func GetGitSHA() string {
	if gitSHA == "" {
		return "<not provided>"
	} else {
		return gitSHA
	}
}

func GetBuildDate() string {
	if buildDate == "" {
		return "<not provided>"
	} else {
		return buildDate
	}
}

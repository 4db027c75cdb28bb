package storage

import "videoflix-site/config"

// ObjectStore is the bucket surface the pipeline needs. The production
// implementation is S3Store; tests use an in-memory fake.
type ObjectStore interface {
	PutFile(key, localPath string) error
	PutString(key, content string) error
	GetString(key string) (string, error)
	List(prefix string) ([]string, error)
	Delete(key string) error
	Exists(key string) (bool, error)
}

// remote key layout, keyed by the video's base name
func MasterPlaylistKey(name string) string {
	return "hls/" + name + "/master.m3u8"
}

func HLSPrefix(name string) string {
	return "hls/" + name + "/"
}

func PosterKey(name string) string {
	return "video-posters/" + name + ".jpg"
}

func TextPrefix(name string) string {
	return "text/" + name + "/"
}

func MyFilmsPrefix(name string) string {
	return "myFilms/" + name + "/"
}

// PublicURL is the externally reachable address of a bucket object.
func PublicURL(key string) string {
	return config.GetPublicURLBase() + "/" + key
}

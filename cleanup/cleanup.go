package cleanup

import (
	"os"
	"path/filepath"
	"strings"

	"videoflix-site/config"
	"videoflix-site/storage"
)

// Reconciler removes everything a deleted video left behind, locally
// and in the object store. Every pass is best-effort: a failure is
// logged and never blocks a sibling pass or the caller — deleting the
// database record must succeed even when artifact cleanup cannot.
type Reconciler struct {
	store storage.ObjectStore
}

func NewReconciler(store storage.ObjectStore) *Reconciler {
	return &Reconciler{store: store}
}

// Run cleans up after the record for videoFile has been deleted.
func (r *Reconciler) Run(videoFile string) {
	base := filepath.Base(videoFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	r.local(base, name)
	r.remote(name)
}

// local removes the source file and the per-video working directory.
func (r *Reconciler) local(videoFile, name string) {
	videosDir := filepath.Join(config.GetMediaRoot(), "videos")

	srcPath := filepath.Join(videosDir, videoFile)
	if err := os.Remove(srcPath); err == nil {
		log.Infoln("deleted source file:", srcPath)
	} else if !os.IsNotExist(err) {
		log.Errorf("error deleting source file %s: %v", srcPath, err)
	}

	workDir := filepath.Join(videosDir, name)
	if err := os.RemoveAll(workDir); err != nil {
		log.Errorf("error deleting working directory %s: %v", workDir, err)
	} else {
		log.Infoln("deleted working directory:", workDir)
	}

	posterPath := filepath.Join(videosDir, "posters", name+".jpg")
	if err := os.Remove(posterPath); err != nil && !os.IsNotExist(err) {
		log.Errorf("error deleting poster %s: %v", posterPath, err)
	}
}

// remote empties every bucket namespace derived from the video's base
// name. Namespaces are independent: one failing does not stop the rest.
func (r *Reconciler) remote(name string) {
	prefixes := []string{
		storage.HLSPrefix(name),
		storage.PosterKey(name),
		storage.TextPrefix(name),
		storage.MyFilmsPrefix(name),
	}
	for _, prefix := range prefixes {
		r.deletePrefix(prefix)
	}
}

func (r *Reconciler) deletePrefix(prefix string) {
	keys, err := r.store.List(prefix)
	if err != nil {
		log.Errorf("error listing %s for deletion: %v", prefix, err)
		return
	}
	for _, key := range keys {
		if err := r.store.Delete(key); err != nil {
			log.Errorf("error deleting %s: %v", key, err)
			continue
		}
		log.Infoln("deleted", key, "from object store")
	}
}

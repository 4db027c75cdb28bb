package storage

import "os"

// Publisher pushes local artifacts into the object store. Uploads are
// strictly best-effort: a missing local file or a store error is logged
// and swallowed, so a partially uploaded rendition set never kills the
// job that produced it.
type Publisher struct {
	store ObjectStore
}

func NewPublisher(store ObjectStore) *Publisher {
	return &Publisher{store: store}
}

// Upload copies localPath to key. A resolution whose encode failed has
// no local output; that is the expected skip case here.
func (p *Publisher) Upload(localPath, key string) {
	if _, err := os.Stat(localPath); err != nil {
		log.Warnln("skipping upload, local file missing:", localPath)
		return
	}

	if err := p.store.PutFile(key, localPath); err != nil {
		log.Errorf("error uploading %s to %s: %v", localPath, key, err)
		return
	}
	log.Infof("uploaded %s to %s", localPath, key)
}

// UploadString writes content directly to key, same best-effort contract.
func (p *Publisher) UploadString(content, key string) {
	if err := p.store.PutString(key, content); err != nil {
		log.Errorf("error uploading text to %s: %v", key, err)
		return
	}
	log.Infof("uploaded text to %s", key)
}

package handlers

import (
	"github.com/sirupsen/logrus"

	"videoflix-site/cache"
	"videoflix-site/cleanup"
	"videoflix-site/storage"
)

var log *logrus.Logger
var store storage.ObjectStore
var cacheStore cache.Store
var publisher *storage.Publisher
var reconciler *cleanup.Reconciler

// Init wires the handlers' clients. They are constructed once at
// startup and injected here rather than built ad hoc per request.
func Init(logger *logrus.Logger, s storage.ObjectStore, c cache.Store, r *cleanup.Reconciler) error {
	log = logger.WithFields(logrus.Fields{
		"component": "handlers",
	}).Logger
	store = s
	cacheStore = c
	publisher = storage.NewPublisher(s)
	reconciler = r
	return nil
}

func Fini() {}

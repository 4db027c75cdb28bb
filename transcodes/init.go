package transcodes

import "github.com/sirupsen/logrus"

var log *logrus.Logger

func Init(logger *logrus.Logger) error {
	log = logger.WithFields(logrus.Fields{
		"component": "transcodes",
	}).Logger
	return nil
}

func Fini() {}

package store

import (
	log "github.com/sirupsen/logrus"
)

// DB is the process-wide store handle, set once at startup.
var DB *Store

// Connect opens the CSV store the controllers read and write through.
func Connect(dataDir string) {
	s, err := New(dataDir)
	if err != nil {
		log.WithError(err).Fatal("Failed to open data directory")
	}
	DB = s
	log.WithFields(log.Fields{"dir": dataDir}).Info("Store ready")
}

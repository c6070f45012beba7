package api

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs at debug level how long op has run since start.
// Use it deferred: defer TrackTime("fetching stock", time.Now())
func TrackTime(op string, start time.Time) {
	log.WithField("op", op).Debugf("%s took %d ms", op, time.Since(start).Milliseconds())
}

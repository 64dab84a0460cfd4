package logger

import (
	"github.com/sirupsen/logrus"
)

// OddsLogger provides dedicated logging for the betting odds feed.
type OddsLogger struct {
	*logrus.Entry
}

// NewOddsLogger creates a new odds logger.
func NewOddsLogger(baseLogger *logrus.Logger) *OddsLogger {
	return &OddsLogger{
		Entry: baseLogger.WithField("component", "odds"),
	}
}

// LogOddsFetch logs a fetch of the upcoming events list.
func (ol *OddsLogger) LogOddsFetch(events int, cacheHit bool, remaining string, durationMs float64) {
	ol.WithFields(logrus.Fields{
		"events":             events,
		"cache_hit":          cacheHit,
		"requests_remaining": remaining,
		"duration_ms":        durationMs,
	}).Info("Odds fetched")
}

// LogOddsLookup logs whether a pairing was found on the board.
func (ol *OddsLogger) LogOddsLookup(fighter1, fighter2 string, found bool, bookmaker string) {
	ol.WithFields(logrus.Fields{
		"fighter1":  fighter1,
		"fighter2":  fighter2,
		"found":     found,
		"bookmaker": bookmaker,
	}).Debug("Odds lookup")
}

// LogOddsError logs a failed odds request.
func (ol *OddsLogger) LogOddsError(operation string, err error) {
	ol.WithFields(logrus.Fields{
		"operation": operation,
		"error":     err.Error(),
	}).Error("Odds request failed")
}

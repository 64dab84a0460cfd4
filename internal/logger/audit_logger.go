package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging for fight card changes.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogCardEntryAdded logs a matchup added to the fight card.
func (al *AuditLogger) LogCardEntryAdded(entryID, fighter1, fighter2, winner string, confidence float64, timestamp time.Time) {
	al.WithFields(logrus.Fields{
		"entry_id":   entryID,
		"fighter1":   fighter1,
		"fighter2":   fighter2,
		"winner":     winner,
		"confidence": confidence,
		"timestamp":  timestamp.Unix(),
	}).Info("Fight card entry added")
}

// LogCardEntryRemoved logs a matchup removed from the fight card.
func (al *AuditLogger) LogCardEntryRemoved(entryID string) {
	al.WithField("entry_id", entryID).Info("Fight card entry removed")
}

// LogRosterIngested logs a roster load into the store.
func (al *AuditLogger) LogRosterIngested(source string, fighters, skipped int) {
	al.WithFields(logrus.Fields{
		"source":   source,
		"fighters": fighters,
		"skipped":  skipped,
	}).Info("Roster ingested")
}

package game

import (
	engine "github.com/Nathaniel-Reeves/CS4300-Artificial-Intelligence/engine"
	"github.com/sirupsen/logrus"
)

// LogSink forwards engine events to a logrus logger. Rejected moves are
// logged at Warn, suit completions at Info, bank deals and reveals at Debug.
type LogSink struct {
	Log logrus.FieldLogger
}

// NewLogSink returns a sink that logs through log.
func NewLogSink(log logrus.FieldLogger) *LogSink {
	return &LogSink{Log: log}
}

// Emit implements engine.EventSink.
func (s *LogSink) Emit(ev engine.Event) {
	if s == nil || s.Log == nil {
		return
	}
	entry := s.Log.WithFields(logrus.Fields{
		"op":   ev.Move.String(),
		"pile": ev.Pile,
	})
	switch ev.Type {
	case engine.EventRejectedMove:
		entry.WithField("reason", ev.Reason.String()).Warn("move rejected")
	case engine.EventSuitCompleted:
		entry.WithField("slot", ev.Slot).Info("suit completed")
	case engine.EventBankDealt:
		entry.Debug("bank dealt")
	case engine.EventCardRevealed:
		entry.Debug("card revealed")
	default:
		entry.Debugf("unknown event %v", ev.Type)
	}
}

package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/timecodec"
)

var _ timecodec.Logger = Logger{}

// Logger adapts a *logrus.Entry to timecodec.Logger.
type Logger struct{ E *logrus.Entry }

// New wraps e, tagging every entry with component=timecodec. A nil e uses
// the logrus standard logger.
func New(e *logrus.Entry) Logger {
	if e == nil {
		e = logrus.NewEntry(logrus.StandardLogger())
	}
	return Logger{E: e.WithField("component", "timecodec")}
}

func (l Logger) Debug(msg string, f timecodec.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f timecodec.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f timecodec.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f timecodec.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }

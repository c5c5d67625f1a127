package zap

import (
	"sort"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/timecodec"
)

var _ timecodec.Logger = Logger{}

// Logger adapts a *zap.Logger to timecodec.Logger.
type Logger struct{ L *zap.Logger }

// New wraps l; a nil l logs nothing.
func New(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return Logger{L: l.Named("timecodec")}
}

func (z Logger) Debug(msg string, f timecodec.Fields) { z.L.Debug(msg, fields(f)...) }
func (z Logger) Info(msg string, f timecodec.Fields)  { z.L.Info(msg, fields(f)...) }
func (z Logger) Warn(msg string, f timecodec.Fields)  { z.L.Warn(msg, fields(f)...) }
func (z Logger) Error(msg string, f timecodec.Fields) { z.L.Error(msg, fields(f)...) }

// fields sorts by key so output is stable across runs.
func fields(f timecodec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}

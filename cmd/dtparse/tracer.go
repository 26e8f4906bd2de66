package main

import (
	"fmt"
	"strings"

	dtparse "github.com/JesseCoretta/go-dtparse"
	"github.com/sirupsen/logrus"
)

// logTracer forwards parser trace records to logrus at debug level
type logTracer struct {
	log  *logrus.Logger
	mask dtparse.EventType
}

var _ dtparse.LevelTracer = (*logTracer)(nil)

func newLogTracer(log *logrus.Logger, mask dtparse.EventType) *logTracer {
	return &logTracer{log: log, mask: mask}
}

// Enabled reports whether any bit of ev was selected
func (t *logTracer) Enabled(ev dtparse.EventType) bool {
	return t.mask&ev != 0
}

// Trace logs rec
func (t *logTracer) Trace(rec dtparse.TraceRecord) {
	args := rec.Args
	if rec.Type == dtparse.EventExit {
		args = rec.Ret
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	t.log.WithFields(logrus.Fields{
		"event": rec.Type.String(),
		"func":  rec.Func,
	}).Debug(strings.Join(parts, ", "))
}

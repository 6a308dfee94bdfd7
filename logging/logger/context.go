package logger

import (
	"context"

	"github.com/ncobase/echoapi/ctxutil"
	"github.com/sirupsen/logrus"
)

// Field keys attached to every context entry
const (
	TraceIDKey = ctxutil.TraceIDKey
	VersionKey = "version"
)

// WithContext returns an entry carrying the request trace id and the
// configured version. Empty values are omitted.
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	return l.entryFromContext(ctx)
}

func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := make(logrus.Fields, 2)
	if ctx != nil {
		if id := ctxutil.GetTraceID(ctx); id != "" {
			fields[TraceIDKey] = id
		}
	}
	if l.version != "" {
		fields[VersionKey] = l.version
	}
	return l.WithFields(fields).WithContext(ctx)
}

package condql

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

var pkgLogger atomic.Pointer[log.Logger]

func init() {
	pkgLogger.Store(log.StandardLogger())
}

// SetLogger replaces the logger used for parser traces. A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.StandardLogger()
	}
	pkgLogger.Store(l)
}

// Logger returns the logger used for parser traces.
func Logger() *log.Logger {
	return pkgLogger.Load()
}

// trace logs a debug event when debug logging is enabled.
func trace(msg string, fields log.Fields) {
	l := pkgLogger.Load()
	if !l.IsLevelEnabled(log.DebugLevel) {
		return
	}
	l.WithFields(fields).Debug(msg)
}

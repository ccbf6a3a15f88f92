package gbio

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

// Logger returns the logger the library writes diagnostics to. Until
// SetLogger installs one, everything is discarded.
func Logger() *zap.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// SetLogger installs l for subsequent library calls. Readers already opened
// keep the logger they were created with. A nil l restores the discarding
// default.
func SetLogger(l *zap.Logger) {
	logger.Store(l)
}

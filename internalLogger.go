package journal

import (
	"log"
	"os"
	"sync/atomic"
)

var internalLogger atomic.Value

func init() {
	internalLogger.Store(log.New(os.Stderr, "[journal] ", log.LstdFlags))
}

// InternalLogger returns the Logger used for this package's own
// diagnostics, currently only the Handler's Verbose output. The sending
// path never logs its own failures; those are returned to the caller.
func InternalLogger() *log.Logger { return internalLogger.Load().(*log.Logger) }

// SetInternalLogger makes l the internal logger.
func SetInternalLogger(l *log.Logger) {
	internalLogger.Store(l)
}

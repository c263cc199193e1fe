package monitoring

import (
	"log"

	"github.com/google/uuid"
)

// Logf is the package-level diagnostic logger used by the solver packages.
// It defaults to log.Printf but may be replaced by SetLogger. Tests can mute
// or capture it.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op logger.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

// StartRun tags the standard logger with a short run id so diagnostics from
// repeated runs of the same puzzle can be told apart. It returns the full id.
func StartRun(puzzle string) string {
	id := uuid.New().String()
	log.SetPrefix("[" + puzzle + " " + id[:8] + "] ")
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	return id
}

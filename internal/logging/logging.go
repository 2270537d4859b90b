package logging

import (
	"github.com/pion/logging"
)

var loggerFactory logging.LoggerFactory = logging.NewDefaultLoggerFactory()

// NewLogger returns a leveled logger for a scope of this module. Levels are
// picked from the PION_LOG_* environment variables.
func NewLogger(scope string) logging.LeveledLogger {
	return loggerFactory.NewLogger("bitmap/" + scope)
}

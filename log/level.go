package log

import (
	"strings"

	"github.com/neuronlabs/uni-logger"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"warn":     LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

// ParseLevel parses the level from its case insensitive name.
// Returns LUNKNOWN for unrecognized names.
func ParseLevel(level string) unilogger.Level {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(level))]
	if !ok {
		return LUNKNOWN
	}
	return l
}

package log

import (
	"io"
	"log"
	"os"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/emodel/errors"
)

var (
	logger       unilogger.LeveledLogger
	currentLevel = LINFO
)

// The process starts with the stderr logger so that failures are reported
// even when the logger is never configured.
func init() {
	Default()
}

// Default creates and sets new BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags' and sets it as the process logger.
func New(out io.Writer, prefix string, flags int) {
	SetLogger(NewBasicLogger(out, prefix, flags))
}

// Logger returns the process logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// SetLogger sets the 'log' as the process logger. All module loggers without
// their own logger are rebound to it.
func SetLogger(log unilogger.LeveledLogger) {
	logger = log

	if depth, ok := log.(unilogger.OutputDepthGetter); ok {
		if setter, ok := log.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}

	if lvlSetter, ok := log.(unilogger.LevelSetter); ok {
		lvlSetter.SetLevel(currentLevel)
	}

	subLogger, isSubLogger := log.(SubLogger)
	for _, m := range modules {
		if !m.own {
			m.logger, m.levelSetter, m.isLevelSetter = nil, nil, false
			if isSubLogger {
				m.logger = subLogger.SubLogger()
				m.initializeLogger()
			}
		}
		m.SetLevel(currentLevel)
	}
	Debugf("New logger set with level: %s", currentLevel)
}

// SetLevel sets the level of the process logger and all the module loggers.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(ClassUnknownLevel, "can't set unknown logger level")
	}
	currentLevel = level

	for _, m := range modules {
		if !m.own {
			m.SetLevel(level)
		}
	}
	if logger == nil {
		return nil
	}

	lvl, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.New(ClassInvalidLogger, "logger doesn't implement LevelSetter interface")
	}
	lvl.SetLevel(currentLevel)
	return nil
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf writes the formatted LWARNING level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

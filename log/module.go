package log

import (
	"github.com/neuronlabs/uni-logger"
)

var modules = []*ModuleLogger{}

// ModuleLogger is the logger used for the specific modules.
type ModuleLogger struct {
	Name   string
	logger unilogger.LeveledLogger
	// own is true when the logger was provided explicitly for the module.
	own bool

	levelSetter   unilogger.LevelSetter
	isLevelSetter bool

	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module and an optional 'logger'.
// Without the 'logger' argument the module logger is derived from the process logger.
func NewModuleLogger(name string, moduleLogger ...unilogger.LeveledLogger) *ModuleLogger {
	mLogger := &ModuleLogger{Name: name, currentLevel: currentLevel}
	modules = append(modules, mLogger)

	switch {
	case len(moduleLogger) > 0 && moduleLogger[0] != nil:
		mLogger.logger = moduleLogger[0]
		mLogger.own = true
		mLogger.initializeLogger()
	default:
		if sub, ok := logger.(SubLogger); ok {
			mLogger.logger = sub.SubLogger()
			mLogger.initializeLogger()
		}
	}
	return mLogger
}

func (m *ModuleLogger) initializeLogger() {
	if m.logger == nil {
		return
	}
	if lGetter, ok := m.logger.(LevelGetter); ok {
		m.currentLevel = lGetter.GetLevel()
	}
	m.levelSetter, m.isLevelSetter = m.logger.(unilogger.LevelSetter)
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the moduleLogger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel = level
	if m.isLevelSetter {
		m.levelSetter.SetLevel(level)
	}
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	if !m.enabled(LDEBUG) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Debugf(format, args...)
	} else {
		Debugf(format, args...)
	}
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	if !m.enabled(LINFO) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Infof(format, args...)
	} else {
		Infof(format, args...)
	}
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	if !m.enabled(LWARNING) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Warningf(format, args...)
	} else {
		Warningf(format, args...)
	}
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	if !m.enabled(LERROR) {
		return
	}
	format = m.name() + " " + format
	if m.logger != nil {
		m.logger.Errorf(format, args...)
	} else {
		Errorf(format, args...)
	}
}

// enabled filters the messages for the loggers that doesn't filter the levels by themselves.
func (m *ModuleLogger) enabled(level unilogger.Level) bool {
	if m.isLevelSetter {
		return true
	}
	return m.currentLevel == LUNKNOWN || level >= m.currentLevel
}

func (m *ModuleLogger) name() string {
	return "[" + m.Name + "]"
}

package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"

	"github.com/neuronlabs/uni-logger"
)

// SubLogger is the interface for the loggers that could derive a logger for the modules.
type SubLogger interface {
	SubLogger() unilogger.LeveledLogger
}

// LevelGetter is the interface for the loggers that expose their current level.
type LevelGetter interface {
	GetLevel() unilogger.Level
}

var logSequenceID uint64

// Message is a single logging record written by the BasicLogger.
type Message struct {
	id      uint64
	level   unilogger.Level
	fmt     *string
	message *string
	args    []interface{}
}

// Message prepares the message text from the format and arguments.
func (m *Message) Message() string {
	if m.message == nil {
		var msg string
		if m.fmt == nil {
			msg = fmt.Sprint(m.args...)
		} else {
			msg = fmt.Sprintf(*m.fmt, m.args...)
		}
		m.message = &msg
	}
	return *m.message
}

// String implements fmt.Stringer. The result is 'LEVEL|seq: message'.
func (m *Message) String() string {
	return fmt.Sprintf("%s|%04x: %s", m.level, m.id, m.Message())
}

// compile time checks for the BasicLogger interfaces.
var (
	_ unilogger.DebugLeveledLogger = &BasicLogger{}
	_ unilogger.LevelSetter        = &BasicLogger{}
	_ SubLogger                    = &BasicLogger{}
	_ LevelGetter                  = &BasicLogger{}
)

// BasicLogger is the leveled logger built on the standard library *log.Logger.
// Messages below its level are dropped. By default the LINFO level is used.
type BasicLogger struct {
	stdLogger   *log.Logger
	level       unilogger.Level
	outputDepth int
}

// NewBasicLogger creates new BasicLogger. The arguments are described in the log.New function.
func NewBasicLogger(out io.Writer, prefix string, flags int) *BasicLogger {
	return &BasicLogger{
		stdLogger:   log.New(out, prefix, flags),
		level:       LINFO,
		outputDepth: 3,
	}
}

// SubLogger creates new logger sharing the output of 'l' with its own level.
// Its output depth points at the caller of the ModuleLogger methods.
func (l *BasicLogger) SubLogger() unilogger.LeveledLogger {
	return &BasicLogger{
		stdLogger:   l.stdLogger,
		level:       l.level,
		outputDepth: 4,
	}
}

// SetLevel implements unilogger.LevelSetter.
func (l *BasicLogger) SetLevel(level unilogger.Level) {
	l.level = level
}

// GetLevel implements LevelGetter.
func (l *BasicLogger) GetLevel() unilogger.Level {
	return l.level
}

// SetOutputDepth implements unilogger.OutputDepthSetter.
func (l *BasicLogger) SetOutputDepth(depth int) {
	l.outputDepth = depth
}

// GetOutputDepth implements unilogger.OutputDepthGetter.
func (l *BasicLogger) GetOutputDepth() int {
	return l.outputDepth
}

// Debug3 logs the message with LDEBUG3 level.
func (l *BasicLogger) Debug3(args ...interface{}) {
	l.log(LDEBUG3, nil, args...)
}

// Debug3f logs the formatted message with LDEBUG3 level.
func (l *BasicLogger) Debug3f(format string, args ...interface{}) {
	l.log(LDEBUG3, &format, args...)
}

// Debug2 logs the message with LDEBUG2 level.
func (l *BasicLogger) Debug2(args ...interface{}) {
	l.log(LDEBUG2, nil, args...)
}

// Debug2f logs the formatted message with LDEBUG2 level.
func (l *BasicLogger) Debug2f(format string, args ...interface{}) {
	l.log(LDEBUG2, &format, args...)
}

// Debug logs the message with LDEBUG level.
func (l *BasicLogger) Debug(args ...interface{}) {
	l.log(LDEBUG, nil, args...)
}

// Debugf logs the formatted message with LDEBUG level.
func (l *BasicLogger) Debugf(format string, args ...interface{}) {
	l.log(LDEBUG, &format, args...)
}

// Info logs the message with LINFO level.
func (l *BasicLogger) Info(args ...interface{}) {
	l.log(LINFO, nil, args...)
}

// Infof logs the formatted message with LINFO level.
func (l *BasicLogger) Infof(format string, args ...interface{}) {
	l.log(LINFO, &format, args...)
}

// Warning logs the message with LWARNING level.
func (l *BasicLogger) Warning(args ...interface{}) {
	l.log(LWARNING, nil, args...)
}

// Warningf logs the formatted message with LWARNING level.
func (l *BasicLogger) Warningf(format string, args ...interface{}) {
	l.log(LWARNING, &format, args...)
}

// Error logs the message with LERROR level.
func (l *BasicLogger) Error(args ...interface{}) {
	l.log(LERROR, nil, args...)
}

// Errorf logs the formatted message with LERROR level.
func (l *BasicLogger) Errorf(format string, args ...interface{}) {
	l.log(LERROR, &format, args...)
}

// Fatal logs the message with LCRITICAL level and exits the process.
func (l *BasicLogger) Fatal(args ...interface{}) {
	l.log(LCRITICAL, nil, args...)
	os.Exit(1)
}

// Fatalf logs the formatted message with LCRITICAL level and exits the process.
func (l *BasicLogger) Fatalf(format string, args ...interface{}) {
	l.log(LCRITICAL, &format, args...)
	os.Exit(1)
}

// Panic logs the message with LCRITICAL level and panics.
func (l *BasicLogger) Panic(args ...interface{}) {
	msg := l.log(LCRITICAL, nil, args...)
	panic(msg.Message())
}

// Panicf logs the formatted message with LCRITICAL level and panics.
func (l *BasicLogger) Panicf(format string, args ...interface{}) {
	msg := l.log(LCRITICAL, &format, args...)
	panic(msg.Message())
}

func (l *BasicLogger) log(level unilogger.Level, format *string, args ...interface{}) *Message {
	msg := &Message{level: level, fmt: format, args: args}
	if level < l.level {
		return msg
	}
	msg.id = atomic.AddUint64(&logSequenceID, 1)
	l.stdLogger.Output(l.outputDepth, msg.String())
	return msg
}

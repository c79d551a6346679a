package log

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// LoggerConfigurator is a data structure used to configure the logger from
// the console configuration.
type LoggerConfigurator struct {
	Writer            io.Writer
	Level             string
	TimeFormatTempl   string
	CallerFormatTempl string
}

// NewLogConfigurator creates a new LoggerConfigurator.
func NewLogConfigurator(level string, writer io.Writer) *LoggerConfigurator {
	return &LoggerConfigurator{
		Writer:          writer,
		Level:           level,
		TimeFormatTempl: time.RFC3339 + " ",
	}
}

func (config *LoggerConfigurator) Output() io.Writer {
	return config.Writer
}

func (config *LoggerConfigurator) LogLevel() string {
	return config.Level
}

func (config *LoggerConfigurator) TimestampFormat() string {
	return config.TimeFormatTempl
}

func (config *LoggerConfigurator) CallerFormat() string {
	return config.CallerFormatTempl
}

// Level is the logging level.
type Level int

const (
	// DEBUG level for developer information
	DEBUG Level = iota - 1
	// INFO level for state and status
	INFO
	// WARN level for possible issues
	WARN
	// ERROR level for errors
	ERROR
	// PANIC level for unrecoverable errors that stop the goroutine
	PANIC
	// FATAL level for unrecoverable errors that stop the process.
	FATAL
)

// String returns an upper case string representation of the log level
func (l Level) String() string {
	return strings.TrimSpace(l.PaddedString())
}

// PaddedString returns a five character upper case representation of the log level
func (l Level) PaddedString() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO "
	case WARN:
		return "WARN "
	case ERROR:
		return "ERROR"
	case PANIC:
		return "PANIC"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// UnmarshalText converts a slice of characters to a Level
func (l *Level) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(bytes.ToUpper(text))) {
	case "DEBUG":
		*l = DEBUG
	case "INFO", "":
		*l = INFO
	case "WARN", "WARNING":
		*l = WARN
	case "ERROR":
		*l = ERROR
	case "PANIC":
		*l = PANIC
	case "FATAL":
		*l = FATAL
	default:
		return fmt.Errorf("unknown log level %q", text)
	}
	return nil
}

// Configurator has methods to fetch the logger configuration values
type Configurator interface {
	LogLevel() string
	Output() io.Writer
	TimestampFormat() string
	CallerFormat() string
}

// CoreLogger implements logging. It may be shared between goroutines.
type CoreLogger struct {
	sync            sync.Mutex
	level           Level
	writer          io.Writer
	timestampFormat string
	callerFormat    string
}

var (
	defaultLogger *CoreLogger
	defaultOnce   sync.Once
)

// TerminateFunc defines logic for termination of fatal log messages.
var TerminateFunc = func() { os.Exit(1) }

// New creates a logger writing INFO and above to standard out with
// timestamp and file:line reporting.
func New() *CoreLogger {
	return &CoreLogger{
		level:           INFO,
		writer:          os.Stdout,
		timestampFormat: "01-02 15:04:05.000 ",
		callerFormat:    " %20.20s:%03d - ",
	}
}

// GetDefaultLogger returns the process wide logger.
func GetDefaultLogger() *CoreLogger {
	defaultOnce.Do(func() { defaultLogger = New() })
	return defaultLogger
}

// Setup applies a configuration. An unknown level is reported and leaves
// the current level in place.
func (c *CoreLogger) Setup(config Configurator) error {
	c.sync.Lock()
	defer c.sync.Unlock()
	if writer := config.Output(); writer != nil {
		c.writer = writer
	}
	if f := config.TimestampFormat(); f != "" {
		c.timestampFormat = f
	}
	if f := config.CallerFormat(); f != "" {
		c.callerFormat = f
	}
	var level Level
	if err := level.UnmarshalText([]byte(config.LogLevel())); err != nil {
		return err
	}
	c.level = level
	return nil
}

func (c *CoreLogger) SetLogLevel(level Level) {
	c.sync.Lock()
	c.level = level
	c.sync.Unlock()
}

func (c *CoreLogger) GetLogLevel() Level {
	c.sync.Lock()
	defer c.sync.Unlock()
	return c.level
}

// SetOutput sets the io.Writer to which all future log messages will be written.
func (c *CoreLogger) SetOutput(w io.Writer) {
	c.sync.Lock()
	c.writer = w
	c.sync.Unlock()
}

// Perform the actual logging routine
func (c *CoreLogger) log(level Level, format string, args []interface{}, callDepth int) {
	c.sync.Lock()
	defer c.sync.Unlock()
	if level < c.level {
		return
	}

	_, file, line, ok := runtime.Caller(callDepth)
	if !ok {
		file = "???"
		line = 0
	} else {
		file = filepath.Base(file)
	}

	var msg string
	if format == "" {
		msg = fmt.Sprint(args...)
	} else {
		msg = fmt.Sprintf(format, args...)
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(c.timestampFormat))
	b.WriteString(level.PaddedString())
	_, _ = fmt.Fprintf(&b, c.callerFormat, file, line)
	b.WriteString(msg)
	b.WriteString("\n")
	_, _ = io.WriteString(c.writer, b.String())
}

func (c *CoreLogger) Debugf(format string, args ...interface{}) { c.log(DEBUG, format, args, 2) }
func (c *CoreLogger) Infof(format string, args ...interface{})  { c.log(INFO, format, args, 2) }
func (c *CoreLogger) Warnf(format string, args ...interface{})  { c.log(WARN, format, args, 2) }
func (c *CoreLogger) Errorf(format string, args ...interface{}) { c.log(ERROR, format, args, 2) }

// Fatalf logs a formatted message at FATAL level and then terminates.
func (c *CoreLogger) Fatalf(format string, args ...interface{}) {
	c.log(FATAL, format, args, 2)
	TerminateFunc()
}

// *************************************************************
// Package level functions falling through to the default logger

// Setup configures the default logger.
func Setup(config Configurator) error {
	return GetDefaultLogger().Setup(config)
}

func SetLogLevel(level Level) {
	GetDefaultLogger().SetLogLevel(level)
}

func GetLogLevel() Level {
	return GetDefaultLogger().GetLogLevel()
}

func SetOutput(w io.Writer) {
	GetDefaultLogger().SetOutput(w)
}

func Debug(args ...interface{}) { GetDefaultLogger().log(DEBUG, "", args, 2) }
func Info(args ...interface{})  { GetDefaultLogger().log(INFO, "", args, 2) }
func Warn(args ...interface{})  { GetDefaultLogger().log(WARN, "", args, 2) }
func Error(args ...interface{}) { GetDefaultLogger().log(ERROR, "", args, 2) }

func Debugf(format string, args ...interface{}) { GetDefaultLogger().log(DEBUG, format, args, 2) }
func Infof(format string, args ...interface{})  { GetDefaultLogger().log(INFO, format, args, 2) }
func Warnf(format string, args ...interface{})  { GetDefaultLogger().log(WARN, format, args, 2) }
func Errorf(format string, args ...interface{}) { GetDefaultLogger().log(ERROR, format, args, 2) }

// Fatal logs a message at FATAL level and then terminates.
func Fatal(args ...interface{}) {
	GetDefaultLogger().log(FATAL, "", args, 2)
	TerminateFunc()
}

// Fatalf logs a formatted message at FATAL level and then terminates.
func Fatalf(format string, args ...interface{}) {
	GetDefaultLogger().log(FATAL, format, args, 2)
	TerminateFunc()
}

package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ncobase/cookies/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Key constants
const (
	VersionKey = "version"
)

// Logger is a logrus logger whose methods take a context and add the trace
// id and version to every entry.
type Logger struct {
	*logrus.Logger
	mu      sync.Mutex
	version string
	logFile *os.File
	logPath string
	stop    chan struct{}
}

var (
	standardLogger *Logger
	once           sync.Once
)

// StdLogger returns the singleton logger instance
func StdLogger() *Logger {
	once.Do(func() {
		standardLogger = &Logger{
			Logger: logrus.New(),
		}
		standardLogger.SetFormatter(&logrus.TextFormatter{})
	})
	return standardLogger
}

// New configures the standard logger and returns its cleanup function
func New(cfg *config.Config) (func(), error) {
	return StdLogger().Init(cfg)
}

// SetVersion sets the version for logging
func (l *Logger) SetVersion(v string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.version = v
}

// Init initializes the logger with the given configuration
func (l *Logger) Init(c *config.Config) (func(), error) {
	if c == nil {
		c = config.Default()
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.SetLevel(logrus.Level(c.Level))

	switch c.Format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{})
	}

	l.closeLogFile()
	switch c.Output {
	case "stdout":
		l.SetOutput(os.Stdout)
	case "file":
		l.logPath = c.OutputFile
		if l.logPath == "" {
			return nil, fmt.Errorf("logger output is file but output_file is empty")
		}
		if err := l.setupLogFile(); err != nil {
			return nil, fmt.Errorf("error opening log file: %w", err)
		}
		l.stop = make(chan struct{})
		go l.periodicLogRotation(l.stop)
	default:
		l.SetOutput(os.Stderr)
	}

	l.ReplaceHooks(make(logrus.LevelHooks))
	if c.Desensitization != nil && c.Desensitization.Enabled {
		d, err := NewDesensitizer(c.Desensitization)
		if err != nil {
			return nil, err
		}
		l.Logger.AddHook(&desensitizeHook{desensitizer: d})
	}

	// Return cleanup function
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.closeLogFile()
	}, nil
}

func (l *Logger) closeLogFile() {
	if l.stop != nil {
		close(l.stop)
		l.stop = nil
	}
	if l.logFile != nil {
		_ = l.logFile.Close()
		l.logFile = nil
		l.Logger.SetOutput(os.Stderr)
	}
}

func (l *Logger) setupLogFile() error {
	if err := os.MkdirAll(filepath.Dir(l.logPath), 0o755); err != nil {
		return err
	}
	return l.rotateLog()
}

func (l *Logger) rotateLog() error {
	if l.logFile != nil {
		if err := l.logFile.Close(); err != nil {
			return err
		}
	}

	logFilePath := fmt.Sprintf("%s.%s.log", strings.TrimSuffix(l.logPath, ".log"), time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	l.logFile = f
	l.Logger.SetOutput(l.logFile)
	return nil
}

func (l *Logger) periodicLogRotation(stop <-chan struct{}) {
	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			if l.logFile != nil {
				if err := l.rotateLog(); err != nil {
					l.Logger.Errorf("Error rotating log: %v", err)
				}
			}
			l.mu.Unlock()
		}
	}
}

// entryFromContext creates a new log entry with fields from context
func (l *Logger) entryFromContext(ctx context.Context) *logrus.Entry {
	fields := logrus.Fields{}

	if traceID := getTraceID(ctx); traceID != "" {
		fields[traceKey] = traceID
	}
	if command := getCommand(ctx); command != "" {
		fields[commandKey] = command
	}

	l.mu.Lock()
	version := l.version
	l.mu.Unlock()
	if version != "" {
		fields[VersionKey] = version
	}

	return l.WithFields(fields)
}

// Log methods
func (l *Logger) log(ctx context.Context, level logrus.Level, args ...any) {
	l.entryFromContext(ctx).Log(level, args...)
}

func (l *Logger) logf(ctx context.Context, level logrus.Level, format string, args ...any) {
	l.entryFromContext(ctx).Logf(level, format, args...)
}

func (l *Logger) Debug(ctx context.Context, args ...any) {
	l.log(ctx, logrus.DebugLevel, args...)
}
func (l *Logger) Info(ctx context.Context, args ...any) {
	l.log(ctx, logrus.InfoLevel, args...)
}
func (l *Logger) Warn(ctx context.Context, args ...any) {
	l.log(ctx, logrus.WarnLevel, args...)
}
func (l *Logger) Error(ctx context.Context, args ...any) {
	l.log(ctx, logrus.ErrorLevel, args...)
}

func (l *Logger) Debugf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.DebugLevel, format, args...)
}
func (l *Logger) Infof(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.InfoLevel, format, args...)
}
func (l *Logger) Warnf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.WarnLevel, format, args...)
}
func (l *Logger) Errorf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, logrus.ErrorLevel, format, args...)
}

// SetOutput sets the output destination for the logger
func (l *Logger) SetOutput(out io.Writer) {
	l.Logger.SetOutput(out)
}

// AddHook adds a hook to the logger unless it is already installed
func (l *Logger) AddHook(hook logrus.Hook) {
	if !l.hookExists(hook) {
		l.Logger.AddHook(hook)
	}
}

// Exported functions for the standard logger

func SetVersion(v string) { StdLogger().SetVersion(v) }

func EntryWithFields(ctx context.Context, fields logrus.Fields) *logrus.Entry {
	entry := StdLogger().entryFromContext(ctx)
	return entry.WithFields(fields)
}

func Debug(ctx context.Context, args ...any) { StdLogger().Debug(ctx, args...) }
func Info(ctx context.Context, args ...any)  { StdLogger().Info(ctx, args...) }
func Warn(ctx context.Context, args ...any)  { StdLogger().Warn(ctx, args...) }
func Error(ctx context.Context, args ...any) { StdLogger().Error(ctx, args...) }

func Debugf(ctx context.Context, format string, args ...any) {
	StdLogger().Debugf(ctx, format, args...)
}
func Infof(ctx context.Context, format string, args ...any) {
	StdLogger().Infof(ctx, format, args...)
}
func Warnf(ctx context.Context, format string, args ...any) {
	StdLogger().Warnf(ctx, format, args...)
}
func Errorf(ctx context.Context, format string, args ...any) {
	StdLogger().Errorf(ctx, format, args...)
}

func SetOutput(out io.Writer)  { StdLogger().SetOutput(out) }
func AddHook(hook logrus.Hook) { StdLogger().AddHook(hook) }

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// Encoding formats accepted by NewZapLogger.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ZapLogger adapts a zap sugared logger to mxf.Logger.
// Verbose maps to the debug level, which is only enabled in verbose mode.
// Safe for concurrent use by multiple goroutines.
type ZapLogger struct {
	log *zap.SugaredLogger
}

var _ mxf.Logger = (*ZapLogger)(nil)

// NewZapLogger builds a logger writing to stderr.
// format is FormatConsole or FormatJSON; an empty format means console.
func NewZapLogger(verbose bool, format string) (*ZapLogger, error) {
	var cfg zap.Config
	switch format {
	case "", FormatConsole:
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	case FormatJSON:
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	default:
		return nil, fmt.Errorf("unsupported log format %q (want %s or %s)", format, FormatConsole, FormatJSON)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return NewZapLoggerFrom(log), nil
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(log *zap.Logger) *ZapLogger {
	return &ZapLogger{log: log.Sugar()}
}

// Named returns a logger whose entries carry the given name, used to tell
// concurrently parsed files apart.
func (l *ZapLogger) Named(name string) *ZapLogger {
	return &ZapLogger{log: l.log.Named(name)}
}

// With returns a logger that adds the key/value pairs to every entry.
func (l *ZapLogger) With(keysAndValues ...interface{}) *ZapLogger {
	return &ZapLogger{log: l.log.With(keysAndValues...)}
}

// Verbose logs detailed diagnostic information at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// Info logs informational messages about normal operations.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Error logs error messages.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}

package log

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

var (
	innerLogger          *Logger
	loggerInitializeOnce sync.Once
)

// Options select the zap configuration of a Logger.
type Options struct {
	Level    Level
	Encoding string   // "json" or "console"
	Output   []string // zap sink URLs, stderr when empty
}

type Logger struct {
	zapLogger *zap.Logger
	zapLevel  zap.AtomicLevel
}

// New builds a logger. The first logger built becomes the one Provide returns.
func New(opts Options) (*Logger, error) {
	encoding := opts.Encoding
	if encoding == "" {
		encoding = "json"
	}
	output := opts.Output
	if len(output) == 0 {
		output = []string{"stderr"}
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if encoding == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zap.NewAtomicLevelAt(toZapLevel(opts.Level))
	config := zap.Config{
		Level:            level,
		Development:      false,
		Encoding:         encoding,
		EncoderConfig:    encoderConfig,
		OutputPaths:      output,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}

	logger := &Logger{
		zapLogger: zapLogger,
		zapLevel:  level,
	}

	loggerInitializeOnce.Do(func() { innerLogger = logger })

	return logger, nil
}

// NewNop returns a logger that discards everything, whatever its level.
func NewNop() *Logger {
	return &Logger{
		zapLogger: zap.NewNop(),
		zapLevel:  zap.NewAtomicLevelAt(zap.FatalLevel),
	}
}

// FromZap wraps an existing zap logger. The wrapper level starts at debug
// and filters in front of z, so SetLevel can raise the threshold but never
// lets through what z's own core drops.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{
		zapLogger: z,
		zapLevel:  zap.NewAtomicLevelAt(zap.DebugLevel),
	}
}

// Provide returns the first logger built by New, or a no-op logger.
func Provide() *Logger {
	if innerLogger == nil {
		return NewNop()
	}
	return innerLogger
}

func (l *Logger) Log(level Level, msg string, fields ...Field) {
	if level == LevelSilent {
		return
	}
	l.write(toZapLevel(level), msg, fields)
}

// write checks the wrapper level before the zap core sees the entry.
func (l *Logger) write(level zapcore.Level, msg string, fields []Field) {
	if !l.zapLevel.Enabled(level) {
		return
	}
	if ce := l.zapLogger.Check(level, msg); ce != nil {
		ce.Write(toZapFields(fields...)...)
	}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.write(zap.DebugLevel, msg, fields)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.write(zap.InfoLevel, msg, fields)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.write(zap.WarnLevel, msg, fields)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.write(zap.ErrorLevel, msg, fields)
}

func (l *Logger) With(fields ...Field) Log {
	return &Logger{
		zapLogger: l.zapLogger.With(toZapFields(fields...)...),
		zapLevel:  l.zapLevel,
	}
}

func (l *Logger) Named(name string) Log {
	return &Logger{
		zapLogger: l.zapLogger.Named(name),
		zapLevel:  l.zapLevel,
	}
}

// SetLevel changes the level of l and every logger derived from it.
func (l *Logger) SetLevel(level Level) {
	l.zapLevel.SetLevel(toZapLevel(level))
}

func (l *Logger) GetLevel() Level {
	return fromZapLevel(l.zapLevel.Level())
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// Zap exposes the underlying logger for libraries that take one directly.
func (l *Logger) Zap() *zap.Logger {
	return l.zapLogger
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	case LevelSilent:
		return zap.FatalLevel + 1
	default:
		return zap.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch level {
	case zap.DebugLevel:
		return LevelDebug
	case zap.InfoLevel:
		return LevelInfo
	case zap.WarnLevel:
		return LevelWarn
	case zap.ErrorLevel:
		return LevelError
	default:
		if level > zap.ErrorLevel {
			return LevelSilent
		}
		return LevelInfo
	}
}

func toZapFields(fields ...Field) []zap.Field {
	zapFields := make([]zap.Field, len(fields))
	for i, f := range fields {
		switch f.Type {
		case BoolType:
			zapFields[i] = zap.Bool(f.Key, f.Value.(bool))
		case DurationType:
			zapFields[i] = zap.Duration(f.Key, f.Value.(time.Duration))
		case Float64Type:
			zapFields[i] = zap.Float64(f.Key, f.Value.(float64))
		case Float32Type:
			zapFields[i] = zap.Float32(f.Key, f.Value.(float32))
		case Float32sType:
			zapFields[i] = zap.Float32s(f.Key, f.Value.([]float32))
		case IntType:
			zapFields[i] = zap.Int(f.Key, f.Value.(int))
		case StringType:
			zapFields[i] = zap.String(f.Key, f.Value.(string))
		case StringsType:
			zapFields[i] = zap.Strings(f.Key, f.Value.([]string))
		case ErrorType:
			zapFields[i] = zap.NamedError(f.Key, f.Value.(error))
		default:
			zapFields[i] = zap.Any(f.Key, f.Value)
		}
	}
	return zapFields
}

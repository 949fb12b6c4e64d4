package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger keeps the printf-style call sites used across the services while
// writing structured records through zap.
type Logger struct {
	info  *zap.SugaredLogger
	error *zap.SugaredLogger
	warn  *zap.SugaredLogger
	base  *zap.Logger
}

func New() *Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewTee(
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stdout),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= level && l < zapcore.ErrorLevel }),
		),
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.Lock(os.Stderr),
			zap.LevelEnablerFunc(func(l zapcore.Level) bool { return l >= zapcore.ErrorLevel }),
		),
	)

	return NewWithCore(core)
}

// NewWithCore wraps an existing zap core, e.g. an observer in tests.
func NewWithCore(core zapcore.Core) *Logger {
	base := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		info:  base.Named("INFO").Sugar(),
		error: base.Named("ERROR").Sugar(),
		warn:  base.Named("WARN").Sugar(),
		base:  base,
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.info.Infof(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.error.Errorf(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.warn.Warnf(format, v...)
}

// Sync flushes buffered entries; call it on shutdown.
func (l *Logger) Sync() {
	_ = l.base.Sync()
}

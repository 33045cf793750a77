// Package logger builds the zap logger shared by the CLI and the HTTP server.
package logger

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a console or json logger writing to stderr, so stdout stays free for results.
func New(json bool, debug bool) (logger *zap.Logger, err error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	logger, err = cfg.Build()
	if err != nil {
		err = errors.Wrap(err, "failed to build logger")
		return logger, err
	}

	return logger, err
}

// WithFields returns a child logger carrying fields. A nil logger yields a no-op logger.
func WithFields(logger *zap.Logger, fields ...zap.Field) (child *zap.Logger) {
	if logger == nil {
		child = zap.NewNop()
		return child
	}
	child = logger.With(fields...)
	return child
}

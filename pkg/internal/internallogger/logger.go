package internallogger

import (
	"os"
	"sync"

	"github.com/smartcoach/motionkit/pkg/logschema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOption configures the zap adapter before the logger is built.
type LoggerOption func(*loggerConfig)

type loggerConfig struct {
	level         zapcore.Level
	development   bool
	callerSkip    int
	initialFields map[string]interface{}
}

// ZapLoggerAdapter implements types.Logger on top of zap, with dynamically
// attachable sinks.
type ZapLoggerAdapter struct {
	mu          sync.Mutex
	logger      *zap.Logger
	atomicLevel zap.AtomicLevel
	callerSkip  int
	baseFields  []zap.Field
	sinks       map[string]zapcore.Core
	defaultCore zapcore.Core
}

// NewLogger initializes a new ZapLoggerAdapter with configurable options.
func NewLogger(options ...LoggerOption) *ZapLoggerAdapter {
	cfg := &loggerConfig{
		level:      zapcore.InfoLevel,
		callerSkip: 1,
		initialFields: map[string]interface{}{
			logschema.FieldSchema: logschema.SchemaID,
		},
	}
	for _, option := range options {
		option(cfg)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	atomicLevel := zap.NewAtomicLevelAt(cfg.level)
	defaultCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.Lock(os.Stdout),
		atomicLevel,
	)

	baseFields := make([]zap.Field, 0, len(cfg.initialFields))
	for key, value := range cfg.initialFields {
		if key == "" {
			continue
		}
		baseFields = append(baseFields, zap.Any(key, value))
	}

	z := &ZapLoggerAdapter{
		atomicLevel: atomicLevel,
		callerSkip:  cfg.callerSkip,
		baseFields:  baseFields,
		sinks:       make(map[string]zapcore.Core),
		defaultCore: defaultCore,
	}
	z.rebuildLocked()
	return z
}

// rebuildLocked recreates the zap logger from the default core plus all
// attached sinks. Callers must hold z.mu (NewLogger is single-threaded).
func (z *ZapLoggerAdapter) rebuildLocked() {
	cores := make([]zapcore.Core, 0, len(z.sinks)+1)
	cores = append(cores, z.defaultCore)
	for _, core := range z.sinks {
		cores = append(cores, core)
	}
	z.logger = zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddCallerSkip(z.callerSkip),
	).With(z.baseFields...)
}

// LoggerWithLevel configures the logger to use the specified log level.
func LoggerWithLevel(levelStr string) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.level = ConvertLevel(parseLogLevel(levelStr))
	}
}

// LoggerWithDevelopment enables or disables development mode.
func LoggerWithDevelopment(dev bool) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.development = dev
	}
}

// LoggerWithFields attaches fields to every log line.
func LoggerWithFields(fields map[string]interface{}) LoggerOption {
	return func(cfg *loggerConfig) {
		for key, value := range fields {
			if key == "" {
				continue
			}
			cfg.initialFields[key] = value
		}
	}
}

// LoggerWithCallerSkip adjusts the number of caller frames to skip.
func LoggerWithCallerSkip(skip int) LoggerOption {
	return func(cfg *loggerConfig) {
		cfg.callerSkip += skip
	}
}

package log

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEnvironment represents the possible log environments
type LogEnvironment string

const (
	// EnvironmentProduction production log environment
	EnvironmentProduction = LogEnvironment("production")
	// EnvironmentDevelopment development log environment
	EnvironmentDevelopment = LogEnvironment("development")
)

// Logger is a wrapper providing logging facilities
type Logger struct {
	x *zap.SugaredLogger
}

// root logger, used by the package level helpers. Kept behind an
// atomic.Pointer so Init can swap it at any point.
var log atomic.Pointer[Logger]

func getDefaultLog() *Logger {
	l := log.Load()
	if l != nil {
		return l
	}
	// default to development logs on stderr until Init is called
	l, err := NewLogger(Config{
		Environment: EnvironmentDevelopment,
		Level:       "debug",
		Outputs:     []string{"stderr"},
	})
	if err != nil {
		panic(err)
	}
	log.Store(l)
	return l
}

// Init the logger with defined level. outputs defines the outputs where the
// logs will be sent. By default outputs contains "stdout", which prints the
// logs at the output of the process. To add a log file as output, the path
// should be added at the outputs array. To avoid printing the logs but storing
// them on a log file, nil should be provided as outputs value.
func Init(cfg Config) {
	l, err := NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	log.Store(l)
}

// NewLogger creates the logger with defined level. outputs defines the outputs
// where the logs will be sent.
func NewLogger(cfg Config) (*Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("error on setting log level: %w", err)
	}

	var zapCfg zap.Config
	switch cfg.Environment {
	case EnvironmentProduction:
		zapCfg = zap.NewProductionConfig()
	default:
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = cfg.Outputs
	zapCfg.InitialFields = map[string]interface{}{
		"pid": os.Getpid(),
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	defer logger.Sync() //nolint:errcheck

	// skip one caller frame so the package level helpers report their
	// caller instead of this file
	logger = logger.WithOptions(zap.AddCallerSkip(1))
	return &Logger{x: logger.Sugar()}, nil
}

// WithFields returns a new Logger with the given fields attached to every log
func (l *Logger) WithFields(keyValuePairs ...interface{}) *Logger {
	return &Logger{x: l.x.With(keyValuePairs...)}
}

// Debug calls log.Debug
func (l *Logger) Debug(args ...interface{}) { l.x.Debug(args...) }

// Info calls log.Info
func (l *Logger) Info(args ...interface{}) { l.x.Info(args...) }

// Warn calls log.Warn
func (l *Logger) Warn(args ...interface{}) { l.x.Warn(args...) }

// Error calls log.Error
func (l *Logger) Error(args ...interface{}) { l.x.Error(args...) }

// Fatal calls log.Fatal
func (l *Logger) Fatal(args ...interface{}) { l.x.Fatal(args...) }

// Debugf calls log.Debugf
func (l *Logger) Debugf(template string, args ...interface{}) { l.x.Debugf(template, args...) }

// Infof calls log.Infof
func (l *Logger) Infof(template string, args ...interface{}) { l.x.Infof(template, args...) }

// Warnf calls log.Warnf
func (l *Logger) Warnf(template string, args ...interface{}) { l.x.Warnf(template, args...) }

// Errorf calls log.Errorf
func (l *Logger) Errorf(template string, args ...interface{}) { l.x.Errorf(template, args...) }

// Fatalf calls log.Fatalf
func (l *Logger) Fatalf(template string, args ...interface{}) { l.x.Fatalf(template, args...) }

// Debug calls log.Debug on the root Logger.
func Debug(args ...interface{}) { getDefaultLog().Debug(args...) }

// Info calls log.Info on the root Logger.
func Info(args ...interface{}) { getDefaultLog().Info(args...) }

// Warn calls log.Warn on the root Logger.
func Warn(args ...interface{}) { getDefaultLog().Warn(args...) }

// Error calls log.Error on the root Logger.
func Error(args ...interface{}) { getDefaultLog().Error(args...) }

// Fatal calls log.Fatal on the root Logger.
func Fatal(args ...interface{}) { getDefaultLog().Fatal(args...) }

// Debugf calls log.Debugf on the root Logger.
func Debugf(template string, args ...interface{}) { getDefaultLog().Debugf(template, args...) }

// Infof calls log.Infof on the root Logger.
func Infof(template string, args ...interface{}) { getDefaultLog().Infof(template, args...) }

// Warnf calls log.Warnf on the root Logger.
func Warnf(template string, args ...interface{}) { getDefaultLog().Warnf(template, args...) }

// Errorf calls log.Errorf on the root Logger.
func Errorf(template string, args ...interface{}) { getDefaultLog().Errorf(template, args...) }

// Fatalf calls log.Fatalf on the root Logger.
func Fatalf(template string, args ...interface{}) { getDefaultLog().Fatalf(template, args...) }

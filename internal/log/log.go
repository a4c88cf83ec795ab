// Package log provides the process-wide zap logger used by the service
// layer. Calculation packages stay silent; logging happens at the edges.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var (
	baseLogger *zap.Logger
	sugar      *zap.SugaredLogger
)

// Init initializes the package-level logger. Debug switches to the
// development config with human-readable output.
func Init(debug bool) error {
	var logger *zap.Logger
	var err error

	if debug {
		logger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		logger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = logger
	sugar = logger.Sugar()
	return nil
}

// GetZapLogger returns the base zap logger for integrations that need it
// (the GORM adapter, for one).
func GetZapLogger() *zap.Logger {
	ensure()
	return baseLogger
}

// GetSugaredLogger returns the sugared logger instance.
func GetSugaredLogger() *zap.SugaredLogger {
	ensure()
	return sugar
}

// ensure installs a production fallback when Init was never called.
func ensure() {
	if baseLogger == nil {
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		sugar = baseLogger.Sugar()
	}
}

// Sync flushes any buffered log entries.
func Sync() {
	if sugar != nil {
		sugar.Sync()
	}
}

func Debug(args ...interface{})                       { GetSugaredLogger().Debug(args...) }
func Debugf(template string, args ...interface{})     { GetSugaredLogger().Debugf(template, args...) }
func Debugw(msg string, keysAndValues ...interface{}) { GetSugaredLogger().Debugw(msg, keysAndValues...) }
func Info(args ...interface{})                        { GetSugaredLogger().Info(args...) }
func Infof(template string, args ...interface{})      { GetSugaredLogger().Infof(template, args...) }
func Infow(msg string, keysAndValues ...interface{})  { GetSugaredLogger().Infow(msg, keysAndValues...) }
func Warn(args ...interface{})                        { GetSugaredLogger().Warn(args...) }
func Warnf(template string, args ...interface{})      { GetSugaredLogger().Warnf(template, args...) }
func Error(args ...interface{})                       { GetSugaredLogger().Error(args...) }
func Errorf(template string, args ...interface{})     { GetSugaredLogger().Errorf(template, args...) }
func Errorw(msg string, keysAndValues ...interface{}) { GetSugaredLogger().Errorw(msg, keysAndValues...) }
func Fatalf(template string, args ...interface{})     { GetSugaredLogger().Fatalf(template, args...) }

package logger

import (
	"os"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/pkg/constvars"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func NewZapLogger(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *zap.Logger {
	logLevel := parseLevel(driverConfig.Logger.Level)

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var core zapcore.Core
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		fileWriter := zapcore.AddSync(newRotatingFile(driverConfig.Logger, driverConfig.Logger.OutputFileName))
		errorFileWriter := zapcore.AddSync(newRotatingFile(driverConfig.Logger, driverConfig.Logger.OutputErrorFileName))
		errorLevel := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= zapcore.ErrorLevel && logLevel.Enabled(level)
		})
		core = zapcore.NewTee(
			zapcore.NewCore(encoder, fileWriter, logLevel),
			zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(errorFileWriter, zapcore.Lock(os.Stderr)), errorLevel),
		)
	default:
		core = zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), logLevel)
	}

	options := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel)}
	if internalConfig.App.Env != constvars.AppEnvProduction {
		options = append(options, zap.Development())
	}
	return zap.New(core, options...)
}

func newRotatingFile(cfg config.Logger, filename string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSizeInMegabyte,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeInDays,
		Compress:   true,
	}
}

func parseLevel(level string) zap.AtomicLevel {
	switch level {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}

package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/dojoledger/internal/config"
)

const (
	timeLayout = "15:04:05 02-01-2006"

	FormatConsole = "console"
	FormatJSON    = "json"
)

func encoderConfig(format string) zapcore.EncoderConfig {
	cfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	}
	if format == FormatJSON {
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.CallerKey = "caller"
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return cfg
}

// Build returns a zap logger for the configured level and format without installing it.
func Build(conf *config.Config) (*zap.Logger, zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return nil, lvl, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	format := conf.LogFormat
	if format == "" {
		format = FormatConsole
	}
	if format != FormatConsole && format != FormatJSON {
		return nil, lvl, fmt.Errorf("unsupported log format: %s", conf.LogFormat)
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Encoding:          format,
		EncoderConfig:     encoderConfig(format),
		DisableCaller:     format == FormatConsole,
		DisableStacktrace: lvl > zapcore.DebugLevel,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, lvl, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger.Named("dojoledger"), lvl, nil
}

// InitLogger installs the global zap logger and configures the access log to match it.
func InitLogger(conf *config.Config) error {
	logger, lvl, err := Build(conf)
	if err != nil {
		return err
	}

	zap.ReplaceGlobals(logger)
	configureAccess(lvl, conf.LogFormat)

	return nil
}

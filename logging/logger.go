// Package logging builds the structured logger of the icon generator.
//
// Log entries go to stderr in a human readable form. When a log file is
// configured, entries are also written to it as JSON, with size based rotation.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings of the log file.
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 28
)

// New returns a logger writing to stderr and, if logFile is not empty, to logFile.
// Debug enables the debug level, otherwise only warnings and errors reach the console.
func New(debug bool, logFile string) (*zap.Logger, error) {
	consoleLevel := zapcore.WarnLevel
	fileLevel := zapcore.InfoLevel
	if debug {
		consoleLevel = zapcore.DebugLevel
		fileLevel = zapcore.DebugLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(ConsoleEncoderConfig()),
			zapcore.Lock(os.Stderr),
			consoleLevel,
		),
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, fmt.Errorf("unable to create the log directory: %w", err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			NewFileWriter(logFile),
			fileLevel,
		))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// NewFileWriter returns a WriteSyncer appending to path and rotating it once it grows past MaxSizeMB.
func NewFileWriter(path string) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	})
}

// ConsoleEncoderConfig is the encoder configuration of the stderr output.
func ConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	return cfg
}

package logging

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the structured logger that gets injected into the
// GitLab client, resolver, and batch runner. Debug level is gated on the
// verbose flag; output goes to stderr so it never mixes with command output.
func NewLogger(verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}

	return logger.Sugar()
}

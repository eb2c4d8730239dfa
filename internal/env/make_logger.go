package env

import (
	zap "go.uber.org/zap"
)

// MakeLogger builds the process logger. Diagnostics go to stderr as
// JSON so they never interleave with protocol output on stdout; the
// prompt and server replies own stdout.
func MakeLogger(debug bool) (*zap.Logger, error) {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	logConfig.Encoding = "json"
	logConfig.OutputPaths = []string{"stderr"}
	logConfig.ErrorOutputPaths = []string{"stderr"}

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return logConfig.Build()
}

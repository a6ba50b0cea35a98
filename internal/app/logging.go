package app

import "go.uber.org/zap"

// NewLogger builds a console logger at info level, or debug when debug is
// set. A non-empty path redirects all output to that file.
func NewLogger(debug bool, path string) (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	zc.DisableStacktrace = true
	if !debug {
		zc.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	if path != "" {
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	}
	return zc.Build()
}

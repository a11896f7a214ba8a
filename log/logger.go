package log

import (
	"go.uber.org/zap"
)

var logger *zap.SugaredLogger

// New returns the process-wide logger, creating it on first use. An empty
// path logs to stdout only.
func New(path string) *zap.SugaredLogger {
	if logger != nil {
		return logger
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stdout"}
	if path != "" {
		cfg.OutputPaths = append(cfg.OutputPaths, path)
	}

	base, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	logger = base.Sugar()
	return logger
}

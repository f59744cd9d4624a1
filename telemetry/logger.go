package telemetry

import "go.uber.org/zap"

// NewLogger builds the service logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}

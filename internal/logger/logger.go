package logger

import (
	"go.uber.org/zap"
)

// New builds the process logger. Production gets JSON output at info level,
// everything else the human readable development encoder.
func New(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

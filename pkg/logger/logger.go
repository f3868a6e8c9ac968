package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
)

func NewAppLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if strings.ToLower(os.Getenv("APP_ENV")) == "local" {
		cfg = zap.NewDevelopmentConfig()
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	// stderr sync errors are expected on some platforms
	_ = l.Sync()
}

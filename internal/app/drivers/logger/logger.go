package logger

import (
	"os"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/pkg/constvars"

	"github.com/sirupsen/logrus"
)

// InitLogrus configures the process-wide logrus logger used for lifecycle
// banners printed outside of any request.
func InitLogrus(internalConfig *config.InternalConfig) {
	logrus.SetOutput(os.Stdout)
	switch internalConfig.App.Env {
	case constvars.AppEnvProduction:
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

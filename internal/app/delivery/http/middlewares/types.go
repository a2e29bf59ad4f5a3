package middlewares

import (
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	CredentialStore contracts.CredentialStore
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, credentialStore contracts.CredentialStore, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:             logger,
		CredentialStore: credentialStore,
		InternalConfig:  internalConfig,
	}
}

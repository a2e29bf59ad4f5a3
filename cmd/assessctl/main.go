// Package main provides assessctl, a command line client for the remote
// psychological assessment service.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"syscall"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	// the gateway defaults to memory, a CLI has to survive between invocations
	internalConfig.Credential.Store = utils.GetEnvString("CREDENTIAL_STORE", constvars.CredentialStoreFile)
	// log lines share stdout with command output
	driverConfig.Logger.Level = utils.GetEnvString("LOGGER_LEVEL", "error")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd(driverConfig, internalConfig, os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorDetail(err))
		os.Exit(1)
	}
}

func errorDetail(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return fmt.Sprintf("%s (%s)", customErr.Detail(), customErr.Kind)
	}
	return err.Error()
}

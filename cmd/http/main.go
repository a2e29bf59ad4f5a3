package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/delivery/http/controllers"
	"psychology-assessment-client/internal/app/delivery/http/middlewares"
	"psychology-assessment-client/internal/app/delivery/http/routers"
	"psychology-assessment-client/internal/app/drivers/logger"
	"psychology-assessment-client/internal/app/services/shared/metrics"
	"psychology-assessment-client/internal/app/wiring"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)

	metrics.Register(prometheus.DefaultRegisterer)

	bootstrap := wiring.OpenDrivers(driverConfig, internalConfig, log)
	bootstrap.Router = chi.NewRouter()

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the gateway", zap.Error(err))
	}

	server := &http.Server{
		Addr:    net.JoinHostPort(internalConfig.App.Host, strings.TrimPrefix(internalConfig.App.Port, ":")),
		Handler: bootstrap.Router,
	}

	go func() {
		logrus.Printf("Assessment gateway listening on %s, backend %s", server.Addr, internalConfig.Backend.BaseUrl)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Printf("Failed to close drivers: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	core, err := wiring.NewCore(context.Background(), bootstrap)
	if err != nil {
		return err
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, core.CredentialStore, bootstrap.InternalConfig)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, core.AuthUsecase)
	scaleController := controllers.NewScaleController(bootstrap.Logger, core.ScaleUsecase, core.Workflow)
	assessmentController := controllers.NewAssessmentController(bootstrap.Logger, core.Workflow, bootstrap.InternalConfig.App.RequestBodyLimitInMegabyte)
	submissionController := controllers.NewSubmissionController(bootstrap.Logger, core.JournalRepository)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		promhttp.Handler(),
		authController,
		scaleController,
		assessmentController,
		submissionController,
	)
	return nil
}

// Package wiring opens the configured drivers and assembles the assessment
// workflow shared by the gateway and the CLI.
package wiring

import (
	"context"
	"psychology-assessment-client/internal/app/config"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/drivers/database"
	"psychology-assessment-client/internal/app/drivers/messaging"
	"psychology-assessment-client/internal/app/drivers/storage"
	"psychology-assessment-client/internal/app/services/core/assessments"
	"psychology-assessment-client/internal/app/services/core/auth"
	"psychology-assessment-client/internal/app/services/core/journals"
	"psychology-assessment-client/internal/app/services/core/reports"
	"psychology-assessment-client/internal/app/services/core/scales"
	"psychology-assessment-client/internal/app/services/core/session"
	"psychology-assessment-client/internal/app/services/core/workflow"
	"psychology-assessment-client/internal/app/services/shared/publisher"
	redisRepository "psychology-assessment-client/internal/app/services/shared/redis"
	minioStorage "psychology-assessment-client/internal/app/services/shared/storage"
	"psychology-assessment-client/internal/app/services/shared/transport"
	"psychology-assessment-client/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Core is one workflow session with everything that serves it.
type Core struct {
	CredentialStore   contracts.CredentialStore
	Transport         contracts.Transport
	Workflow          contracts.WorkflowOrchestrator
	AuthUsecase       contracts.AuthUsecase
	ScaleUsecase      contracts.ScaleUsecase
	JournalRepository contracts.JournalRepository
	Observers         *workflow.ReportObservers
}

// OpenDrivers connects to the optional infrastructure. Redis is only opened
// for the redis credential store; MongoDB, Minio and RabbitMQ only when
// their host is set.
func OpenDrivers(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, logger *zap.Logger) *config.Bootstrap {
	bootstrap := &config.Bootstrap{
		Logger:         logger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	if internalConfig.Credential.Store == constvars.CredentialStoreRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if driverConfig.MongoDB.Host != "" {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig)
	}
	if driverConfig.Minio.Host != "" {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Archive.BucketName)
	}
	if driverConfig.RabbitMQ.Host != "" {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
		bootstrap.RabbitMQChannel = messaging.NewRabbitMQChannel(bootstrap.RabbitMQ, internalConfig.Events.QueueName)
	}

	return bootstrap
}

// NewCore builds the workflow session and restores a persisted credential.
func NewCore(ctx context.Context, bootstrap *config.Bootstrap) (*Core, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	storageKey := internalConfig.Credential.StorageKey
	credentialStore := session.NewCredentialStore(newPersistence(bootstrap, storageKey), log)
	if err := credentialStore.Restore(ctx); err != nil {
		return nil, err
	}

	backend := transport.NewTransportClient(
		internalConfig.Backend.BaseUrl,
		time.Duration(internalConfig.Backend.RequestTimeoutInSeconds)*time.Second,
		credentialStore,
		log,
	)

	submissionPersistence := newPersistence(bootstrap, storageKey+constvars.LastSubmissionKeySuffix)
	observers := workflow.NewReportObservers(log)
	observers.Add(workflow.NewSubmissionRecorder(submissionPersistence))
	var journalRepository contracts.JournalRepository
	if bootstrap.MongoDB != nil {
		journalRepository = journals.NewJournalMongoRepository(bootstrap.MongoDB, internalConfig.Journal.CollectionName, log)
		observers.Add(journals.NewJournalObserver(journalRepository, credentialStore))
	}
	if bootstrap.Minio != nil {
		observers.Add(reports.NewReportArchiver(minioStorage.NewMinioStorage(bootstrap.Minio), internalConfig.Archive.BucketName, log))
	}
	if bootstrap.RabbitMQChannel != nil {
		observers.Add(reports.NewReportEventNotifier(publisher.NewRabbitMQPublisher(bootstrap.RabbitMQChannel, log), internalConfig.Events.QueueName))
	}

	submissionBuilder := assessments.NewSubmissionBuilder()
	submissionClient := assessments.NewSubmissionClient(submissionBuilder, backend, log)
	reportMachine := reports.NewReportMachine(
		reports.NewReportClient(backend, log),
		internalConfig.Report.FailureMarkerList(),
		log,
		observers.ReportStateChanged,
	)
	workflowOrchestrator := workflow.NewWorkflowOrchestrator(submissionBuilder, submissionClient, reportMachine, observers, log)
	if _, err := workflow.ResumeLastSubmission(ctx, submissionPersistence, workflowOrchestrator); err != nil {
		return nil, err
	}

	log.Info("wiring.NewCore succeeded",
		zap.String("credential_store", internalConfig.Credential.Store),
		zap.Int("observer_count", observers.Len()),
	)

	return &Core{
		CredentialStore:   credentialStore,
		Transport:         backend,
		Workflow:          workflowOrchestrator,
		AuthUsecase:       auth.NewAuthUsecase(backend, credentialStore, workflowOrchestrator, log),
		ScaleUsecase:      scales.NewScaleUsecase(backend, log),
		JournalRepository: journalRepository,
		Observers:         observers,
	}, nil
}

// newPersistence stores one value under key in the configured credential
// store.
func newPersistence(bootstrap *config.Bootstrap, key string) contracts.CredentialPersistence {
	credential := bootstrap.InternalConfig.Credential
	switch credential.Store {
	case constvars.CredentialStoreRedis:
		if bootstrap.Redis != nil {
			return session.NewRedisCredentialPersistence(redisRepository.NewRedisRepository(bootstrap.Redis), key)
		}
	case constvars.CredentialStoreFile:
		return session.NewFileCredentialPersistence(credential.FilePath, key)
	}
	return session.NewMemoryCredentialPersistence()
}

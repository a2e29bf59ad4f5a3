package config

import (
	"os"
	"path/filepath"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "assessment"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			MaxSizeInMegabyte:   utils.GetEnvInt("LOGGER_MAX_SIZE_IN_MEGABYTE", 100),
			MaxBackups:          utils.GetEnvInt("LOGGER_MAX_BACKUPS", 5),
			MaxAgeInDays:        utils.GetEnvInt("LOGGER_MAX_AGE_IN_DAYS", 30),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", ""),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", ""),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Host:                       utils.GetEnvString("APP_HOST", "127.0.0.1"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 10),
			AllowedOrigins:             utils.GetEnvString("APP_ALLOWED_ORIGINS", constvars.DefaultAllowedOrigins),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8000/api/v1"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 120),
		},
		Credential: AppCredential{
			Store:      utils.GetEnvString("CREDENTIAL_STORE", constvars.CredentialStoreMemory),
			StorageKey: utils.GetEnvString("CREDENTIAL_STORAGE_KEY", constvars.DefaultCredentialStorageKey),
			FilePath:   utils.GetEnvString("CREDENTIAL_FILE_PATH", defaultCredentialFilePath()),
		},
		Report: AppReport{
			FailureMarkers:        utils.GetEnvString("REPORT_FAILURE_MARKERS", constvars.DefaultReportFailureMarkers),
			PollIntervalInSeconds: utils.GetEnvInt("REPORT_POLL_INTERVAL_IN_SECONDS", 5),
		},
		Journal: AppJournal{
			CollectionName: utils.GetEnvString("JOURNAL_COLLECTION_NAME", "submissions"),
		},
		Archive: AppArchive{
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "assessment-reports"),
		},
		Events: AppEvents{
			QueueName: utils.GetEnvString("RABBITMQ_REPORT_STATUS_QUEUE", "assessment.report.status"),
		},
	}
}

// FailureMarkerList splits the configured CSV, dropping blank entries.
func (c AppReport) FailureMarkerList() []string {
	return utils.SplitCSV(c.FailureMarkers)
}

func defaultCredentialFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".assessment-credential.json"
	}
	return filepath.Join(dir, "psychology-assessment", "credential.json")
}

package config

type DriverConfig struct {
	MongoDB  MongoDB
	Redis    Redis
	Logger   Logger
	RabbitMQ RabbitMQ
	Minio    Minio
}

// MongoDB backs the submission journal. An empty Host disables it.
type MongoDB struct {
	Port     string
	Host     string
	DbName   string
	Username string
	Password string
}

// Redis backs the credential store when CREDENTIAL_STORE=redis.
type Redis struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Logger struct {
	Level               string
	OutputFileName      string
	OutputErrorFileName string
	MaxSizeInMegabyte   int
	MaxBackups          int
	MaxAgeInDays        int
}

// RabbitMQ carries report status events. An empty Host disables it.
type RabbitMQ struct {
	Port     string
	Host     string
	Username string
	Password string
}

// Minio stores archived report artifacts. An empty Host disables it.
type Minio struct {
	Port     string
	Host     string
	Username string
	Password string
	UseSSL   bool
}

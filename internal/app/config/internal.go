package config

type InternalConfig struct {
	App        App
	Backend    AppBackend
	Credential AppCredential
	Report     AppReport
	Journal    AppJournal
	Archive    AppArchive
	Events     AppEvents
}

type App struct {
	Env                        string
	Host                       string
	Port                       string
	Version                    string
	EndpointPrefix             string
	MaxRequests                int
	MaxTimeRequestsPerSeconds  int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
	AllowedOrigins             string
}

// AppBackend points at the remote analysis service.
type AppBackend struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type AppCredential struct {
	// Store is one of redis, file or memory.
	Store      string
	StorageKey string
	FilePath   string
}

type AppReport struct {
	// FailureMarkers is a CSV list of substrings that turn a report message
	// into a failed report.
	FailureMarkers        string
	PollIntervalInSeconds int
}

type AppJournal struct {
	CollectionName string
}

type AppArchive struct {
	BucketName string
}

type AppEvents struct {
	QueueName string
}

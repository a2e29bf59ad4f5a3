package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	REQUEST_ID_PREFIX = "PSY_CLIENT_"
)

// Backend resources, relative to the configured backend base URL.
const (
	ResourceAuthToken        = "auth/token"
	ResourceAuthRegister     = "auth/register"
	ResourceAuthCurrentUser  = "auth/users/me"
	ResourceScales           = "scales"
	ResourceScaleQuestions   = "scales/%s/questions"
	ResourceAssessmentSubmit = "assessments/submit"
	ResourceReport           = "reports/%s"
	ResourceReportStatus     = "reports/%s/status"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	CredentialStoreRedis  = "redis"
	CredentialStoreFile   = "file"
	CredentialStoreMemory = "memory"

	// appended to the credential storage key to record the last submission
	LastSubmissionKeySuffix = ":last_submission"
)

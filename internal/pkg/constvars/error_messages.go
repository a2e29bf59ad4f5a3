package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientResourceNotFound              = "the requested record was not found"
	ErrClientAnalysisServerError           = "the analysis service reported an error"
	ErrClientNetworkUnreachable            = "cannot reach the analysis service, please check your connection"
	ErrClientInvalidResponse               = "the analysis service returned an unexpected response"
	ErrClientScaleNotSelected              = "please choose a questionnaire before submitting"
	ErrClientInvalidImageFormat            = "the image format is not supported"
	ErrClientReportFailed                  = "report generation failed"
	ErrClientTooManyRequests               = "too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm  = "cannot parse multipart form"
	ErrDevImageValidationFailed     = "image validation failed"
	ErrDevURLParamValidationFailed  = "url param %s validation failed"
	ErrDevInvalidFlag               = "invalid value for flag --%s"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request to %s"
	ErrDevReadResponseBody          = "failed to read response body from %s"
	ErrDevDecodeResponse            = "failed to decode response body from %s"
	ErrDevBackendUnauthorized       = "backend rejected the credential on %s"
	ErrDevBackendForbidden          = "backend refused access on %s"
	ErrDevBackendNotFound           = "backend has no record for %s"
	ErrDevBackendServerError        = "backend returned status %d on %s"
	ErrDevMissingField              = "response from %s is missing %s"
	ErrDevUnknownReportStatus       = "unknown report status %q"
	ErrDevDraftWithoutScale         = "draft has no scale type"
	ErrDevEncodeMultipart           = "failed to encode multipart payload"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data in redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevCredentialFile            = "failed to access credential file %s"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevMongoDBInsertDocument     = "failed to insert document"
	ErrDevMongoDBUpdateDocument     = "failed to update document"
	ErrDevMongoDBFindDocument       = "failed to find document"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevJournalNotConfigured      = "submission journal is not configured"
	ErrDevUnexpected                = "unexpected error"
	ErrDevTooManyRequests           = "rate limit exceeded"
	ErrDevNoCredential              = "no credential held by the session"
)

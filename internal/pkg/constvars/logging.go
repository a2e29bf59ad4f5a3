package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseKey       = "response"
	LoggingResponseCountKey  = "response_count"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingStatusCodeKey     = "status_code"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorKindKey      = "error_kind"
	LoggingSubmissionIDKey   = "submission_id"
	LoggingScaleTypeKey      = "scale_type"
	LoggingReportStatusKey   = "report_status"
	LoggingPreviousStatusKey = "previous_status"
	LoggingFieldCountKey     = "field_count"
	LoggingHasAttachmentKey  = "has_attachment"
	LoggingUsernameKey       = "username"
	LoggingBucketNameKey     = "bucket_name"
	LoggingObjectNameKey     = "object_name"
	LoggingQueueNameKey      = "queue_name"
	LoggingOperationKey      = "operation"
	LoggingObserverKey       = "observer"
)

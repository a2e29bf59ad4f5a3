package exceptions

import (
	"fmt"
	"psychology-assessment-client/internal/pkg/constvars"
)

var (
	// Input
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrInvalidFlag = func(err error, flagName string) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevInvalidFlag, flagName))
	}
	ErrImageValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, constvars.ErrClientInvalidImageFormat, constvars.ErrDevImageValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrUnexpected = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevUnexpected)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInvalidInput, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrNotLoggedIn = func(err error) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevNoCredential)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetworkUnreachable, constvars.StatusGatewayTimeout, constvars.ErrClientNetworkUnreachable, constvars.ErrDevServerDeadlineExceeded)
	}

	// Draft
	ErrIncompleteDraft = func(err error) *CustomError {
		return BuildNewCustomError(err, KindIncompleteDraft, constvars.StatusBadRequest, constvars.ErrClientScaleNotSelected, constvars.ErrDevDraftWithoutScale)
	}
	ErrEncodeMultipart = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevEncodeMultipart)
	}

	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrNetworkUnreachable = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindNetworkUnreachable, constvars.StatusServiceUnavailable, constvars.ErrClientNetworkUnreachable, fmt.Sprintf(constvars.ErrDevSendHTTPRequest, path))
	}
	ErrUnauthorized = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindUnauthorized, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, fmt.Sprintf(constvars.ErrDevBackendUnauthorized, path))
	}
	ErrForbidden = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindForbidden, constvars.StatusForbidden, constvars.ErrClientNotAuthorized, fmt.Sprintf(constvars.ErrDevBackendForbidden, path))
	}
	ErrNotFound = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, fmt.Sprintf(constvars.ErrDevBackendNotFound, path))
	}
	// ErrServerError surfaces the backend's own detail message verbatim.
	ErrServerError = func(err error, statusCode int, path, detail string) *CustomError {
		clientMessage := detail
		if clientMessage == "" {
			clientMessage = constvars.ErrClientAnalysisServerError
		}
		return BuildNewCustomError(err, KindServerError, statusCode, clientMessage, fmt.Sprintf(constvars.ErrDevBackendServerError, statusCode, path))
	}
	ErrReadResponseBody = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindNetworkUnreachable, constvars.StatusBadGateway, constvars.ErrClientNetworkUnreachable, fmt.Sprintf(constvars.ErrDevReadResponseBody, path))
	}
	ErrDecodeResponse = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindInvalidResponseShape, constvars.StatusBadGateway, constvars.ErrClientInvalidResponse, fmt.Sprintf(constvars.ErrDevDecodeResponse, path))
	}
	ErrMissingResponseField = func(err error, path, field string) *CustomError {
		return BuildNewCustomError(err, KindInvalidResponseShape, constvars.StatusBadGateway, constvars.ErrClientInvalidResponse, fmt.Sprintf(constvars.ErrDevMissingField, path, field))
	}
	ErrUnknownReportStatus = func(err error, status string) *CustomError {
		return BuildNewCustomError(err, KindInvalidResponseShape, constvars.StatusBadGateway, constvars.ErrClientInvalidResponse, fmt.Sprintf(constvars.ErrDevUnknownReportStatus, status))
	}

	// Report
	ErrReportFailed = func(err error, message string) *CustomError {
		clientMessage := message
		if clientMessage == "" {
			clientMessage = constvars.ErrClientReportFailed
		}
		return BuildNewCustomError(err, KindServerError, constvars.StatusUnprocessableEntity, clientMessage, constvars.ErrClientReportFailed)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}

	// Credential file
	ErrCredentialFile = func(err error, path string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevCredentialFile, path))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBUpdateDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoDBFindDocument)
	}
	ErrJournalNotConfigured = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNotFound, constvars.StatusNotFound, constvars.ErrClientResourceNotFound, constvars.ErrDevJournalNotConfigured)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
)

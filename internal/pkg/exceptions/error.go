package exceptions

import (
	"errors"
	"fmt"
	"psychology-assessment-client/internal/pkg/constvars"
	"runtime"
)

// ErrorKind classifies every failure the workflow can surface, whether it
// came from validation, transport or the report state machine.
type ErrorKind string

const (
	KindUnauthorized         ErrorKind = "unauthorized"
	KindForbidden            ErrorKind = "forbidden"
	KindNotFound             ErrorKind = "not_found"
	KindServerError          ErrorKind = "server_error"
	KindNetworkUnreachable   ErrorKind = "network_unreachable"
	KindInvalidResponseShape ErrorKind = "invalid_response_shape"
	KindIncompleteDraft      ErrorKind = "incomplete_draft"
	KindInvalidInput         ErrorKind = "invalid_input"
	KindInternal             ErrorKind = "internal"
)

type CustomError struct {
	StatusCode    int       `json:"status_code"`
	Success       bool      `json:"success"`
	Kind          ErrorKind `json:"kind"`
	ClientMessage string    `json:"message"`
	DevMessage    string    `json:"dev_message,omitempty"`
	Location      *Location `json:"location,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.DevMessage)
	}
	return fmt.Sprintf("%s: %s (%s:%d %s)", e.Kind, e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// Detail is the human-readable message callers may show to users.
func (e *CustomError) Detail() string {
	return e.ClientMessage
}

func BuildNewCustomError(err error, kind ErrorKind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		Kind:          kind,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      &location,
	}
}

// KindOf reports the kind of err, or KindInternal when err is not a
// CustomError. A nil error has no kind.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

// IsCredentialRejected is true for the kinds that must invalidate the
// stored credential.
func IsCredentialRejected(err error) bool {
	kind := KindOf(err)
	return kind == KindUnauthorized || kind == KindForbidden
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

// AsCustomError returns err unchanged when it already is a CustomError and
// wraps it as an unexpected internal error otherwise.
func AsCustomError(err error) error {
	if err == nil {
		return nil
	}
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return err
	}
	return ErrUnexpected(err)
}

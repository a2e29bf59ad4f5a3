// Package reports owns the lifecycle of the analysis report for the
// current submission.
//
//	uninitialized -> pending               (submission accepted)
//	pending -> processing                  (poll returns processing)
//	processing -> processing               (poll returns processing again)
//	pending|processing -> complete         (poll returns complete, report fetched)
//	pending|processing -> failed           (poll returns failed, report fetch
//	                                        errors, or report message carries
//	                                        a failure marker)
//	pending|processing -> not_found        (backend does not know the id)
//	complete (awaiting) -> processing      (report message without a marker)
//
// complete, failed and not_found are terminal until the next submission.
package reports

import (
	"errors"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"strings"
	"time"
)

// statusRank orders the non-terminal statuses so a stale result never moves
// the state backwards.
func statusRank(status models.ReportStatus) int {
	switch status {
	case models.ReportStatusPending:
		return 1
	case models.ReportStatusProcessing:
		return 2
	case models.ReportStatusComplete, models.ReportStatusFailed, models.ReportStatusNotFound:
		return 3
	}
	return 0
}

// Begin seeds the state for a freshly accepted submission.
func Begin(submissionID models.SubmissionID, now time.Time) models.ReportState {
	return models.ReportState{
		SubmissionID: submissionID,
		Status:       models.ReportStatusPending,
		UpdatedAt:    now,
	}
}

// Uninitialized is the state before any submission.
func Uninitialized(now time.Time) models.ReportState {
	return models.ReportState{
		Status:    models.ReportStatusUninitialized,
		UpdatedAt: now,
	}
}

// MissingSubmission resolves a status or report query made without a
// submission id.
func MissingSubmission(now time.Time) models.ReportState {
	return models.ReportState{
		Status:    models.ReportStatusNotFound,
		Message:   constvars.ErrClientResourceNotFound,
		UpdatedAt: now,
	}
}

// ApplyStatus folds a polled status into state. Terminal states and the
// complete state waiting for its report body never change here.
func ApplyStatus(state models.ReportState, status models.ReportStatus, now time.Time) models.ReportState {
	if !isInFlight(state) {
		return state
	}
	if statusRank(status) <= statusRank(state.Status) && !status.IsTerminal() {
		return state
	}

	next := state
	next.UpdatedAt = now
	next.Report = nil
	switch status {
	case models.ReportStatusPending, models.ReportStatusProcessing:
		next.Status = status
	case models.ReportStatusComplete:
		next.Status = models.ReportStatusComplete
		next.AwaitingReport = true
		next.Message = ""
	case models.ReportStatusFailed:
		next.Status = models.ReportStatusFailed
		next.Message = constvars.ErrClientReportFailed
	case models.ReportStatusNotFound:
		next.Status = models.ReportStatusNotFound
		next.Message = constvars.ErrClientResourceNotFound
	default:
		return state
	}
	return next
}

// ApplyPollError folds a failed poll into state. Only an unknown id or a
// malformed status body changes the state; anything else leaves it for the
// caller to retry.
func ApplyPollError(state models.ReportState, err error, now time.Time) models.ReportState {
	if !isInFlight(state) {
		return state
	}

	switch exceptions.KindOf(err) {
	case exceptions.KindNotFound:
		next := state
		next.Status = models.ReportStatusNotFound
		next.Message = constvars.ErrClientResourceNotFound
		next.UpdatedAt = now
		return next
	case exceptions.KindInvalidResponseShape:
		return fail(state, err, now)
	}
	return state
}

// ApplyReport folds a report fetch into state. Content completes the
// report. A message containing one of markers fails it; any other message
// means the report is not ready yet and polling resumes.
func ApplyReport(state models.ReportState, result *models.ReportFetchResult, markers []string, now time.Time) models.ReportState {
	if !acceptsReport(state) || result == nil {
		return state
	}

	next := state
	next.UpdatedAt = now
	next.AwaitingReport = false

	if result.Report != nil {
		next.Status = models.ReportStatusComplete
		next.Report = result.Report
		next.Message = ""
		return next
	}

	next.Report = nil
	next.Message = result.Message
	if ContainsFailureMarker(result.Message, markers) {
		next.Status = models.ReportStatusFailed
		return next
	}
	if next.Status == models.ReportStatusComplete {
		next.Status = models.ReportStatusProcessing
	}
	return next
}

// ApplyReportError folds a failed report fetch into state: an unknown id is
// not_found, every other error fails the report.
func ApplyReportError(state models.ReportState, err error, now time.Time) models.ReportState {
	if !acceptsReport(state) {
		return state
	}
	if exceptions.IsKind(err, exceptions.KindNotFound) {
		next := state
		next.Status = models.ReportStatusNotFound
		next.Message = constvars.ErrClientResourceNotFound
		next.AwaitingReport = false
		next.Report = nil
		next.UpdatedAt = now
		return next
	}
	return fail(state, err, now)
}

func ContainsFailureMarker(message string, markers []string) bool {
	lowered := strings.ToLower(message)
	for _, marker := range markers {
		if marker != "" && strings.Contains(lowered, strings.ToLower(marker)) {
			return true
		}
	}
	return false
}

// isInFlight is true while polling may still change the status.
func isInFlight(state models.ReportState) bool {
	return state.Status == models.ReportStatusPending || state.Status == models.ReportStatusProcessing
}

// acceptsReport is true while a report fetch may still change the state.
func acceptsReport(state models.ReportState) bool {
	return isInFlight(state) || (state.Status == models.ReportStatusComplete && state.AwaitingReport)
}

func fail(state models.ReportState, err error, now time.Time) models.ReportState {
	next := state
	next.Status = models.ReportStatusFailed
	next.AwaitingReport = false
	next.Report = nil
	next.Message = constvars.ErrClientReportFailed
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) && customErr.Detail() != "" {
		next.Message = customErr.Detail()
	}
	next.UpdatedAt = now
	return next
}

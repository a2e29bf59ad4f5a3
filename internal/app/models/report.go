package models

import (
	"time"

	"github.com/goccy/go-json"
)

type ReportStatus string

const (
	// ReportStatusUninitialized is the state before any submission. It is
	// never reported by the backend.
	ReportStatusUninitialized ReportStatus = "uninitialized"
	ReportStatusPending       ReportStatus = "pending"
	ReportStatusProcessing    ReportStatus = "processing"
	ReportStatusComplete      ReportStatus = "complete"
	ReportStatusFailed        ReportStatus = "failed"
	ReportStatusNotFound      ReportStatus = "not_found"
)

// IsValid reports whether s is one of the statuses the backend can return.
func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusProcessing, ReportStatusComplete,
		ReportStatusFailed, ReportStatusNotFound:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition occurs from s without a
// new submission.
func (s ReportStatus) IsTerminal() bool {
	switch s {
	case ReportStatusComplete, ReportStatusFailed, ReportStatusNotFound:
		return true
	}
	return false
}

func (s ReportStatus) String() string {
	return string(s)
}

// Report is the artifact the backend returns once analysis completes. Raw
// keeps the artifact untouched, Text is its narrative field.
type Report struct {
	Raw  json.RawMessage `json:"artifact"`
	Text string          `json:"report_text"`
}

// ReportState is a snapshot of the report lifecycle for one submission.
type ReportState struct {
	SubmissionID SubmissionID `json:"submission_id,omitempty"`
	Status       ReportStatus `json:"status"`
	Report       *Report      `json:"report,omitempty"`
	Message      string       `json:"message,omitempty"`
	// AwaitingReport is set between observing complete and applying the
	// follow-up report fetch.
	AwaitingReport bool      `json:"awaiting_report"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsTerminal is true once the state can no longer change; a complete status
// still waiting for its report body is not terminal yet.
func (s ReportState) IsTerminal() bool {
	return s.Status.IsTerminal() && !s.AwaitingReport
}

// ReportFetchResult is the body of a report fetch: either the artifact or a
// message explaining why there is none.
type ReportFetchResult struct {
	Report  *Report
	Message string
}

package models

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// SubmissionID is the backend handle for a submitted draft. The backend
// may encode it as a JSON number or string; both decode to the same value.
type SubmissionID string

func (id SubmissionID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

func (id SubmissionID) String() string {
	return string(id)
}

func (id *SubmissionID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = SubmissionID(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	if value, err := number.Int64(); err == nil {
		*id = SubmissionID(strconv.FormatInt(value, 10))
		return nil
	}
	*id = SubmissionID(number.String())
	return nil
}

// FormField is one (name, value) pair of the submission payload.
type FormField struct {
	Name  string
	Value string
}

// SubmissionPayload is the explicit serialization of a draft: ordered text
// fields plus the optional binary attachment.
type SubmissionPayload struct {
	Fields     []FormField
	Attachment *Attachment
}

// SubmissionResult is the backend's reply to a submission.
type SubmissionResult struct {
	Status       string       `json:"status"`
	Message      string       `json:"message"`
	SubmissionID SubmissionID `json:"submission_id"`
}

// SubmissionRecord is the journal entry kept for every submission.
type SubmissionRecord struct {
	ID            string       `json:"id" bson:"_id"`
	SubmissionID  SubmissionID `json:"submission_id" bson:"submissionId"`
	ScaleType     string       `json:"scale_type" bson:"scaleType"`
	Subject       string       `json:"subject,omitempty" bson:"subject,omitempty"`
	AnswerCount   int          `json:"answer_count" bson:"answerCount"`
	HasAttachment bool         `json:"has_attachment" bson:"hasAttachment"`
	Status        ReportStatus `json:"status" bson:"status"`
	Message       string       `json:"message,omitempty" bson:"message,omitempty"`
	CompletedAt   *time.Time   `json:"completed_at,omitempty" bson:"completedAt,omitempty"`
	TimeModel     `bson:",inline"`
}

// ReportStatusEvent is published whenever a submission's status changes.
type ReportStatusEvent struct {
	SubmissionID   SubmissionID `json:"submission_id"`
	Status         ReportStatus `json:"status"`
	PreviousStatus ReportStatus `json:"previous_status"`
	Message        string       `json:"message,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
}

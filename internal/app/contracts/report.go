package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
)

type ReportClient interface {
	FetchStatus(ctx context.Context, submissionID models.SubmissionID) (models.ReportStatus, error)
	FetchReport(ctx context.Context, submissionID models.SubmissionID) (*models.ReportFetchResult, error)
}

// ReportMachine owns the report lifecycle of the current submission.
type ReportMachine interface {
	Begin(ctx context.Context, submissionID models.SubmissionID) models.ReportState
	PollOnce(ctx context.Context) (models.ReportState, error)
	FetchReport(ctx context.Context) (models.ReportState, error)
	Reset(ctx context.Context) models.ReportState
	State() models.ReportState
}

// ReportObserver is notified after submissions and status changes.
// Returned errors are logged by the caller and otherwise ignored.
type ReportObserver interface {
	SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) error
	ReportStateChanged(ctx context.Context, previous, current models.ReportState) error
}

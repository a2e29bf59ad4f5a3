package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
)

type WorkflowOrchestrator interface {
	Submit(ctx context.Context, draft *models.AssessmentDraft) (models.ReportState, error)
	SubmitDraft(ctx context.Context) (models.ReportState, error)
	PollStatus(ctx context.Context) (models.ReportState, error)
	FetchReport(ctx context.Context) (models.ReportState, error)
	Reset(ctx context.Context) models.ReportState
	Resume(ctx context.Context, submissionID models.SubmissionID) models.ReportState
	State() models.ReportState
	Draft() *models.AssessmentDraft
	UpdateDraft(ctx context.Context, update func(draft *models.AssessmentDraft) error) (*models.AssessmentDraft, error)
}

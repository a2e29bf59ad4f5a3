package workflow

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
)

// submissionRecorder remembers the last accepted submission so a later
// session can resume it, and forgets it when the session is reset.
type submissionRecorder struct {
	Persistence contracts.SubmissionPersistence
}

func NewSubmissionRecorder(persistence contracts.SubmissionPersistence) contracts.ReportObserver {
	return &submissionRecorder{Persistence: persistence}
}

func (r *submissionRecorder) SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) error {
	return r.Persistence.Save(ctx, state.SubmissionID.String())
}

func (r *submissionRecorder) ReportStateChanged(ctx context.Context, previous, current models.ReportState) error {
	if previous.SubmissionID.IsZero() || !current.SubmissionID.IsZero() {
		return nil
	}
	return r.Persistence.Delete(ctx)
}

// ResumeLastSubmission reloads the recorded submission into workflow.
func ResumeLastSubmission(ctx context.Context, persistence contracts.SubmissionPersistence, workflow contracts.WorkflowOrchestrator) (models.ReportState, error) {
	submissionID, err := persistence.Load(ctx)
	if err != nil {
		return workflow.State(), err
	}
	return workflow.Resume(ctx, models.SubmissionID(submissionID)), nil
}

package workflow

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

// workflowOrchestrator owns one workflow session: the draft being edited
// and, through the report machine, the current submission and its report.
type workflowOrchestrator struct {
	mu    sync.Mutex
	draft *models.AssessmentDraft

	SubmissionBuilder contracts.SubmissionBuilder
	SubmissionClient  contracts.SubmissionClient
	ReportMachine     contracts.ReportMachine
	Observers         *ReportObservers
	Log               *zap.Logger
}

func NewWorkflowOrchestrator(
	submissionBuilder contracts.SubmissionBuilder,
	submissionClient contracts.SubmissionClient,
	reportMachine contracts.ReportMachine,
	observers *ReportObservers,
	logger *zap.Logger,
) contracts.WorkflowOrchestrator {
	if observers == nil {
		observers = NewReportObservers(logger)
	}
	return &workflowOrchestrator{
		draft:             models.NewAssessmentDraft(),
		SubmissionBuilder: submissionBuilder,
		SubmissionClient:  submissionClient,
		ReportMachine:     reportMachine,
		Observers:         observers,
		Log:               logger,
	}
}

// Submit builds draft, sends it and seeds the report machine with the
// returned submission id. An incomplete draft fails before any network
// call.
func (w *workflowOrchestrator) Submit(ctx context.Context, draft *models.AssessmentDraft) (models.ReportState, error) {
	requestID := utils.GetRequestID(ctx)
	w.Log.Info("workflowOrchestrator.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := w.SubmissionBuilder.Build(draft)
	if err != nil {
		w.Log.Error("workflowOrchestrator.Submit error building payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return w.ReportMachine.State(), exceptions.AsCustomError(err)
	}

	result, err := w.SubmissionClient.Submit(ctx, payload)
	if err != nil {
		w.Log.Error("workflowOrchestrator.Submit error submitting payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return w.ReportMachine.State(), exceptions.AsCustomError(err)
	}

	state := w.ReportMachine.Begin(ctx, result.SubmissionID)
	w.Observers.SubmissionAccepted(ctx, draft.Clone(), state)

	w.Log.Info("workflowOrchestrator.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, result.SubmissionID.String()),
		zap.String(constvars.LoggingScaleTypeKey, draft.ScaleType),
	)
	return state, nil
}

// SubmitDraft submits a snapshot of the session draft.
func (w *workflowOrchestrator) SubmitDraft(ctx context.Context) (models.ReportState, error) {
	return w.Submit(ctx, w.Draft())
}

func (w *workflowOrchestrator) PollStatus(ctx context.Context) (models.ReportState, error) {
	state, err := w.ReportMachine.PollOnce(ctx)
	return state, exceptions.AsCustomError(err)
}

func (w *workflowOrchestrator) FetchReport(ctx context.Context) (models.ReportState, error) {
	state, err := w.ReportMachine.FetchReport(ctx)
	return state, exceptions.AsCustomError(err)
}

// Reset clears every draft field together with the submission and its
// report.
func (w *workflowOrchestrator) Reset(ctx context.Context) models.ReportState {
	w.mu.Lock()
	w.draft.Reset()
	w.mu.Unlock()

	state := w.ReportMachine.Reset(ctx)
	w.Log.Info("workflowOrchestrator.Reset succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
	)
	return state
}

// Resume picks up a submission accepted by an earlier session. The report
// machine restarts at pending and the next poll reports the real status. A
// zero id leaves the state untouched.
func (w *workflowOrchestrator) Resume(ctx context.Context, submissionID models.SubmissionID) models.ReportState {
	if submissionID.IsZero() {
		return w.ReportMachine.State()
	}

	state := w.ReportMachine.Begin(ctx, submissionID)
	w.Log.Info("workflowOrchestrator.Resume succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
	)
	return state
}

func (w *workflowOrchestrator) State() models.ReportState {
	return w.ReportMachine.State()
}

// Draft returns a copy of the session draft.
func (w *workflowOrchestrator) Draft() *models.AssessmentDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft.Clone()
}

// UpdateDraft applies update to a copy of the draft and keeps the copy only
// when update succeeds.
func (w *workflowOrchestrator) UpdateDraft(ctx context.Context, update func(draft *models.AssessmentDraft) error) (*models.AssessmentDraft, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	next := w.draft.Clone()
	if err := update(next); err != nil {
		w.Log.Warn("workflowOrchestrator.UpdateDraft rejected update",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return w.draft.Clone(), exceptions.AsCustomError(err)
	}
	w.draft = next
	return next.Clone(), nil
}

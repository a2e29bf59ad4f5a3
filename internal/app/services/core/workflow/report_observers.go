package workflow

import (
	"context"
	"fmt"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// ReportObservers fans workflow events out to every registered observer.
// Observer failures are logged and never reach the workflow.
type ReportObservers struct {
	observers []contracts.ReportObserver
	Log       *zap.Logger
}

func NewReportObservers(logger *zap.Logger, observers ...contracts.ReportObserver) *ReportObservers {
	return &ReportObservers{
		observers: observers,
		Log:       logger,
	}
}

// Add registers observer. It is not safe to call once the workflow is in use.
func (o *ReportObservers) Add(observer contracts.ReportObserver) {
	o.observers = append(o.observers, observer)
}

func (o *ReportObservers) Len() int {
	return len(o.observers)
}

func (o *ReportObservers) SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) {
	for _, observer := range o.observers {
		if err := observer.SubmissionAccepted(ctx, draft, state); err != nil {
			o.logFailure(ctx, "SubmissionAccepted", observer, state, err)
		}
	}
}

// ReportStateChanged has the shape of reports.TransitionListener.
func (o *ReportObservers) ReportStateChanged(ctx context.Context, previous, current models.ReportState) {
	for _, observer := range o.observers {
		if err := observer.ReportStateChanged(ctx, previous, current); err != nil {
			o.logFailure(ctx, "ReportStateChanged", observer, current, err)
		}
	}
}

func (o *ReportObservers) logFailure(ctx context.Context, event string, observer contracts.ReportObserver, state models.ReportState, err error) {
	o.Log.Warn("ReportObservers error notifying observer",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingOperationKey, event),
		zap.String(constvars.LoggingObserverKey, fmt.Sprintf("%T", observer)),
		zap.String(constvars.LoggingSubmissionIDKey, state.SubmissionID.String()),
		zap.Error(err),
	)
}

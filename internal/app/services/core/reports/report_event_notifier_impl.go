package reports

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
)

// reportEventNotifier publishes a ReportStatusEvent for every status change
// of a submission, including its acceptance.
type reportEventNotifier struct {
	Publisher contracts.EventPublisher
	QueueName string
}

func NewReportEventNotifier(publisher contracts.EventPublisher, queueName string) contracts.ReportObserver {
	return &reportEventNotifier{
		Publisher: publisher,
		QueueName: queueName,
	}
}

func (n *reportEventNotifier) SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) error {
	return n.publish(ctx, models.ReportStatusUninitialized, state)
}

func (n *reportEventNotifier) ReportStateChanged(ctx context.Context, previous, current models.ReportState) error {
	if current.SubmissionID.IsZero() || current.SubmissionID != previous.SubmissionID || current.Status == previous.Status {
		return nil
	}
	return n.publish(ctx, previous.Status, current)
}

func (n *reportEventNotifier) publish(ctx context.Context, previous models.ReportStatus, current models.ReportState) error {
	return n.Publisher.Publish(ctx, n.QueueName, models.ReportStatusEvent{
		SubmissionID:   current.SubmissionID,
		Status:         current.Status,
		PreviousStatus: previous,
		Message:        current.Message,
		OccurredAt:     current.UpdatedAt,
	})
}

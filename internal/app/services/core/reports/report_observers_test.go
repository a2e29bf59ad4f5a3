package reports

import (
	"context"
	"errors"
	"psychology-assessment-client/internal/app/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) PutObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, queueName string, payload interface{}) error {
	return m.Called(ctx, queueName, payload).Error(0)
}

func TestReportArchiver_ArchivesCompletedReport(t *testing.T) {
	storage := new(mockStorage)
	archiver := NewReportArchiver(storage, "assessment-reports", zap.NewNop())

	raw := []byte(`{"report_text":"ok"}`)
	storage.On("PutObject", mock.Anything, "assessment-reports",
		mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, "reports/S1/") && strings.HasSuffix(name, ".json")
		}),
		"application/json", raw,
	).Return("reports/S1/x.json", nil).Once()

	previous := models.ReportState{SubmissionID: "S1", Status: models.ReportStatusComplete, AwaitingReport: true}
	current := models.ReportState{SubmissionID: "S1", Status: models.ReportStatusComplete, Report: &models.Report{Raw: raw, Text: "ok"}}

	require.NoError(t, archiver.ReportStateChanged(context.Background(), previous, current))
	storage.AssertExpectations(t)
}

func TestReportArchiver_IgnoresOtherTransitions(t *testing.T) {
	storage := new(mockStorage)
	archiver := NewReportArchiver(storage, "assessment-reports", zap.NewNop())
	report := &models.Report{Text: "ok"}

	require.NoError(t, archiver.ReportStateChanged(context.Background(),
		models.ReportState{Status: models.ReportStatusPending},
		models.ReportState{Status: models.ReportStatusProcessing},
	))
	require.NoError(t, archiver.ReportStateChanged(context.Background(),
		models.ReportState{Status: models.ReportStatusComplete, Report: report},
		models.ReportState{Status: models.ReportStatusComplete, Report: report},
	))
	require.NoError(t, archiver.SubmissionAccepted(context.Background(), nil, models.ReportState{}))

	storage.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReportArchiver_StorageError(t *testing.T) {
	storage := new(mockStorage)
	archiver := NewReportArchiver(storage, "assessment-reports", zap.NewNop())
	storage.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket gone"))

	err := archiver.ReportStateChanged(context.Background(),
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusProcessing},
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusComplete, Report: &models.Report{Text: "ok"}},
	)

	assert.Error(t, err)
}

func TestReportEventNotifier(t *testing.T) {
	publisher := new(mockPublisher)
	notifier := NewReportEventNotifier(publisher, "assessment.report.status")

	publisher.On("Publish", mock.Anything, "assessment.report.status", models.ReportStatusEvent{
		SubmissionID:   "S1",
		Status:         models.ReportStatusPending,
		PreviousStatus: models.ReportStatusUninitialized,
	}).Return(nil).Once()
	publisher.On("Publish", mock.Anything, "assessment.report.status", models.ReportStatusEvent{
		SubmissionID:   "S1",
		Status:         models.ReportStatusFailed,
		PreviousStatus: models.ReportStatusProcessing,
		Message:        "failed",
	}).Return(nil).Once()

	ctx := context.Background()
	require.NoError(t, notifier.SubmissionAccepted(ctx, nil, models.ReportState{SubmissionID: "S1", Status: models.ReportStatusPending}))
	require.NoError(t, notifier.ReportStateChanged(ctx,
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusProcessing},
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusFailed, Message: "failed"},
	))
	// same status and submission switches are not published
	require.NoError(t, notifier.ReportStateChanged(ctx,
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusComplete, AwaitingReport: true},
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusComplete},
	))
	require.NoError(t, notifier.ReportStateChanged(ctx,
		models.ReportState{SubmissionID: "S1", Status: models.ReportStatusFailed},
		models.ReportState{SubmissionID: "S2", Status: models.ReportStatusPending},
	))

	publisher.AssertExpectations(t)
	assert.Len(t, publisher.Calls, 2)
}

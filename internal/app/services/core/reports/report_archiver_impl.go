package reports

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// reportArchiver stores the artifact of every completed report as a JSON
// object.
type reportArchiver struct {
	Storage    contracts.Storage
	BucketName string
	Log        *zap.Logger
}

func NewReportArchiver(storage contracts.Storage, bucketName string, logger *zap.Logger) contracts.ReportObserver {
	return &reportArchiver{
		Storage:    storage,
		BucketName: bucketName,
		Log:        logger,
	}
}

func (a *reportArchiver) SubmissionAccepted(ctx context.Context, draft *models.AssessmentDraft, state models.ReportState) error {
	return nil
}

func (a *reportArchiver) ReportStateChanged(ctx context.Context, previous, current models.ReportState) error {
	if current.Status != models.ReportStatusComplete || current.Report == nil || previous.Report != nil {
		return nil
	}
	requestID := utils.GetRequestID(ctx)

	objectName := utils.GenerateReportObjectName(current.SubmissionID.String())
	data := []byte(current.Report.Raw)
	if len(data) == 0 {
		data = []byte("null")
	}

	objectName, err := a.Storage.PutObject(ctx, a.BucketName, objectName, constvars.MIMEApplicationJSON, data)
	if err != nil {
		a.Log.Error("reportArchiver.ReportStateChanged error archiving report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, current.SubmissionID.String()),
			zap.String(constvars.LoggingBucketNameKey, a.BucketName),
			zap.Error(err),
		)
		return err
	}

	a.Log.Info("reportArchiver.ReportStateChanged succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, current.SubmissionID.String()),
		zap.String(constvars.LoggingBucketNameKey, a.BucketName),
		zap.String(constvars.LoggingObjectNameKey, objectName),
	)
	return nil
}

package reports

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

type reportClient struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewReportClient(transport contracts.Transport, logger *zap.Logger) contracts.ReportClient {
	return &reportClient{
		Transport: transport,
		Log:       logger,
	}
}

func (c *reportClient) FetchStatus(ctx context.Context, submissionID models.SubmissionID) (models.ReportStatus, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	path := fmt.Sprintf(constvars.ResourceReportStatus, url.PathEscape(submissionID.String()))

	var body struct {
		Status *string `json:"status"`
	}
	err := c.Transport.Get(ctx, path, &body)
	if err != nil {
		return "", err
	}

	if body.Status == nil {
		c.Log.Error("reportClient.FetchStatus response has no status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
		)
		return "", exceptions.ErrMissingResponseField(nil, path, "status")
	}

	status := models.ReportStatus(*body.Status)
	if !status.IsValid() {
		c.Log.Error("reportClient.FetchStatus unknown status",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
			zap.String(constvars.LoggingReportStatusKey, *body.Status),
		)
		return "", exceptions.ErrUnknownReportStatus(nil, *body.Status)
	}

	return status, nil
}

// FetchReport returns either the artifact under "report" or the "message"
// the backend sends while no artifact is available.
func (c *reportClient) FetchReport(ctx context.Context, submissionID models.SubmissionID) (*models.ReportFetchResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	path := fmt.Sprintf(constvars.ResourceReport, url.PathEscape(submissionID.String()))

	var raw json.RawMessage
	err := c.Transport.Get(ctx, path, &raw)
	if err != nil {
		return nil, err
	}

	report := gjson.GetBytes(raw, "report")
	if report.Exists() && report.Type != gjson.Null {
		text := report.Get(constvars.ReportTextPath).String()
		if report.Type == gjson.String {
			text = report.String()
		}
		c.Log.Info("reportClient.FetchReport received report",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
		)
		return &models.ReportFetchResult{
			Report: &models.Report{
				Raw:  json.RawMessage(report.Raw),
				Text: text,
			},
		}, nil
	}

	message := gjson.GetBytes(raw, "message")
	if message.Type == gjson.String {
		c.Log.Info("reportClient.FetchReport received message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
			zap.String(constvars.LoggingResponseKey, message.String()),
		)
		return &models.ReportFetchResult{Message: message.String()}, nil
	}

	c.Log.Error("reportClient.FetchReport response has neither report nor message",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, submissionID.String()),
	)
	return nil, exceptions.ErrMissingResponseField(errors.New("neither report nor message present"), path, "report")
}

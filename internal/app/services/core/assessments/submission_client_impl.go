package assessments

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type submissionClient struct {
	Builder   contracts.SubmissionBuilder
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewSubmissionClient(builder contracts.SubmissionBuilder, transport contracts.Transport, logger *zap.Logger) contracts.SubmissionClient {
	return &submissionClient{
		Builder:   builder,
		Transport: transport,
		Log:       logger,
	}
}

func (c *submissionClient) Submit(ctx context.Context, payload *models.SubmissionPayload) (*models.SubmissionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("submissionClient.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFieldCountKey, len(payload.Fields)),
		zap.Bool(constvars.LoggingHasAttachmentKey, payload.Attachment != nil),
	)

	body, contentType, err := c.Builder.Encode(payload)
	if err != nil {
		c.Log.Error("submissionClient.Submit error encoding payload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	result := new(models.SubmissionResult)
	err = c.Transport.Do(ctx, constvars.MethodPost, constvars.ResourceAssessmentSubmit, body, contentType, result)
	if err != nil {
		c.Log.Error("submissionClient.Submit error sending submission",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.SubmissionID.IsZero() {
		c.Log.Error("submissionClient.Submit response has no submission id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMissingResponseField(nil, constvars.ResourceAssessmentSubmit, "submission_id")
	}

	c.Log.Info("submissionClient.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, result.SubmissionID.String()),
	)
	return result, nil
}

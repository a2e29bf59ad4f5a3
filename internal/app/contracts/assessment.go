package contracts

import (
	"context"
	"io"
	"psychology-assessment-client/internal/app/models"
)

type SubmissionBuilder interface {
	// Build fails with an incomplete_draft error before any I/O when the
	// draft has no scale selected.
	Build(draft *models.AssessmentDraft) (*models.SubmissionPayload, error)
	Encode(payload *models.SubmissionPayload) (body io.Reader, contentType string, err error)
}

type SubmissionClient interface {
	Submit(ctx context.Context, payload *models.SubmissionPayload) (*models.SubmissionResult, error)
}

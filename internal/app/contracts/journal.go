package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
)

type JournalRepository interface {
	Insert(ctx context.Context, record *models.SubmissionRecord) error
	UpdateStatus(ctx context.Context, submissionID models.SubmissionID, status models.ReportStatus, message string) error
	FindRecent(ctx context.Context, limit int64) ([]models.SubmissionRecord, error)
}

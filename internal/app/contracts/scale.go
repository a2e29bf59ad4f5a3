package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
)

type ScaleUsecase interface {
	ListScales(ctx context.Context) ([]models.Scale, error)
	ListQuestions(ctx context.Context, scaleCode string) ([]models.ScaleQuestion, error)
}

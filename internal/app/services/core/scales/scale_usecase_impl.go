package scales

import (
	"context"
	"fmt"
	"net/url"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type scaleUsecase struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewScaleUsecase(transport contracts.Transport, logger *zap.Logger) contracts.ScaleUsecase {
	return &scaleUsecase{
		Transport: transport,
		Log:       logger,
	}
}

func (uc *scaleUsecase) ListScales(ctx context.Context) ([]models.Scale, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scaleUsecase.ListScales called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var body struct {
		Scales *[]models.Scale `json:"scales"`
	}
	err := uc.Transport.Get(ctx, constvars.ResourceScales, &body)
	if err != nil {
		uc.Log.Error("scaleUsecase.ListScales error fetching scales",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if body.Scales == nil {
		return nil, exceptions.ErrMissingResponseField(nil, constvars.ResourceScales, "scales")
	}

	uc.Log.Info("scaleUsecase.ListScales succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(*body.Scales)),
	)
	return *body.Scales, nil
}

func (uc *scaleUsecase) ListQuestions(ctx context.Context, scaleCode string) ([]models.ScaleQuestion, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("scaleUsecase.ListQuestions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScaleTypeKey, scaleCode),
	)

	path := fmt.Sprintf(constvars.ResourceScaleQuestions, url.PathEscape(scaleCode))
	var body struct {
		Questions *[]models.ScaleQuestion `json:"questions"`
	}
	err := uc.Transport.Get(ctx, path, &body)
	if err != nil {
		uc.Log.Error("scaleUsecase.ListQuestions error fetching questions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScaleTypeKey, scaleCode),
			zap.Error(err),
		)
		return nil, err
	}
	if body.Questions == nil {
		return nil, exceptions.ErrMissingResponseField(nil, path, "questions")
	}

	uc.Log.Info("scaleUsecase.ListQuestions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingScaleTypeKey, scaleCode),
		zap.Int(constvars.LoggingResponseCountKey, len(*body.Questions)),
	)
	return *body.Questions, nil
}

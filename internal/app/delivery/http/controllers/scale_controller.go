package controllers

import (
	"net/http"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/dto/responses"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScaleController struct {
	Log          *zap.Logger
	ScaleUsecase contracts.ScaleUsecase
	Workflow     contracts.WorkflowOrchestrator
}

func NewScaleController(logger *zap.Logger, scaleUsecase contracts.ScaleUsecase, workflow contracts.WorkflowOrchestrator) *ScaleController {
	return &ScaleController{
		Log:          logger,
		ScaleUsecase: scaleUsecase,
		Workflow:     workflow,
	}
}

func (ctrl *ScaleController) ListScales(w http.ResponseWriter, r *http.Request) {
	scales, err := ctrl.ScaleUsecase.ListScales(r.Context())
	if err != nil {
		ctrl.Log.Error("ScaleController.ListScales error in ScaleUsecase.ListScales",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScalesSuccess, scales)
}

// ListQuestions returns the questions of a scale and selects it in the
// draft, as opening a questionnaire does.
func (ctrl *ScaleController) ListQuestions(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	scaleCode := utils.SanitizeScaleType(chi.URLParam(r, constvars.URLParamScaleCode))
	if scaleCode == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamScaleCode))
		return
	}

	questions, err := ctrl.ScaleUsecase.ListQuestions(r.Context(), scaleCode)
	if err != nil {
		ctrl.Log.Error("ScaleController.ListQuestions error in ScaleUsecase.ListQuestions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingScaleTypeKey, scaleCode),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	_, err = ctrl.Workflow.UpdateDraft(r.Context(), func(draft *models.AssessmentDraft) error {
		draft.ScaleType = scaleCode
		return nil
	})
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScaleQuestionsSuccess, &responses.ScaleQuestions{
		ScaleCode: scaleCode,
		Questions: questions,
	})
}

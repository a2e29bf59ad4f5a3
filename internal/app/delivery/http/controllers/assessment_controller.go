package controllers

import (
	"net/http"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log                    *zap.Logger
	Workflow               contracts.WorkflowOrchestrator
	MaxImageSizeInMegabyte int
}

func NewAssessmentController(logger *zap.Logger, workflow contracts.WorkflowOrchestrator, maxImageSizeInMegabyte int) *AssessmentController {
	return &AssessmentController{
		Log:                    logger,
		Workflow:               workflow,
		MaxImageSizeInMegabyte: maxImageSizeInMegabyte,
	}
}

func (ctrl *AssessmentController) GetDraft(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDraftSuccess, toDraftResponse(ctrl.Workflow.Draft()))
}

func (ctrl *AssessmentController) UpdateBasicInfo(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateBasicInfo)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeBasicInfo(&request.BasicInfo)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.updateDraft(w, r, "UpdateBasicInfo", func(draft *models.AssessmentDraft) error {
		draft.BasicInfo.Merge(request.BasicInfo)
		return nil
	})
}

func (ctrl *AssessmentController) SelectScale(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SelectScale)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request.ScaleType = utils.SanitizeScaleType(request.ScaleType)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.updateDraft(w, r, "SelectScale", func(draft *models.AssessmentDraft) error {
		draft.ScaleType = request.ScaleType
		return nil
	})
}

func (ctrl *AssessmentController) SetAnswer(w http.ResponseWriter, r *http.Request) {
	ordinal, err := utils.ParseOrdinal(chi.URLParam(r, constvars.URLParamOrdinal))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.URLParamOrdinal))
		return
	}

	request := new(requests.SetAnswer)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	request.Ordinal = ordinal

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.updateDraft(w, r, "SetAnswer", func(draft *models.AssessmentDraft) error {
		draft.SetAnswer(request.Ordinal, request.Answer)
		return nil
	})
}

// SetAttachment replaces the draft image with the multipart "image" part.
func (ctrl *AssessmentController) SetAttachment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	fileName, data, err := utils.ReadMultipartImage(r, ctrl.MaxImageSizeInMegabyte)
	if err != nil {
		ctrl.Log.Error("AssessmentController.SetAttachment error reading image",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := utils.ValidateImageSize(data, ctrl.MaxImageSizeInMegabyte); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	contentType, err := utils.DetectImageType(data)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	request := &requests.SetAttachment{
		FileName:    fileName,
		ContentType: contentType,
		Data:        data,
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.updateDraft(w, r, "SetAttachment", func(draft *models.AssessmentDraft) error {
		draft.SetAttachment(&models.Attachment{
			FileName:    request.FileName,
			ContentType: request.ContentType,
			Data:        request.Data,
		})
		return nil
	})
}

func (ctrl *AssessmentController) DeleteAttachment(w http.ResponseWriter, r *http.Request) {
	ctrl.updateDraft(w, r, "DeleteAttachment", func(draft *models.AssessmentDraft) error {
		draft.SetAttachment(nil)
		return nil
	})
}

func (ctrl *AssessmentController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	state, err := ctrl.Workflow.SubmitDraft(r.Context())
	if err != nil {
		ctrl.Log.Error("AssessmentController.Submit error in Workflow.SubmitDraft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSubmissionIDKey, state.SubmissionID.String()),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.SubmitAssessmentSuccess, state)
}

func (ctrl *AssessmentController) Status(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.Workflow.PollStatus(r.Context())
	if err != nil {
		ctrl.Log.Error("AssessmentController.Status error in Workflow.PollStatus",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportStatusSuccess, state)
}

func (ctrl *AssessmentController) Report(w http.ResponseWriter, r *http.Request) {
	state, err := ctrl.Workflow.FetchReport(r.Context())
	if err != nil {
		ctrl.Log.Error("AssessmentController.Report error in Workflow.FetchReport",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReportSuccess, state)
}

func (ctrl *AssessmentController) Reset(w http.ResponseWriter, r *http.Request) {
	state := ctrl.Workflow.Reset(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetAssessmentSuccess, state)
}

func (ctrl *AssessmentController) updateDraft(w http.ResponseWriter, r *http.Request, operation string, update func(draft *models.AssessmentDraft) error) {
	draft, err := ctrl.Workflow.UpdateDraft(r.Context(), update)
	if err != nil {
		ctrl.Log.Error("AssessmentController."+operation+" error in Workflow.UpdateDraft",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDraftSuccess, toDraftResponse(draft))
}

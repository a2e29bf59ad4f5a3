package controllers

import (
	"net/http"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"psychology-assessment-client/internal/pkg/dto/responses"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"
	"strconv"

	"go.uber.org/zap"
)

type SubmissionController struct {
	Log               *zap.Logger
	JournalRepository contracts.JournalRepository
}

// NewSubmissionController serves the submission journal. journalRepository
// is nil when MongoDB is not configured.
func NewSubmissionController(logger *zap.Logger, journalRepository contracts.JournalRepository) *SubmissionController {
	return &SubmissionController{
		Log:               logger,
		JournalRepository: journalRepository,
	}
}

func (ctrl *SubmissionController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if ctrl.JournalRepository == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrJournalNotConfigured(nil))
		return
	}

	request := &requests.ListSubmissions{Limit: constvars.DefaultSubmissionsLimit}
	if raw := r.URL.Query().Get(constvars.QueryParamLimit); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(err, constvars.QueryParamLimit))
			return
		}
		request.Limit = limit
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	records, err := ctrl.JournalRepository.FindRecent(r.Context(), request.Limit)
	if err != nil {
		ctrl.Log.Error("SubmissionController.ListSubmissions error in JournalRepository.FindRecent",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSubmissionsSuccess, &responses.Submissions{Submissions: records})
}

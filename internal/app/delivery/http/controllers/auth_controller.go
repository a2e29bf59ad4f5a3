package controllers

import (
	"net/http"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"psychology-assessment-client/internal/pkg/dto/responses"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AuthController.Login requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	request := new(requests.Login)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		ctrl.Log.Error("AuthController.Login error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	identity, err := ctrl.AuthUsecase.Login(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error in AuthUsecase.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, toIdentityResponse(identity))
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	request := new(requests.Register)
	if err := utils.DecodeJSONBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.SanitizeRegisterRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	user, err := ctrl.AuthUsecase.Register(r.Context(), request)
	if err != nil {
		ctrl.Log.Error("AuthController.Register error in AuthUsecase.Register",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, user)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.AuthUsecase.Logout(r.Context())
	if err != nil {
		ctrl.Log.Error("AuthController.Logout error in AuthUsecase.Logout",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

// Me reports the current identity. A logged-out session is a normal answer
// here, not an error.
func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	identity, err := ctrl.AuthUsecase.CurrentUser(r.Context())
	if err != nil {
		if exceptions.IsCredentialRejected(err) {
			utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, &responses.Identity{})
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, toIdentityResponse(identity))
}

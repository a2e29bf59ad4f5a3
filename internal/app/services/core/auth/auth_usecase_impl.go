package auth

import (
	"context"
	"net/url"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/dto/requests"
	"psychology-assessment-client/internal/pkg/exceptions"
	"psychology-assessment-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	Transport       contracts.Transport
	CredentialStore contracts.CredentialStore
	Workflow        contracts.WorkflowOrchestrator
	Log             *zap.Logger
}

func NewAuthUsecase(
	transport contracts.Transport,
	credentialStore contracts.CredentialStore,
	workflow contracts.WorkflowOrchestrator,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		Transport:       transport,
		CredentialStore: credentialStore,
		Workflow:        workflow,
		Log:             logger,
	}
}

// Login exchanges the username and password for a bearer credential and
// loads the profile it belongs to. Any failure leaves the session logged
// out.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*models.Identity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	form := url.Values{}
	form.Set("username", request.Username)
	form.Set("password", request.Password)

	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	err := uc.Transport.PostForm(ctx, constvars.ResourceAuthToken, form, &token)
	if err != nil {
		uc.Log.Error("authUsecase.Login error requesting token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.clearSession(ctx)
		return nil, err
	}
	if token.AccessToken == "" {
		uc.clearSession(ctx)
		return nil, exceptions.ErrMissingResponseField(nil, constvars.ResourceAuthToken, "access_token")
	}

	err = uc.CredentialStore.SetCredential(ctx, token.AccessToken)
	if err != nil {
		uc.Log.Error("authUsecase.Login error storing credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	identity, err := uc.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)
	return identity, nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	user := new(models.User)
	err := uc.Transport.PostJSON(ctx, constvars.ResourceAuthRegister, request, user)
	if err != nil {
		uc.Log.Error("authUsecase.Register error registering user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)
	return user, nil
}

// CurrentUser refreshes the profile of the held credential. Without a
// credential it fails as unauthorized without calling the backend.
func (uc *authUsecase) CurrentUser(ctx context.Context) (*models.Identity, error) {
	requestID := utils.GetRequestID(ctx)

	if !uc.CredentialStore.IsAuthenticated() {
		return nil, exceptions.ErrUnauthorized(nil, constvars.ResourceAuthCurrentUser)
	}

	user := new(models.User)
	err := uc.Transport.Get(ctx, constvars.ResourceAuthCurrentUser, user)
	if err != nil {
		uc.Log.Error("authUsecase.CurrentUser error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		uc.clearSession(ctx)
		return nil, err
	}

	uc.CredentialStore.SetUser(user)
	identity := uc.CredentialStore.Identity()
	return &identity, nil
}

// Logout drops the credential and every piece of workflow state.
func (uc *authUsecase) Logout(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	err := uc.CredentialStore.ClearCredential(ctx)
	if uc.Workflow != nil {
		uc.Workflow.Reset(ctx)
	}
	if err != nil {
		uc.Log.Error("authUsecase.Logout error clearing credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *authUsecase) clearSession(ctx context.Context) {
	if err := uc.CredentialStore.ClearCredential(ctx); err != nil {
		uc.Log.Warn("authUsecase error clearing credential",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
	}
}

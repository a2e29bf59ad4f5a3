package session

import (
	"context"
	"psychology-assessment-client/internal/app/contracts"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/constvars"
	"psychology-assessment-client/internal/pkg/utils"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type credentialStore struct {
	mu          sync.RWMutex
	credential  string
	subject     string
	user        *models.User
	Persistence contracts.CredentialPersistence
	Log         *zap.Logger
}

// NewCredentialStore returns a store persisting through persistence. Call
// Restore to pick up a credential saved by an earlier process.
func NewCredentialStore(persistence contracts.CredentialPersistence, logger *zap.Logger) contracts.CredentialStore {
	return &credentialStore{
		Persistence: persistence,
		Log:         logger,
	}
}

func (s *credentialStore) CurrentCredential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// IsAuthenticated only checks presence. Expiry is discovered when the
// backend rejects the credential.
func (s *credentialStore) IsAuthenticated() bool {
	return s.CurrentCredential() != ""
}

func (s *credentialStore) SetCredential(ctx context.Context, credential string) error {
	requestID := utils.GetRequestID(ctx)

	err := s.Persistence.Save(ctx, credential)
	if err != nil {
		s.Log.Error("credentialStore.SetCredential error persisting credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	s.credential = credential
	s.subject = subjectOf(credential)
	s.user = nil
	s.mu.Unlock()

	s.Log.Info("credentialStore.SetCredential succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

// ClearCredential drops the in-memory credential and identity first so a
// persistence failure never leaves the session authenticated.
func (s *credentialStore) ClearCredential(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	s.mu.Lock()
	hadCredential := s.credential != ""
	s.credential = ""
	s.subject = ""
	s.user = nil
	s.mu.Unlock()

	err := s.Persistence.Delete(ctx)
	if err != nil {
		s.Log.Error("credentialStore.ClearCredential error deleting persisted credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	if hadCredential {
		s.Log.Info("credentialStore.ClearCredential succeeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return nil
}

func (s *credentialStore) Restore(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)

	credential, err := s.Persistence.Load(ctx)
	if err != nil {
		s.Log.Error("credentialStore.Restore error loading credential",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.mu.Lock()
	s.credential = credential
	s.subject = subjectOf(credential)
	s.user = nil
	s.mu.Unlock()

	s.Log.Info("credentialStore.Restore succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("authenticated", credential != ""),
	)
	return nil
}

func (s *credentialStore) Identity() models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	identity := models.Identity{Subject: s.subject}
	if s.user != nil {
		user := *s.user
		identity.User = &user
	}
	return identity
}

// SetUser records the profile for the current credential. It is ignored
// when no credential is held.
func (s *credentialStore) SetUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.credential == "" || user == nil {
		s.user = nil
		return
	}
	copied := *user
	s.user = &copied
	if s.subject == "" {
		s.subject = copied.Username
	}
}

// subjectOf reads the sub claim without verifying the signature; the
// client never holds the signing key and only uses it for display.
func subjectOf(credential string) string {
	if credential == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(credential, claims)
	if err != nil {
		return ""
	}
	subject, _ := claims["sub"].(string)
	return subject
}

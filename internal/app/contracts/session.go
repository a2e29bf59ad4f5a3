package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
)

// CredentialSource is the part of the session the transport depends on.
type CredentialSource interface {
	CurrentCredential() string
	ClearCredential(ctx context.Context) error
}

// CredentialStore holds the bearer credential and the current identity.
// Presence of the credential is the only authentication check performed
// locally.
type CredentialStore interface {
	CredentialSource
	SetCredential(ctx context.Context, credential string) error
	IsAuthenticated() bool
	Restore(ctx context.Context) error
	Identity() models.Identity
	SetUser(user *models.User)
}

// CredentialPersistence keeps one credential value across restarts.
// Load returns "" when nothing is stored.
type CredentialPersistence interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, credential string) error
	Delete(ctx context.Context) error
}

// SubmissionPersistence keeps the id of the last accepted submission in the
// same store as the credential. Load returns "" when there is none.
type SubmissionPersistence = CredentialPersistence

package contracts

import (
	"context"
	"psychology-assessment-client/internal/app/models"
	"psychology-assessment-client/internal/pkg/dto/requests"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*models.Identity, error)
	Register(ctx context.Context, request *requests.Register) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.Identity, error)
	Logout(ctx context.Context) error
}

package services

import (
	"context"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// UserSvcFacade manages caller identities for the auth layer.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	DeactivateUser(ctx context.Context, id string) error
}

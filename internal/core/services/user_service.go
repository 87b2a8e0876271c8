package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
	"github.com/orbisedu/academy_mgmt_app/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// userService manages caller identities for the auth layer.
type userService struct {
	users    portsrepo.RecordRepository[domain.User]
	branches portsrepo.RecordRepository[domain.Branch]
}

// NewUserService creates a new UserService.
func NewUserService(users portsrepo.RecordRepository[domain.User], branches portsrepo.RecordRepository[domain.Branch]) portssvc.UserSvcFacade {
	return &userService{users: users, branches: branches}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.users.FindBy(ctx, func(u domain.User) bool { return u.Email == email })
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, fmt.Errorf("%w: email %s already registered", apperrors.ErrConflict, email)
	}

	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleStaff
	}
	if req.BranchID != "" {
		if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
			return nil, err
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		BranchID:     req.BranchID,
		IsActive:     true,
	})
	if err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.ID), slog.String("role", string(user.Role)))
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	matches, err := s.users.FindBy(ctx, func(u domain.User) bool { return u.Email == email && u.IsActive })
	if err != nil {
		return nil, err
	}
	// A missing user and a wrong password are indistinguishable to the caller.
	if len(matches) == 0 || !utils.CheckPasswordHash(password, matches[0].PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &matches[0], nil
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.FindBy(ctx, func(u domain.User) bool { return u.IsActive })
}

func (s *userService) DeactivateUser(ctx context.Context, id string) error {
	_, err := s.users.Update(ctx, id, func(u *domain.User) {
		u.IsActive = false
	})
	return err
}

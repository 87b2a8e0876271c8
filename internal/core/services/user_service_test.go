package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	service portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.repos, _ = newTestProvider(s.T())
	s.service = services.NewUserService(s.repos.Users, s.repos.Branches)
}

func (s *UserServiceTestSuite) TestRegister_HashesPasswordAndDefaultsRole() {
	user, err := s.service.Register(context.Background(), dto.RegisterUserRequest{
		Name:     "Admin",
		Email:    "Admin@Example.com",
		Password: "correct-horse",
	})
	s.Require().NoError(err)
	s.Equal(domain.RoleStaff, user.Role)
	s.Equal("admin@example.com", user.Email)
	s.NotEqual("correct-horse", user.PasswordHash)
	s.NotEmpty(user.PasswordHash)
}

func (s *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	_, err := s.service.Register(ctx, dto.RegisterUserRequest{
		Name: "One", Email: "same@example.com", Password: "password-1",
	})
	s.Require().NoError(err)

	_, err = s.service.Register(ctx, dto.RegisterUserRequest{
		Name: "Two", Email: "SAME@example.com", Password: "password-2",
	})
	s.ErrorIs(err, apperrors.ErrConflict)
}

func (s *UserServiceTestSuite) TestAuthenticate() {
	ctx := context.Background()
	_, err := s.service.Register(ctx, dto.RegisterUserRequest{
		Name: "Admin", Email: "admin@example.com", Password: "correct-horse",
	})
	s.Require().NoError(err)

	user, err := s.service.Authenticate(ctx, "admin@example.com", "correct-horse")
	s.Require().NoError(err)
	s.Equal("admin@example.com", user.Email)

	_, err = s.service.Authenticate(ctx, "admin@example.com", "wrong")
	s.ErrorIs(err, services.ErrInvalidCredentials)
	_, err = s.service.Authenticate(ctx, "missing@example.com", "correct-horse")
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func (s *UserServiceTestSuite) TestDeactivatedUserCannotAuthenticate() {
	ctx := context.Background()
	user, err := s.service.Register(ctx, dto.RegisterUserRequest{
		Name: "Temp", Email: "temp@example.com", Password: "password-1",
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeactivateUser(ctx, user.ID))
	_, err = s.service.Authenticate(ctx, "temp@example.com", "password-1")
	s.ErrorIs(err, services.ErrInvalidCredentials)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

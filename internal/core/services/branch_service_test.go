package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type BranchServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	service portssvc.BranchSvcFacade
}

func (s *BranchServiceTestSuite) SetupTest() {
	s.repos, _ = newTestProvider(s.T())
	s.service = services.NewBranchService(s.repos.Branches)
}

func (s *BranchServiceTestSuite) TestCreateAndGet() {
	ctx := context.Background()
	branch, err := s.service.CreateBranch(ctx, dto.CreateBranchRequest{Name: "Downtown", Address: "1 Main St"})
	s.Require().NoError(err)
	s.True(branch.IsActive)

	found, err := s.service.GetBranchByID(ctx, branch.ID)
	s.Require().NoError(err)
	s.Equal("Downtown", found.Name)
}

// Deactivation is a soft delete: the record stays fetchable, drops out of the
// default listing, and repeating the call is a harmless no-op.
func (s *BranchServiceTestSuite) TestDeactivateIsIdempotent() {
	ctx := context.Background()
	branch, err := s.service.CreateBranch(ctx, dto.CreateBranchRequest{Name: "Downtown"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeactivateBranch(ctx, branch.ID))
	s.Require().NoError(s.service.DeactivateBranch(ctx, branch.ID))

	active, err := s.service.ListBranches(ctx, false)
	s.Require().NoError(err)
	s.Empty(active)

	all, err := s.service.ListBranches(ctx, true)
	s.Require().NoError(err)
	s.Len(all, 1)
	s.False(all[0].IsActive)

	found, err := s.service.GetBranchByID(ctx, branch.ID)
	s.Require().NoError(err)
	s.False(found.IsActive)
}

func (s *BranchServiceTestSuite) TestGetMissing() {
	_, err := s.service.GetBranchByID(context.Background(), "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *BranchServiceTestSuite) TestUpdatePartialFields() {
	ctx := context.Background()
	branch, err := s.service.CreateBranch(ctx, dto.CreateBranchRequest{Name: "Downtown", Address: "1 Main St"})
	s.Require().NoError(err)

	phone := "555-0100"
	updated, err := s.service.UpdateBranch(ctx, branch.ID, dto.UpdateBranchRequest{Phone: &phone})
	s.Require().NoError(err)
	s.Equal("555-0100", updated.Phone)
	s.Equal("Downtown", updated.Name)
	s.Equal("1 Main St", updated.Address)
}

func TestBranchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BranchServiceTestSuite))
}

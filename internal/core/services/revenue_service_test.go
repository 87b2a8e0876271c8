package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type RevenueServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	service portssvc.RevenueSvcFacade
	cash    portssvc.CashSvcFacade
	branch  *domain.Branch
}

func (s *RevenueServiceTestSuite) SetupTest() {
	s.repos, _ = newTestProvider(s.T())
	s.service = services.NewRevenueService(s.repos.Revenues, s.repos.Branches, s.repos.CashLedger)
	s.cash = services.NewCashService(s.repos.CashLedger)
	s.branch = seedBranch(s.T(), s.repos)
}

func (s *RevenueServiceTestSuite) TestCreateRevenue_CreditsLedger() {
	ctx := context.Background()

	revenue, err := s.service.CreateRevenue(ctx, dto.CreateRevenueRequest{
		BranchID: s.branch.ID,
		Amount:   decimal.NewFromInt(250),
	})
	s.Require().NoError(err)

	state, err := s.cash.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(250)))
	s.Equal(revenue.ID, state.LastTransactionID)
	s.Equal(domain.CashRevenue, state.LastTransactionType)
}

func (s *RevenueServiceTestSuite) TestCreateRevenue_RejectsInactiveBranch() {
	ctx := context.Background()
	s.Require().NoError(services.NewBranchService(s.repos.Branches).DeactivateBranch(ctx, s.branch.ID))

	_, err := s.service.CreateRevenue(ctx, dto.CreateRevenueRequest{
		BranchID: s.branch.ID,
		Amount:   decimal.NewFromInt(100),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

// Removal reverses the exact recorded amount and repeating it is a no-op, so
// the balance is never double-reversed.
func (s *RevenueServiceTestSuite) TestRemoveRevenue_ReversesOnce() {
	ctx := context.Background()

	revenue, err := s.service.CreateRevenue(ctx, dto.CreateRevenueRequest{
		BranchID: s.branch.ID,
		Amount:   decimal.NewFromInt(400),
	})
	s.Require().NoError(err)

	s.Require().NoError(s.service.RemoveRevenue(ctx, revenue.ID))
	s.Require().NoError(s.service.RemoveRevenue(ctx, revenue.ID))

	state, err := s.cash.GetState(ctx)
	s.Require().NoError(err)
	s.True(state.CurrentCash.IsZero(), "cash %s", state.CurrentCash)

	// Soft-deleted: gone from listings, still fetchable by id.
	listed, err := s.service.ListRevenues(ctx, "", domain.DateRange{})
	s.Require().NoError(err)
	s.Empty(listed)
	_, err = s.service.GetRevenueByID(ctx, revenue.ID)
	s.NoError(err)
}

func (s *RevenueServiceTestSuite) TestManualAdjustment() {
	ctx := context.Background()

	state, err := s.cash.ManualAdjust(ctx, decimal.NewFromInt(-75), "Register recount")
	s.Require().NoError(err)
	s.True(state.CurrentCash.Equal(decimal.NewFromInt(-75)))
	s.Equal(domain.CashManualAdjustment, state.LastTransactionType)

	_, err = s.cash.ManualAdjust(ctx, decimal.Zero, "noop")
	s.ErrorIs(err, apperrors.ErrValidation)
	_, err = s.cash.ManualAdjust(ctx, decimal.NewFromInt(10), "")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestRevenueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueServiceTestSuite))
}

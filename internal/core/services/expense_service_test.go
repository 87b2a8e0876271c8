package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

type ExpenseServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	dataDir string
	service portssvc.ExpenseSvcFacade
}

func (s *ExpenseServiceTestSuite) SetupTest() {
	s.repos, s.dataDir = newTestProvider(s.T())
	s.service = services.NewExpenseService(s.repos.Expenses, s.repos.Branches, s.repos.Revenues)
}

func (s *ExpenseServiceTestSuite) seedBranches(n int) []domain.Branch {
	branches := make([]domain.Branch, 0, n)
	names := []string{"North", "South", "East", "West"}
	for i := 0; i < n; i++ {
		b, err := s.repos.Branches.Create(context.Background(), domain.Branch{Name: names[i], IsActive: true})
		s.Require().NoError(err)
		branches = append(branches, *b)
	}
	return branches
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_SharedMustNotCarryBranch() {
	ctx := context.Background()
	branch := s.seedBranches(1)[0]

	_, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		BranchID: branch.ID,
		Type:     "SHARED",
		Category: "Rent",
		Amount:   decimal.NewFromInt(900),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:     "VARIABLE",
		Category: "Supplies",
		Amount:   decimal.NewFromInt(50),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ExpenseServiceTestSuite) TestDistributeShared_Equal() {
	ctx := context.Background()
	s.seedBranches(3)

	expense, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:               "SHARED",
		Category:           "Head office rent",
		Amount:             decimal.NewFromInt(900),
		DistributionMethod: "EQUAL",
	})
	s.Require().NoError(err)

	shares, err := s.service.DistributeSharedExpense(ctx, expense.ID)
	s.Require().NoError(err)
	s.Require().Len(shares, 3)

	total := decimal.Zero
	for _, share := range shares {
		s.True(share.Amount.Equal(decimal.NewFromInt(300)), "share %s", share.Amount)
		total = total.Add(share.Amount)
	}
	s.True(total.Equal(expense.Amount))
}

// An equal split that does not divide evenly pushes the remainder into the
// last share so the shares still sum exactly.
func (s *ExpenseServiceTestSuite) TestDistributeShared_EqualRemainder() {
	ctx := context.Background()
	s.seedBranches(3)

	expense, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:               "SHARED",
		Category:           "Licenses",
		Amount:             decimal.NewFromInt(100),
		DistributionMethod: "EQUAL",
	})
	s.Require().NoError(err)

	shares, err := s.service.DistributeSharedExpense(ctx, expense.ID)
	s.Require().NoError(err)
	s.Require().Len(shares, 3)

	total := decimal.Zero
	for _, share := range shares {
		total = total.Add(share.Amount)
	}
	s.True(total.Equal(expense.Amount), "total %s", total)
}

func (s *ExpenseServiceTestSuite) TestDistributeShared_ProportionalToRevenue() {
	ctx := context.Background()
	branches := s.seedBranches(2)

	// North earned 3x what South did.
	_, err := s.repos.Revenues.Create(ctx, domain.Revenue{BranchID: branches[0].ID, Amount: decimal.NewFromInt(300), Date: time.Now().UTC(), IsActive: true})
	s.Require().NoError(err)
	_, err = s.repos.Revenues.Create(ctx, domain.Revenue{BranchID: branches[1].ID, Amount: decimal.NewFromInt(100), Date: time.Now().UTC(), IsActive: true})
	s.Require().NoError(err)

	expense, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:               "SHARED",
		Category:           "Marketing",
		Amount:             decimal.NewFromInt(400),
		DistributionMethod: "PROPORTIONAL",
	})
	s.Require().NoError(err)

	shares, err := s.service.DistributeSharedExpense(ctx, expense.ID)
	s.Require().NoError(err)
	s.Require().Len(shares, 2)

	byBranch := map[string]decimal.Decimal{}
	for _, share := range shares {
		byBranch[share.BranchID] = share.Amount
	}
	s.True(byBranch[branches[0].ID].Equal(decimal.NewFromInt(300)), "north %s", byBranch[branches[0].ID])
	s.True(byBranch[branches[1].ID].Equal(decimal.NewFromInt(100)), "south %s", byBranch[branches[1].ID])
}

// With no revenue at all a proportional split falls back to an equal one.
func (s *ExpenseServiceTestSuite) TestDistributeShared_ProportionalZeroRevenueFallsBack() {
	ctx := context.Background()
	s.seedBranches(2)

	expense, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		Type:               "SHARED",
		Category:           "Insurance",
		Amount:             decimal.NewFromInt(200),
		DistributionMethod: "PROPORTIONAL",
	})
	s.Require().NoError(err)

	shares, err := s.service.DistributeSharedExpense(ctx, expense.ID)
	s.Require().NoError(err)
	s.Require().Len(shares, 2)
	for _, share := range shares {
		s.True(share.Amount.Equal(decimal.NewFromInt(100)), "share %s", share.Amount)
	}
}

func (s *ExpenseServiceTestSuite) TestDistributeShared_RejectsNonShared() {
	ctx := context.Background()
	branch := s.seedBranches(1)[0]

	expense, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		BranchID: branch.ID,
		Type:     "FIXED",
		Category: "Rent",
		Amount:   decimal.NewFromInt(100),
	})
	s.Require().NoError(err)

	_, err = s.service.DistributeSharedExpense(ctx, expense.ID)
	s.ErrorIs(err, services.ErrNotSharedExpense)
}

func (s *ExpenseServiceTestSuite) TestGenerateRecurring_IdempotentPerMonth() {
	ctx := context.Background()
	branch := s.seedBranches(1)[0]

	parent, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		BranchID:    branch.ID,
		Type:        "FIXED",
		Category:    "Rent",
		Amount:      decimal.NewFromInt(1500),
		Date:        time.Now().UTC().AddDate(0, -2, 0),
		IsRecurring: true,
	})
	s.Require().NoError(err)

	now := time.Now().UTC()
	created, err := s.service.GenerateRecurringExpenses(ctx, now.Year(), now.Month())
	s.Require().NoError(err)
	s.Require().Len(created, 1)
	s.Equal(parent.ID, created[0].ParentExpenseID)
	s.True(created[0].Amount.Equal(parent.Amount))
	s.Equal(1, created[0].Date.Day())

	// Second run within the same month creates nothing.
	again, err := s.service.GenerateRecurringExpenses(ctx, now.Year(), now.Month())
	s.Require().NoError(err)
	s.Empty(again)
}

func (s *ExpenseServiceTestSuite) TestCreateExpense_OnlyFixedMayRecur() {
	ctx := context.Background()
	branch := s.seedBranches(1)[0]

	_, err := s.service.CreateExpense(ctx, dto.CreateExpenseRequest{
		BranchID:    branch.ID,
		Type:        "VARIABLE",
		Category:    "Supplies",
		Amount:      decimal.NewFromInt(75),
		IsRecurring: true,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}

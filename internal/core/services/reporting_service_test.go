package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	repos   *portsrepo.RepositoryProvider
	service portssvc.ReportingSvcFacade
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.repos, _ = newTestProvider(s.T())
	s.service = services.NewReportingService(s.repos.Revenues, s.repos.Expenses, s.repos.Employees, s.repos.Branches)
}

func (s *ReportingServiceTestSuite) addBranch(name string) *domain.Branch {
	branch, err := s.repos.Branches.Create(context.Background(), domain.Branch{Name: name, IsActive: true})
	s.Require().NoError(err)
	return branch
}

func (s *ReportingServiceTestSuite) addRevenue(branchID string, amount int64, date time.Time) {
	_, err := s.repos.Revenues.Create(context.Background(), domain.Revenue{
		BranchID: branchID, Amount: decimal.NewFromInt(amount), Date: date, IsActive: true,
	})
	s.Require().NoError(err)
}

func (s *ReportingServiceTestSuite) addExpense(branchID string, typ domain.ExpenseType, category string, amount int64, date time.Time) {
	_, err := s.repos.Expenses.Create(context.Background(), domain.Expense{
		BranchID: branchID, Type: typ, Category: category,
		Amount: decimal.NewFromInt(amount), Date: date, IsActive: true,
		DistributionMethod: domain.DistributeEqual,
	})
	s.Require().NoError(err)
}

func (s *ReportingServiceTestSuite) TestFinancialSummary_SingleBranch() {
	ctx := context.Background()
	now := time.Now().UTC()
	north := s.addBranch("North")
	s.addBranch("South")

	s.addRevenue(north.ID, 1000, now)
	s.addExpense(north.ID, domain.ExpenseFixed, "Rent", 200, now)
	s.addExpense(north.ID, domain.ExpenseVariable, "Supplies", 50, now)
	// Shared across both active branches, equal split: 100 each.
	s.addExpense("", domain.ExpenseShared, "Head office", 200, now)

	_, err := s.repos.Employees.Create(ctx, domain.Employee{
		BranchID: north.ID, Name: "Teacher", Salary: decimal.NewFromInt(300), IsActive: true,
	})
	s.Require().NoError(err)

	summary, err := s.service.FinancialSummary(ctx, north.ID, domain.DateRange{})
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.Equal(decimal.NewFromInt(1000)))
	s.True(summary.FixedExpenses.Equal(decimal.NewFromInt(200)))
	s.True(summary.VariableExpenses.Equal(decimal.NewFromInt(50)))
	s.True(summary.SharedShare.Equal(decimal.NewFromInt(100)), "shared %s", summary.SharedShare)
	s.True(summary.Salaries.Equal(decimal.NewFromInt(300)))
	// 1000 - 200 - 50 - 100 - 300
	s.True(summary.NetProfit.Equal(decimal.NewFromInt(350)), "profit %s", summary.NetProfit)
}

func (s *ReportingServiceTestSuite) TestFinancialSummary_CompanyWideCountsFullShared() {
	ctx := context.Background()
	now := time.Now().UTC()
	north := s.addBranch("North")
	s.addBranch("South")

	s.addRevenue(north.ID, 500, now)
	s.addExpense("", domain.ExpenseShared, "Head office", 200, now)

	summary, err := s.service.FinancialSummary(ctx, "", domain.DateRange{})
	s.Require().NoError(err)
	s.True(summary.SharedShare.Equal(decimal.NewFromInt(200)))
	s.True(summary.NetProfit.Equal(decimal.NewFromInt(300)))
}

func (s *ReportingServiceTestSuite) TestMonthlyBreakdown_AscendingBuckets() {
	ctx := context.Background()
	branch := s.addBranch("North")

	jan := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	s.addRevenue(branch.ID, 400, mar)
	s.addRevenue(branch.ID, 100, jan)
	s.addExpense(branch.ID, domain.ExpenseVariable, "Supplies", 30, jan)

	buckets, err := s.service.MonthlyBreakdown(ctx, domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(buckets, 2)
	s.Equal(time.January, buckets[0].Month)
	s.Equal(time.March, buckets[1].Month)
	s.True(buckets[0].Profit.Equal(decimal.NewFromInt(70)))
	s.True(buckets[1].Profit.Equal(decimal.NewFromInt(400)))
}

func (s *ReportingServiceTestSuite) TestCategoryBreakdown_Shares() {
	ctx := context.Background()
	branch := s.addBranch("North")
	now := time.Now().UTC()

	s.addExpense(branch.ID, domain.ExpenseFixed, "Rent", 300, now)
	s.addExpense(branch.ID, domain.ExpenseVariable, "Supplies", 100, now)

	buckets, err := s.service.CategoryBreakdown(ctx, domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(buckets, 2)
	// Sorted by total, descending.
	s.Equal("Rent", buckets[0].Category)
	s.True(buckets[0].Share.Equal(decimal.NewFromInt(75)), "share %s", buckets[0].Share)
	s.True(buckets[1].Share.Equal(decimal.NewFromInt(25)))
}

func (s *ReportingServiceTestSuite) TestCategoryBreakdown_ZeroTotalHasZeroShares() {
	buckets, err := s.service.CategoryBreakdown(context.Background(), domain.DateRange{})
	s.Require().NoError(err)
	s.Empty(buckets)
}

func (s *ReportingServiceTestSuite) TestTopBranches_RankedByProfit() {
	ctx := context.Background()
	now := time.Now().UTC()
	north := s.addBranch("North")
	south := s.addBranch("South")
	east := s.addBranch("East")

	s.addRevenue(north.ID, 100, now)
	s.addRevenue(south.ID, 500, now)
	s.addRevenue(east.ID, 300, now)

	rankings, err := s.service.TopBranches(ctx, 2, domain.DateRange{})
	s.Require().NoError(err)
	s.Require().Len(rankings, 2)
	s.Equal("South", rankings[0].BranchName)
	s.Equal("East", rankings[1].BranchName)
}

func (s *ReportingServiceTestSuite) TestDateRangeBoundsQueries() {
	ctx := context.Background()
	branch := s.addBranch("North")

	inRange := time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	s.addRevenue(branch.ID, 100, inRange)
	s.addRevenue(branch.ID, 900, outOfRange)

	rng := domain.DateRange{
		From: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	summary, err := s.service.FinancialSummary(ctx, branch.ID, rng)
	s.Require().NoError(err)
	s.True(summary.TotalRevenue.Equal(decimal.NewFromInt(100)), "revenue %s", summary.TotalRevenue)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

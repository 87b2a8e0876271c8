package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
)

const defaultTopBranches = 5

// reportingService derives financial analytics from the raw records. It never
// mutates anything.
type reportingService struct {
	revenues  portsrepo.RecordRepository[domain.Revenue]
	expenses  portsrepo.RecordRepository[domain.Expense]
	employees portsrepo.RecordRepository[domain.Employee]
	branches  portsrepo.RecordRepository[domain.Branch]
}

// NewReportingService creates a new ReportingService.
func NewReportingService(
	revenues portsrepo.RecordRepository[domain.Revenue],
	expenses portsrepo.RecordRepository[domain.Expense],
	employees portsrepo.RecordRepository[domain.Employee],
	branches portsrepo.RecordRepository[domain.Branch],
) portssvc.ReportingSvcFacade {
	return &reportingService{revenues: revenues, expenses: expenses, employees: employees, branches: branches}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// FinancialSummary computes profit for one branch, or company-wide when
// branchID is empty:
//
//	profit = revenue - fixed - variable - shared share - salaries
//
// A branch's shared share is its distribution slice of every in-range SHARED
// expense; company-wide, the full shared amounts count.
func (s *reportingService) FinancialSummary(ctx context.Context, branchID string, rng domain.DateRange) (*domain.FinancialSummary, error) {
	revenues, err := s.revenues.FindBy(ctx, func(r domain.Revenue) bool {
		return r.IsActive && (branchID == "" || r.BranchID == branchID) && rng.Contains(r.Date)
	})
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindBy(ctx, func(e domain.Expense) bool {
		return e.IsActive && rng.Contains(e.Date)
	})
	if err != nil {
		return nil, err
	}
	employees, err := s.employees.FindBy(ctx, func(e domain.Employee) bool {
		return e.IsActive && (branchID == "" || e.IsGlobal || e.BranchID == branchID)
	})
	if err != nil {
		return nil, err
	}

	summary := domain.FinancialSummary{BranchID: branchID}
	for _, r := range revenues {
		summary.TotalRevenue = summary.TotalRevenue.Add(r.Amount)
	}
	for _, e := range employees {
		summary.Salaries = summary.Salaries.Add(e.Salary)
	}

	var shared []domain.Expense
	for _, e := range expenses {
		switch e.Type {
		case domain.ExpenseFixed:
			if branchID == "" || e.BranchID == branchID {
				summary.FixedExpenses = summary.FixedExpenses.Add(e.Amount)
			}
		case domain.ExpenseVariable:
			if branchID == "" || e.BranchID == branchID {
				summary.VariableExpenses = summary.VariableExpenses.Add(e.Amount)
			}
		case domain.ExpenseShared:
			shared = append(shared, e)
		}
	}

	if branchID == "" {
		for _, e := range shared {
			summary.SharedShare = summary.SharedShare.Add(e.Amount)
		}
	} else if len(shared) > 0 {
		share, err := s.branchSharedShare(ctx, branchID, shared)
		if err != nil {
			return nil, err
		}
		summary.SharedShare = share
	}

	summary.NetProfit = summary.TotalRevenue.
		Sub(summary.FixedExpenses).
		Sub(summary.VariableExpenses).
		Sub(summary.SharedShare).
		Sub(summary.Salaries)
	return &summary, nil
}

// branchSharedShare sums the given branch's slices of the shared expenses,
// using each expense's own distribution method.
func (s *reportingService) branchSharedShare(ctx context.Context, branchID string, shared []domain.Expense) (decimal.Decimal, error) {
	branches, err := s.branches.FindBy(ctx, func(b domain.Branch) bool { return b.IsActive })
	if err != nil {
		return decimal.Zero, err
	}

	needProportional := false
	for _, e := range shared {
		if e.DistributionMethod == domain.DistributeProportional {
			needProportional = true
			break
		}
	}
	revenueByBranch := map[string]decimal.Decimal{}
	if needProportional {
		revenues, err := s.revenues.FindBy(ctx, func(r domain.Revenue) bool { return r.IsActive })
		if err != nil {
			return decimal.Zero, err
		}
		for _, r := range revenues {
			revenueByBranch[r.BranchID] = revenueByBranch[r.BranchID].Add(r.Amount)
		}
	}

	total := decimal.Zero
	for _, e := range shared {
		for _, slice := range distributeShared(e.Amount, e.DistributionMethod, branches, revenueByBranch) {
			if slice.BranchID == branchID {
				total = total.Add(slice.Amount)
			}
		}
	}
	return total, nil
}

// MonthlyBreakdown buckets revenue and expenses per calendar month, ascending.
func (s *reportingService) MonthlyBreakdown(ctx context.Context, rng domain.DateRange) ([]domain.MonthlyBucket, error) {
	revenues, err := s.revenues.FindBy(ctx, func(r domain.Revenue) bool {
		return r.IsActive && rng.Contains(r.Date)
	})
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.FindBy(ctx, func(e domain.Expense) bool {
		return e.IsActive && rng.Contains(e.Date)
	})
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}
	byMonth := map[key]*domain.MonthlyBucket{}
	bucket := func(t time.Time) *domain.MonthlyBucket {
		k := key{t.Year(), t.Month()}
		b, ok := byMonth[k]
		if !ok {
			b = &domain.MonthlyBucket{Year: k.year, Month: k.month}
			byMonth[k] = b
		}
		return b
	}
	for _, r := range revenues {
		b := bucket(r.Date)
		b.Revenue = b.Revenue.Add(r.Amount)
	}
	for _, e := range expenses {
		b := bucket(e.Date)
		b.Expenses = b.Expenses.Add(e.Amount)
	}

	out := make([]domain.MonthlyBucket, 0, len(byMonth))
	for _, b := range byMonth {
		b.Profit = b.Revenue.Sub(b.Expenses)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// CategoryBreakdown totals expenses per category with each category's share of
// the in-range total. Shares are zero when the total is zero.
func (s *reportingService) CategoryBreakdown(ctx context.Context, rng domain.DateRange) ([]domain.CategoryBucket, error) {
	expenses, err := s.expenses.FindBy(ctx, func(e domain.Expense) bool {
		return e.IsActive && rng.Contains(e.Date)
	})
	if err != nil {
		return nil, err
	}

	byCategory := map[string]decimal.Decimal{}
	total := decimal.Zero
	for _, e := range expenses {
		byCategory[e.Category] = byCategory[e.Category].Add(e.Amount)
		total = total.Add(e.Amount)
	}

	out := make([]domain.CategoryBucket, 0, len(byCategory))
	for category, sum := range byCategory {
		b := domain.CategoryBucket{Category: category, Total: sum}
		if total.IsPositive() {
			b.Share = sum.Mul(oneHundred).Div(total).Round(2)
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total.GreaterThan(out[j].Total) })
	return out, nil
}

// TopBranches ranks active branches by net profit. Summaries are computed
// concurrently, one goroutine per branch.
func (s *reportingService) TopBranches(ctx context.Context, n int, rng domain.DateRange) ([]domain.BranchRanking, error) {
	if n <= 0 {
		n = defaultTopBranches
	}
	branches, err := s.branches.FindBy(ctx, func(b domain.Branch) bool { return b.IsActive })
	if err != nil {
		return nil, err
	}

	rankings := make([]domain.BranchRanking, 0, len(branches))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, branch := range branches {
		branch := branch
		g.Go(func() error {
			summary, err := s.FinancialSummary(gctx, branch.ID, rng)
			if err != nil {
				return err
			}
			mu.Lock()
			rankings = append(rankings, domain.BranchRanking{BranchID: branch.ID, BranchName: branch.Name, Summary: *summary})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(rankings, func(i, j int) bool {
		return rankings[i].Summary.NetProfit.GreaterThan(rankings[j].Summary.NetProfit)
	})
	if len(rankings) > n {
		rankings = rankings[:n]
	}
	return rankings, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

var ErrNotSharedExpense = errors.New("expense is not a shared expense")

// expenseService manages analytically-counted costs. Expenses never touch the
// cash ledger; they are attributed to branches at reporting time.
type expenseService struct {
	expenses portsrepo.RecordRepository[domain.Expense]
	branches portsrepo.RecordRepository[domain.Branch]
	revenues portsrepo.RecordRepository[domain.Revenue]
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenses portsrepo.RecordRepository[domain.Expense], branches portsrepo.RecordRepository[domain.Branch], revenues portsrepo.RecordRepository[domain.Revenue]) portssvc.ExpenseSvcFacade {
	return &expenseService{expenses: expenses, branches: branches, revenues: revenues}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expenseType := domain.ExpenseType(req.Type)
	if expenseType == domain.ExpenseShared {
		if req.BranchID != "" {
			return nil, fmt.Errorf("%w: a shared expense is company-wide and cannot carry a branch", apperrors.ErrValidation)
		}
	} else {
		if req.BranchID == "" {
			return nil, fmt.Errorf("%w: a %s expense requires a branch", apperrors.ErrValidation, expenseType)
		}
		if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
			return nil, err
		}
	}
	if req.IsRecurring && expenseType != domain.ExpenseFixed {
		return nil, fmt.Errorf("%w: only fixed expenses can recur", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	expense, err := s.expenses.Create(ctx, domain.Expense{
		BranchID:           req.BranchID,
		Type:               expenseType,
		Category:           req.Category,
		Description:        req.Description,
		Amount:             req.Amount,
		Date:               date,
		IsRecurring:        req.IsRecurring,
		DistributionMethod: domain.DistributionMethod(req.DistributionMethod),
		IsActive:           true,
	})
	if err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ID), slog.String("type", string(expense.Type)))
	return expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, id string) (*domain.Expense, error) {
	return s.expenses.FindByID(ctx, id)
}

func (s *expenseService) ListExpenses(ctx context.Context, branchID string, rng domain.DateRange) ([]domain.Expense, error) {
	return s.expenses.FindBy(ctx, func(e domain.Expense) bool {
		return e.IsActive && (branchID == "" || e.BranchID == branchID) && rng.Contains(e.Date)
	})
}

func (s *expenseService) UpdateExpense(ctx context.Context, id string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if req.Amount != nil && !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}
	return s.expenses.Update(ctx, id, func(e *domain.Expense) {
		if req.Category != nil {
			e.Category = *req.Category
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Amount != nil {
			e.Amount = *req.Amount
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
	})
}

func (s *expenseService) DeactivateExpense(ctx context.Context, id string) error {
	_, err := s.expenses.Update(ctx, id, func(e *domain.Expense) {
		e.IsActive = false
	})
	return err
}

// distributeShared splits a shared amount across the given branches. The last
// share absorbs any rounding remainder so the shares always sum exactly.
func distributeShared(amount decimal.Decimal, method domain.DistributionMethod, branches []domain.Branch, revenueByBranch map[string]decimal.Decimal) []domain.BranchShare {
	shares := make([]domain.BranchShare, 0, len(branches))
	if len(branches) == 0 {
		return shares
	}

	if method == domain.DistributeProportional {
		totalRevenue := decimal.Zero
		for _, b := range branches {
			totalRevenue = totalRevenue.Add(revenueByBranch[b.ID])
		}
		if totalRevenue.IsPositive() {
			assigned := decimal.Zero
			for i, b := range branches {
				var share decimal.Decimal
				if i == len(branches)-1 {
					share = amount.Sub(assigned)
				} else {
					share = amount.Mul(revenueByBranch[b.ID]).Div(totalRevenue).Round(2)
					assigned = assigned.Add(share)
				}
				shares = append(shares, domain.BranchShare{BranchID: b.ID, Amount: share})
			}
			return shares
		}
		// Zero total revenue falls back to an equal split.
	}

	n := decimal.NewFromInt(int64(len(branches)))
	equal := amount.Div(n).Round(2)
	assigned := decimal.Zero
	for i, b := range branches {
		share := equal
		if i == len(branches)-1 {
			share = amount.Sub(assigned)
		}
		assigned = assigned.Add(share)
		shares = append(shares, domain.BranchShare{BranchID: b.ID, Amount: share})
	}
	return shares
}

// DistributeSharedExpense computes each active branch's slice of a SHARED
// expense, EQUAL or PROPORTIONAL to the branch's share of total revenue.
func (s *expenseService) DistributeSharedExpense(ctx context.Context, expenseID string) ([]domain.BranchShare, error) {
	expense, err := s.expenses.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Type != domain.ExpenseShared {
		return nil, fmt.Errorf("%w: %s", ErrNotSharedExpense, expense.Type)
	}

	branches, err := s.branches.FindBy(ctx, func(b domain.Branch) bool { return b.IsActive })
	if err != nil {
		return nil, err
	}

	revenueByBranch := map[string]decimal.Decimal{}
	if expense.DistributionMethod == domain.DistributeProportional {
		revenues, err := s.revenues.FindBy(ctx, func(r domain.Revenue) bool { return r.IsActive })
		if err != nil {
			return nil, err
		}
		for _, r := range revenues {
			revenueByBranch[r.BranchID] = revenueByBranch[r.BranchID].Add(r.Amount)
		}
	}

	return distributeShared(expense.Amount, expense.DistributionMethod, branches, revenueByBranch), nil
}

// GenerateRecurringExpenses materializes one child expense per recurring
// parent for the given month. The duplicate check on (parent, month, year)
// makes repeat invocations within the same month no-ops.
func (s *expenseService) GenerateRecurringExpenses(ctx context.Context, year int, month time.Month) ([]domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	parents, err := s.expenses.FindBy(ctx, func(e domain.Expense) bool {
		return e.IsActive && e.IsRecurring && e.ParentExpenseID == ""
	})
	if err != nil {
		return nil, err
	}

	periodStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	created := make([]domain.Expense, 0)
	for _, parent := range parents {
		if parent.Date.After(periodStart.AddDate(0, 1, 0)) {
			continue // not yet in effect for this period
		}

		existing, err := s.expenses.FindBy(ctx, func(e domain.Expense) bool {
			return e.ParentExpenseID == parent.ID && e.Date.Year() == year && e.Date.Month() == month
		})
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 {
			continue
		}

		child, err := s.expenses.Create(ctx, domain.Expense{
			BranchID:        parent.BranchID,
			Type:            parent.Type,
			Category:        parent.Category,
			Description:     parent.Description,
			Amount:          parent.Amount,
			Date:            periodStart,
			ParentExpenseID: parent.ID,
			IsActive:        true,
		})
		if err != nil {
			logger.Error("Failed to materialize recurring expense",
				slog.String("parent_expense_id", parent.ID), slog.String("error", err.Error()))
			return created, fmt.Errorf("failed to materialize recurring expense for parent %s: %w", parent.ID, err)
		}
		created = append(created, *child)
	}

	logger.Info("Recurring expenses generated",
		slog.Int("year", year), slog.Int("month", int(month)), slog.Int("created", len(created)))
	return created, nil
}

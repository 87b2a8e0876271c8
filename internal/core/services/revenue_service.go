package services

import (
	"context"
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

// revenueService records cash-increasing events and keeps the ledger in step.
type revenueService struct {
	revenues portsrepo.RecordRepository[domain.Revenue]
	branches portsrepo.RecordRepository[domain.Branch]
	ledger   portsrepo.CashLedgerRepository
}

// NewRevenueService creates a new RevenueService.
func NewRevenueService(revenues portsrepo.RecordRepository[domain.Revenue], branches portsrepo.RecordRepository[domain.Branch], ledger portsrepo.CashLedgerRepository) portssvc.RevenueSvcFacade {
	return &revenueService{revenues: revenues, branches: branches, ledger: ledger}
}

var _ portssvc.RevenueSvcFacade = (*revenueService)(nil)

func (s *revenueService) CreateRevenue(ctx context.Context, req dto.CreateRevenueRequest) (*domain.Revenue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: revenue amount must be positive", apperrors.ErrValidation)
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	revenue, err := s.revenues.Create(ctx, domain.Revenue{
		BranchID:     req.BranchID,
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         date,
		CourseID:     req.CourseID,
		EnrollmentID: req.EnrollmentID,
		StudentID:    req.StudentID,
		IsActive:     true,
	})
	if err != nil {
		logger.Error("Failed to save revenue", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save revenue: %w", err)
	}

	// Second step of the two-step sequence; there is no rollback, so a failure
	// here leaves a revenue row without a ledger credit and must be loud.
	if _, err := s.ledger.Adjust(ctx, revenue.Amount, domain.CashRevenue, revenue.ID); err != nil {
		logger.Error("Revenue persisted but cash ledger credit failed",
			slog.String("revenue_id", revenue.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("revenue %s saved but ledger credit failed: %w", revenue.ID, err)
	}

	logger.Info("Revenue recorded", slog.String("revenue_id", revenue.ID), slog.String("amount", revenue.Amount.String()))
	return revenue, nil
}

func (s *revenueService) GetRevenueByID(ctx context.Context, id string) (*domain.Revenue, error) {
	return s.revenues.FindByID(ctx, id)
}

func (s *revenueService) ListRevenues(ctx context.Context, branchID string, rng domain.DateRange) ([]domain.Revenue, error) {
	return s.revenues.FindBy(ctx, func(r domain.Revenue) bool {
		return r.IsActive && (branchID == "" || r.BranchID == branchID) && rng.Contains(r.Date)
	})
}

// RemoveRevenue soft-deletes the record and applies the exact negated amount
// to the ledger. Removing an already-removed revenue is a no-op.
func (s *revenueService) RemoveRevenue(ctx context.Context, id string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	revenue, err := s.revenues.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !revenue.IsActive {
		return nil
	}

	if _, err := s.revenues.Update(ctx, id, func(r *domain.Revenue) {
		r.IsActive = false
	}); err != nil {
		return err
	}
	if _, err := s.ledger.Adjust(ctx, decimal.Zero.Sub(revenue.Amount), domain.CashRevenue, "REV-"+revenue.ID); err != nil {
		logger.Error("Revenue removed but cash ledger reversal failed",
			slog.String("revenue_id", revenue.ID), slog.String("error", err.Error()))
		return fmt.Errorf("revenue %s removed but ledger reversal failed: %w", revenue.ID, err)
	}

	logger.Info("Revenue removed and ledger reversed", slog.String("revenue_id", revenue.ID))
	return nil
}

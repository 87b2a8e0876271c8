package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

var (
	ErrStakeholderSumMismatch = errors.New("stakeholder amounts do not sum to the withdrawal amount")
	ErrInsufficientCash       = errors.New("insufficient cash for withdrawal")
	ErrEditWindowExpired      = errors.New("withdrawals can only be changed within 24 hours of creation")
)

// stakeholderTolerance absorbs rounding drift between the withdrawal amount
// and the sum of its stakeholder splits.
var stakeholderTolerance = decimal.NewFromFloat(0.01)

// withdrawalService distributes cash to stakeholders and keeps the ledger in
// step, including the balance check that must not race.
type withdrawalService struct {
	withdrawals portsrepo.RecordRepository[domain.Withdrawal]
	ledger      portsrepo.CashLedgerRepository
}

// NewWithdrawalService creates a new WithdrawalService.
func NewWithdrawalService(withdrawals portsrepo.RecordRepository[domain.Withdrawal], ledger portsrepo.CashLedgerRepository) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{withdrawals: withdrawals, ledger: ledger}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

func validateStakeholders(amount decimal.Decimal, stakeholders []domain.Stakeholder) error {
	sum := decimal.Zero
	for _, st := range stakeholders {
		if st.Amount.IsNegative() {
			return fmt.Errorf("%w: stakeholder %q has a negative amount", apperrors.ErrValidation, st.Name)
		}
		sum = sum.Add(st.Amount)
	}
	if sum.Sub(amount).Abs().GreaterThan(stakeholderTolerance) {
		return fmt.Errorf("%w: %s vs %s", ErrStakeholderSumMismatch, sum.String(), amount.String())
	}
	return nil
}

// CreateWithdrawal debits the ledger and persists the withdrawal. The balance
// check and the debit run in one critical section on the ledger, so two
// concurrent withdrawals can never both pass against the same stale balance.
func (s *withdrawalService) CreateWithdrawal(ctx context.Context, req dto.CreateWithdrawalRequest) (*domain.Withdrawal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", apperrors.ErrValidation)
	}
	if err := validateStakeholders(req.Amount, req.Stakeholders); err != nil {
		return nil, err
	}
	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	// The id is assigned up front so the ledger debit can reference it.
	withdrawalID := uuid.NewString()

	if _, err := s.ledger.CheckAndAdjust(ctx, func(state domain.CashState) error {
		if state.CurrentCash.LessThan(req.Amount) {
			return fmt.Errorf("%w: %w: have %s, need %s", apperrors.ErrValidation, ErrInsufficientCash, state.CurrentCash.String(), req.Amount.String())
		}
		return nil
	}, decimal.Zero.Sub(req.Amount), domain.CashWithdrawal, withdrawalID); err != nil {
		return nil, err
	}

	withdrawal, err := s.withdrawals.Create(ctx, domain.Withdrawal{
		RecordMeta:   domain.RecordMeta{ID: withdrawalID},
		Amount:       req.Amount,
		Description:  req.Description,
		Date:         date,
		Stakeholders: req.Stakeholders,
		IsActive:     true,
	})
	if err != nil {
		// Compensate: the debit already happened, put the cash back.
		logger.Error("Ledger debited but withdrawal persistence failed, crediting back",
			slog.String("withdrawal_id", withdrawalID), slog.String("error", err.Error()))
		if _, cerr := s.ledger.Adjust(ctx, req.Amount, domain.CashWithdrawal, "REV-"+withdrawalID); cerr != nil {
			logger.Error("Compensating ledger credit failed; cash state diverged",
				slog.String("withdrawal_id", withdrawalID), slog.String("error", cerr.Error()))
		}
		return nil, fmt.Errorf("failed to save withdrawal: %w", err)
	}

	logger.Info("Withdrawal created", slog.String("withdrawal_id", withdrawal.ID), slog.String("amount", withdrawal.Amount.String()))
	return withdrawal, nil
}

func (s *withdrawalService) GetWithdrawalByID(ctx context.Context, id string) (*domain.Withdrawal, error) {
	return s.withdrawals.FindByID(ctx, id)
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context, rng domain.DateRange) ([]domain.Withdrawal, error) {
	return s.withdrawals.FindBy(ctx, func(w domain.Withdrawal) bool {
		return w.IsActive && rng.Contains(w.Date)
	})
}

// UpdateWithdrawal edits description or stakeholder split within the edit
// window. The amount itself is immutable; a new split must still sum to it.
func (s *withdrawalService) UpdateWithdrawal(ctx context.Context, id string, req dto.UpdateWithdrawalRequest) (*domain.Withdrawal, error) {
	withdrawal, err := s.withdrawals.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !withdrawal.IsActive {
		return nil, fmt.Errorf("%w: withdrawal %q", apperrors.ErrNotFound, id)
	}
	if time.Since(withdrawal.CreatedAt) > editWindow {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEditWindowExpired)
	}
	if req.Stakeholders != nil {
		if err := validateStakeholders(withdrawal.Amount, *req.Stakeholders); err != nil {
			return nil, err
		}
	}

	return s.withdrawals.Update(ctx, id, func(w *domain.Withdrawal) {
		if req.Description != nil {
			w.Description = *req.Description
		}
		if req.Stakeholders != nil {
			w.Stakeholders = *req.Stakeholders
		}
	})
}

// RemoveWithdrawal soft-deletes within the edit window and credits the exact
// amount back to the ledger. Removing an already-removed withdrawal is a no-op.
func (s *withdrawalService) RemoveWithdrawal(ctx context.Context, id string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	withdrawal, err := s.withdrawals.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !withdrawal.IsActive {
		return nil
	}
	if time.Since(withdrawal.CreatedAt) > editWindow {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEditWindowExpired)
	}

	if _, err := s.withdrawals.Update(ctx, id, func(w *domain.Withdrawal) {
		w.IsActive = false
	}); err != nil {
		return err
	}
	if _, err := s.ledger.Adjust(ctx, withdrawal.Amount, domain.CashWithdrawal, "REV-"+withdrawal.ID); err != nil {
		logger.Error("Withdrawal removed but cash ledger reversal failed",
			slog.String("withdrawal_id", id), slog.String("error", err.Error()))
		return fmt.Errorf("withdrawal %s removed but ledger reversal failed: %w", id, err)
	}

	logger.Info("Withdrawal removed and cash credited back", slog.String("withdrawal_id", id))
	return nil
}

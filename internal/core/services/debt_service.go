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

var (
	ErrDebtNotActive        = errors.New("debt is not active")
	ErrPaymentWindowExpired = errors.New("payments can only be deleted within 24 hours of creation")
)

// editWindow bounds how long after creation a cash-affecting record may still
// be edited or deleted.
const editWindow = 24 * time.Hour

var daysPerYear = decimal.NewFromInt(365)

// debtService manages liabilities, their payments and the matching ledger
// movements.
type debtService struct {
	debts    portsrepo.RecordRepository[domain.Debt]
	payments portsrepo.RecordRepository[domain.DebtPayment]
	branches portsrepo.RecordRepository[domain.Branch]
	ledger   portsrepo.CashLedgerRepository
}

// NewDebtService creates a new DebtService.
func NewDebtService(debts portsrepo.RecordRepository[domain.Debt], payments portsrepo.RecordRepository[domain.DebtPayment], branches portsrepo.RecordRepository[domain.Branch], ledger portsrepo.CashLedgerRepository) portssvc.DebtSvcFacade {
	return &debtService{debts: debts, payments: payments, branches: branches, ledger: ledger}
}

var _ portssvc.DebtSvcFacade = (*debtService)(nil)

// CreateDebt persists the liability and credits the ledger with the principal:
// taking a loan is cash received.
func (s *debtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BranchID != "" {
		if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
			return nil, err
		}
	}
	if !req.PrincipalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: principal amount must be positive", apperrors.ErrValidation)
	}
	if req.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
	}
	takenDate := req.TakenDate
	if takenDate.IsZero() {
		takenDate = time.Now().UTC()
	}

	debt, err := s.debts.Create(ctx, domain.Debt{
		BranchID:             req.BranchID,
		Lender:               req.Lender,
		Description:          req.Description,
		PrincipalAmount:      req.PrincipalAmount,
		CurrentBalance:       req.PrincipalAmount,
		InterestRate:         req.InterestRate,
		CompoundingFrequency: req.CompoundingFrequency,
		TakenDate:            takenDate,
		Status:               domain.DebtActive,
		TotalInterestPaid:    decimal.Zero,
		TotalPrincipalPaid:   decimal.Zero,
	})
	if err != nil {
		logger.Error("Failed to save debt", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save debt: %w", err)
	}

	if _, err := s.ledger.Adjust(ctx, debt.PrincipalAmount, domain.CashDebtTaken, debt.ID); err != nil {
		logger.Error("Debt persisted but cash ledger credit failed",
			slog.String("debt_id", debt.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("debt %s saved but ledger credit failed: %w", debt.ID, err)
	}

	logger.Info("Debt created", slog.String("debt_id", debt.ID), slog.String("principal", debt.PrincipalAmount.String()))
	return debt, nil
}

func (s *debtService) GetDebtByID(ctx context.Context, id string) (*domain.Debt, error) {
	return s.debts.FindByID(ctx, id)
}

func (s *debtService) ListDebts(ctx context.Context, branchID string) ([]domain.Debt, error) {
	return s.debts.FindBy(ctx, func(d domain.Debt) bool {
		return branchID == "" || d.BranchID == branchID
	})
}

// accruedInterest computes simple daily interest on the outstanding balance.
// The debt's declared compounding frequency is recorded but not consulted.
func accruedInterest(balance, annualRate decimal.Decimal, days int) decimal.Decimal {
	if days <= 0 {
		return decimal.Zero
	}
	dailyRate := annualRate.Div(oneHundred).Div(daysPerYear)
	return balance.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days)))
}

// CreatePayment splits the paid amount into interest accrued since the last
// payment (or the taken date) and principal, then debits the ledger.
func (s *debtService) CreatePayment(ctx context.Context, debtID string, req dto.CreateDebtPaymentRequest) (*domain.DebtPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	debt, err := s.debts.FindByID(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if debt.Status != domain.DebtActive {
		return nil, fmt.Errorf("%w: %w: %s", apperrors.ErrValidation, ErrDebtNotActive, debt.Status)
	}
	if !req.TotalAmount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if req.LateFee.IsNegative() {
		return nil, fmt.Errorf("%w: late fee must not be negative", apperrors.ErrValidation)
	}
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = time.Now().UTC()
	}

	since := debt.TakenDate
	if debt.LastPaymentDate != nil {
		since = *debt.LastPaymentDate
	}
	days := int(paymentDate.Sub(since).Hours() / 24)

	interest := accruedInterest(debt.CurrentBalance, debt.InterestRate, days)
	principal := req.TotalAmount.Sub(interest).Sub(req.LateFee)
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	balanceAfter := debt.CurrentBalance.Sub(principal)
	if balanceAfter.IsNegative() {
		balanceAfter = decimal.Zero
	}

	payment, err := s.payments.Create(ctx, domain.DebtPayment{
		DebtID:           debtID,
		TotalAmount:      req.TotalAmount,
		InterestPortion:  interest,
		PrincipalPortion: principal,
		LateFee:          req.LateFee,
		PaymentDate:      paymentDate,
		BalanceAfter:     balanceAfter,
		Notes:            req.Notes,
	})
	if err != nil {
		logger.Error("Failed to save debt payment", slog.String("debt_id", debtID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save debt payment: %w", err)
	}

	if _, err := s.debts.Update(ctx, debtID, func(d *domain.Debt) {
		d.CurrentBalance = balanceAfter
		d.TotalInterestPaid = d.TotalInterestPaid.Add(interest)
		d.TotalPrincipalPaid = d.TotalPrincipalPaid.Add(principal)
		d.LastPaymentDate = &paymentDate
		if balanceAfter.IsZero() {
			d.Status = domain.DebtPaidOff
		}
	}); err != nil {
		logger.Error("Payment persisted but debt update failed",
			slog.String("debt_id", debtID), slog.String("payment_id", payment.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("payment %s saved but debt update failed: %w", payment.ID, err)
	}

	if _, err := s.ledger.Adjust(ctx, decimal.Zero.Sub(req.TotalAmount), domain.CashDebtPayment, payment.ID); err != nil {
		logger.Error("Payment persisted but cash ledger debit failed",
			slog.String("debt_id", debtID), slog.String("payment_id", payment.ID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("payment %s saved but ledger debit failed: %w", payment.ID, err)
	}

	logger.Info("Debt payment recorded",
		slog.String("debt_id", debtID),
		slog.String("payment_id", payment.ID),
		slog.String("interest", interest.String()),
		slog.String("principal", principal.String()))
	return payment, nil
}

func (s *debtService) ListPayments(ctx context.Context, debtID string) ([]domain.DebtPayment, error) {
	return s.payments.FindBy(ctx, func(p domain.DebtPayment) bool {
		return p.DebtID == debtID
	})
}

// DeletePayment reverses a recent payment: the debt's balance and totals are
// restored from the stored payment fields and the ledger is credited back the
// exact amount. Payments older than the edit window are immutable.
func (s *debtService) DeletePayment(ctx context.Context, debtID, paymentID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.DebtID != debtID {
		return fmt.Errorf("%w: payment %q does not belong to debt %q", apperrors.ErrNotFound, paymentID, debtID)
	}
	if time.Since(payment.CreatedAt) > editWindow {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrPaymentWindowExpired)
	}

	// Previous payment date, if any, becomes the debt's last payment again.
	siblings, err := s.payments.FindBy(ctx, func(p domain.DebtPayment) bool {
		return p.DebtID == debtID && p.ID != paymentID
	})
	if err != nil {
		return err
	}
	var lastPaymentDate *time.Time
	for i := range siblings {
		d := siblings[i].PaymentDate
		if lastPaymentDate == nil || d.After(*lastPaymentDate) {
			lastPaymentDate = &d
		}
	}

	if _, err := s.debts.Update(ctx, debtID, func(d *domain.Debt) {
		d.CurrentBalance = d.CurrentBalance.Add(payment.PrincipalPortion)
		d.TotalInterestPaid = d.TotalInterestPaid.Sub(payment.InterestPortion)
		d.TotalPrincipalPaid = d.TotalPrincipalPaid.Sub(payment.PrincipalPortion)
		d.LastPaymentDate = lastPaymentDate
		if d.Status == domain.DebtPaidOff && d.CurrentBalance.IsPositive() {
			d.Status = domain.DebtActive
		}
	}); err != nil {
		return err
	}

	if _, err := s.payments.Delete(ctx, paymentID); err != nil {
		logger.Error("Debt restored but payment record deletion failed",
			slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return fmt.Errorf("debt restored but payment %s deletion failed: %w", paymentID, err)
	}
	if _, err := s.ledger.Adjust(ctx, payment.TotalAmount, domain.CashDebtPayment, "REV-"+payment.ID); err != nil {
		logger.Error("Payment deleted but cash ledger reversal failed",
			slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return fmt.Errorf("payment %s deleted but ledger reversal failed: %w", paymentID, err)
	}

	logger.Info("Debt payment reversed", slog.String("debt_id", debtID), slog.String("payment_id", paymentID))
	return nil
}

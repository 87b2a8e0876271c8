package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

// cashService exposes the ledger state and manual corrections.
type cashService struct {
	ledger portsrepo.CashLedgerRepository
}

// NewCashService creates a new CashService.
func NewCashService(ledger portsrepo.CashLedgerRepository) portssvc.CashSvcFacade {
	return &cashService{ledger: ledger}
}

var _ portssvc.CashSvcFacade = (*cashService)(nil)

func (s *cashService) GetState(ctx context.Context) (domain.CashState, error) {
	return s.ledger.GetState(ctx)
}

// ManualAdjust applies a signed correction. The amount may be negative but a
// zero adjustment is rejected as operator error.
func (s *cashService) ManualAdjust(ctx context.Context, amount decimal.Decimal, reason string) (domain.CashState, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if amount.IsZero() {
		return domain.CashState{}, fmt.Errorf("%w: adjustment amount cannot be zero", apperrors.ErrValidation)
	}
	if reason == "" {
		return domain.CashState{}, fmt.Errorf("%w: an adjustment needs a reason", apperrors.ErrValidation)
	}

	state, err := s.ledger.Adjust(ctx, amount, domain.CashManualAdjustment, reason)
	if err != nil {
		return domain.CashState{}, err
	}

	logger.Info("Manual cash adjustment applied",
		slog.String("amount", amount.String()), slog.String("reason", reason),
		slog.String("balance", state.CurrentCash.String()))
	return state, nil
}

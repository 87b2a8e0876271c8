package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// CashLedgerRepository is the port over the singleton cash state aggregate,
// the single source of truth for the current cash position.
type CashLedgerRepository interface {
	// GetState returns the persisted state, or a zeroed default if the ledger
	// has never been initialized. A pure read never persists the default.
	GetState(ctx context.Context) (domain.CashState, error)
	// Adjust adds the signed amount to the running balance and records the
	// transaction reference. Callers reversing a prior transaction must pass
	// the exact negated amount.
	Adjust(ctx context.Context, amount decimal.Decimal, txType domain.CashTransactionType, referenceID string) (domain.CashState, error)
	// CheckAndAdjust runs check against the current state and, only if it
	// returns nil, applies the adjustment - all inside one critical section on
	// the ledger lock. This is what makes "verify balance then debit" safe
	// against concurrent callers.
	CheckAndAdjust(ctx context.Context, check func(domain.CashState) error, amount decimal.Decimal, txType domain.CashTransactionType, referenceID string) (domain.CashState, error)
}

package jsonfile

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// cashStateCollection is the singleton document holding the running balance.
const cashStateCollection = "cashState"

// CashLedgerRepository persists the singleton cash aggregate. The balance is
// authoritative: it is never recomputed by replaying history, so reversals
// must apply exact negated amounts.
type CashLedgerRepository struct {
	store *Store
}

// NewCashLedgerRepository returns a ledger repository over the store.
func NewCashLedgerRepository(store *Store) *CashLedgerRepository {
	return &CashLedgerRepository{store: store}
}

func (r *CashLedgerRepository) load() (domain.CashState, error) {
	state := domain.CashState{CurrentCash: decimal.Zero}
	if err := r.store.readDoc(cashStateCollection, &state); err != nil {
		return domain.CashState{}, err
	}
	return state, nil
}

// GetState returns the persisted state, or the zeroed default if the ledger
// was never initialized. The default is not persisted by a read.
func (r *CashLedgerRepository) GetState(ctx context.Context) (domain.CashState, error) {
	lock := r.store.lockFor(cashStateCollection)
	lock.Lock()
	defer lock.Unlock()
	return r.load()
}

// Adjust adds the signed amount to the balance and records the reference.
func (r *CashLedgerRepository) Adjust(ctx context.Context, amount decimal.Decimal, txType domain.CashTransactionType, referenceID string) (domain.CashState, error) {
	return r.CheckAndAdjust(ctx, nil, amount, txType, referenceID)
}

// CheckAndAdjust evaluates check and applies the adjustment inside a single
// critical section on the ledger lock. Two concurrent withdrawals can never
// both pass a balance check against the same stale state.
func (r *CashLedgerRepository) CheckAndAdjust(ctx context.Context, check func(domain.CashState) error, amount decimal.Decimal, txType domain.CashTransactionType, referenceID string) (domain.CashState, error) {
	lock := r.store.lockFor(cashStateCollection)
	lock.Lock()
	defer lock.Unlock()

	state, err := r.load()
	if err != nil {
		return domain.CashState{}, err
	}
	if check != nil {
		if err := check(state); err != nil {
			return state, err
		}
	}
	state.CurrentCash = state.CurrentCash.Add(amount)
	state.LastTransactionID = referenceID
	state.LastTransactionType = txType
	state.LastUpdated = time.Now().UTC()
	if err := r.store.writeDoc(cashStateCollection, state); err != nil {
		return domain.CashState{}, err
	}
	return state, nil
}

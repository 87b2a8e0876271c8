package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashTransactionType tags the last mutation applied to the cash ledger.
type CashTransactionType string

const (
	CashRevenue          CashTransactionType = "REVENUE"
	CashExpense          CashTransactionType = "EXPENSE"
	CashWithdrawal       CashTransactionType = "WITHDRAWAL"
	CashDebtTaken        CashTransactionType = "DEBT_TAKEN"
	CashDebtPayment      CashTransactionType = "DEBT_PAYMENT"
	CashManualAdjustment CashTransactionType = "MANUAL_ADJUSTMENT"
)

// CashState is the singleton aggregate holding the authoritative running cash
// balance. It is never recomputed from history; every reversal must apply the
// exact negated amount of the transaction it undoes.
type CashState struct {
	CurrentCash         decimal.Decimal     `json:"currentCash"`
	LastTransactionID   string              `json:"lastTransactionId,omitempty"`
	LastTransactionType CashTransactionType `json:"lastTransactionType,omitempty"`
	LastUpdated         time.Time           `json:"lastUpdated"`
}

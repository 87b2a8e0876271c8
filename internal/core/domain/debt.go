package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus tracks a liability's lifecycle.
type DebtStatus string

const (
	DebtActive     DebtStatus = "ACTIVE"
	DebtPaidOff    DebtStatus = "PAID_OFF"
	DebtDefaulted  DebtStatus = "DEFAULTED"
	DebtRefinanced DebtStatus = "REFINANCED"
)

// Debt is a liability. Taking one is a cash-increasing event (loan received).
// InterestRate is an annual percentage; payments accrue simple daily interest.
// CompoundingFrequency is recorded but not consulted by the payment
// calculation.
type Debt struct {
	RecordMeta
	BranchID             string          `json:"branchId,omitempty"`
	Lender               string          `json:"lender"`
	Description          string          `json:"description,omitempty"`
	PrincipalAmount      decimal.Decimal `json:"principalAmount"`
	CurrentBalance       decimal.Decimal `json:"currentBalance"`
	InterestRate         decimal.Decimal `json:"interestRate"`
	CompoundingFrequency string          `json:"compoundingFrequency,omitempty"`
	TakenDate            time.Time       `json:"takenDate"`
	Status               DebtStatus      `json:"status"`
	TotalInterestPaid    decimal.Decimal `json:"totalInterestPaid"`
	TotalPrincipalPaid   decimal.Decimal `json:"totalPrincipalPaid"`
	LastPaymentDate      *time.Time      `json:"lastPaymentDate,omitempty"`
}

// DebtPayment records one payment against a Debt, split into the interest
// accrued since the previous payment and the principal remainder.
type DebtPayment struct {
	RecordMeta
	DebtID           string          `json:"debtId"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	InterestPortion  decimal.Decimal `json:"interestPortion"`
	PrincipalPortion decimal.Decimal `json:"principalPortion"`
	LateFee          decimal.Decimal `json:"lateFee"`
	PaymentDate      time.Time       `json:"paymentDate"`
	BalanceAfter     decimal.Decimal `json:"balanceAfter"`
	Notes            string          `json:"notes,omitempty"`
}

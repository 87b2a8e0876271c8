package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDebtRequest registers a loan received; taking a debt credits the cash
// ledger with the principal.
type CreateDebtRequest struct {
	BranchID             string          `json:"branchId"`
	Lender               string          `json:"lender" binding:"required"`
	Description          string          `json:"description"`
	PrincipalAmount      decimal.Decimal `json:"principalAmount" binding:"required"`
	InterestRate         decimal.Decimal `json:"interestRate"`
	CompoundingFrequency string          `json:"compoundingFrequency"`
	TakenDate            time.Time       `json:"takenDate"`
}

// CreateDebtPaymentRequest pays down a debt. The interest/principal split is
// computed by the service, never supplied by the caller.
type CreateDebtPaymentRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
	LateFee     decimal.Decimal `json:"lateFee"`
	PaymentDate time.Time       `json:"paymentDate"`
	Notes       string          `json:"notes"`
}

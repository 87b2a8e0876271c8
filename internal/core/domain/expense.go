package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType classifies how an expense is attributed to branches.
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "FIXED"    // recurring, branch-local
	ExpenseVariable ExpenseType = "VARIABLE" // one-off, branch-local
	ExpenseShared   ExpenseType = "SHARED"   // company-wide, distributed across branches
)

// DistributionMethod chooses how a SHARED expense is split across branches.
type DistributionMethod string

const (
	DistributeEqual        DistributionMethod = "EQUAL"
	DistributeProportional DistributionMethod = "PROPORTIONAL"
)

// Expense is an analytically-counted cost; it never touches the cash ledger.
// Recurring expenses spawn monthly children linked by ParentExpenseID, at most
// one per (parent, month, year).
type Expense struct {
	RecordMeta
	BranchID           string             `json:"branchId,omitempty"`
	Type               ExpenseType        `json:"type"`
	Category           string             `json:"category"`
	Description        string             `json:"description,omitempty"`
	Amount             decimal.Decimal    `json:"amount"`
	Date               time.Time          `json:"date"`
	IsRecurring        bool               `json:"isRecurring"`
	ParentExpenseID    string             `json:"parentExpenseId,omitempty"`
	DistributionMethod DistributionMethod `json:"distributionMethod,omitempty"`
	IsActive           bool               `json:"isActive"`
}

// BranchShare is one branch's computed slice of a distributed SHARED expense.
type BranchShare struct {
	BranchID string          `json:"branchId"`
	Amount   decimal.Decimal `json:"amount"`
}

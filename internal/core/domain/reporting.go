package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange bounds a reporting query; From is inclusive, To is exclusive.
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// Contains reports whether t falls inside the range. A zero From or To leaves
// that side unbounded.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && !t.Before(r.To) {
		return false
	}
	return true
}

// FinancialSummary is the per-branch (or company-wide) profit computation.
type FinancialSummary struct {
	BranchID         string          `json:"branchId,omitempty"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	FixedExpenses    decimal.Decimal `json:"fixedExpenses"`
	VariableExpenses decimal.Decimal `json:"variableExpenses"`
	SharedShare      decimal.Decimal `json:"sharedShare"`
	Salaries         decimal.Decimal `json:"salaries"`
	NetProfit        decimal.Decimal `json:"netProfit"`
}

// MonthlyBucket is one (year, month) slice of revenue vs expenses.
type MonthlyBucket struct {
	Year     int             `json:"year"`
	Month    time.Month      `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
}

// CategoryBucket is one expense category's total and share of the in-range total.
type CategoryBucket struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Share    decimal.Decimal `json:"share"`
}

// BranchRanking pairs a branch with its financial summary for top-N reports.
type BranchRanking struct {
	BranchID   string           `json:"branchId"`
	BranchName string           `json:"branchName"`
	Summary    FinancialSummary `json:"summary"`
}

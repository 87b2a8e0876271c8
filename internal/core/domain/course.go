package domain

import "github.com/shopspring/decimal"

// Course belongs to a Branch and carries the list price enrollments start from.
type Course struct {
	RecordMeta
	BranchID    string          `json:"branchId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"isActive"`
}

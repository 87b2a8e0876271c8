package domain

import "github.com/shopspring/decimal"

// Employee is branch-local or global, never both: IsGlobal=true implies an
// empty BranchID. Salaries feed branch cost aggregation.
type Employee struct {
	RecordMeta
	BranchID string          `json:"branchId,omitempty"`
	Name     string          `json:"name"`
	Role     string          `json:"role,omitempty"`
	Salary   decimal.Decimal `json:"salary"`
	IsGlobal bool            `json:"isGlobal"`
	IsActive bool            `json:"isActive"`
}

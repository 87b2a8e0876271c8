package domain

// Student belongs to a Branch.
type Student struct {
	RecordMeta
	BranchID string `json:"branchId"`
	Name     string `json:"name"`
	Phone    string `json:"phone,omitempty"`
	Email    string `json:"email,omitempty"`
	IsActive bool   `json:"isActive"`
}

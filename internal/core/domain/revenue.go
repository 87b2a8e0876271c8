package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue is a cash-increasing event, optionally tied to a course, enrollment
// or student.
type Revenue struct {
	RecordMeta
	BranchID     string          `json:"branchId"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description,omitempty"`
	Date         time.Time       `json:"date"`
	CourseID     string          `json:"courseId,omitempty"`
	EnrollmentID string          `json:"enrollmentId,omitempty"`
	StudentID    string          `json:"studentId,omitempty"`
	IsActive     bool            `json:"isActive"`
}

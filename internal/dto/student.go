package dto

import "github.com/shopspring/decimal"

// CreateStudentRequest defines data for registering a student at a branch.
type CreateStudentRequest struct {
	BranchID string `json:"branchId" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// UpdateStudentRequest carries optional field updates for a student.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// CreateEnrollmentRequest enrolls a student into a course. Exactly one of
// DiscountPercent / DiscountAmount may be supplied; the other is derived.
type CreateEnrollmentRequest struct {
	StudentID       string           `json:"studentId" binding:"required"`
	CourseID        string           `json:"courseId" binding:"required"`
	DiscountPercent *decimal.Decimal `json:"discountPercent"`
	DiscountAmount  *decimal.Decimal `json:"discountAmount"`
}

// UpdateEnrollmentRequest carries status transitions for an enrollment.
type UpdateEnrollmentRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"paymentStatus"`
}

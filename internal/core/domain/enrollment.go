package domain

import "github.com/shopspring/decimal"

// EnrollmentStatus tracks the lifecycle of a student's enrollment in a course.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "ACTIVE"
	EnrollmentCompleted EnrollmentStatus = "COMPLETED"
	EnrollmentDropped   EnrollmentStatus = "DROPPED"
	EnrollmentPending   EnrollmentStatus = "PENDING"
)

// PaymentStatus tracks how much of an enrollment's final price has been settled.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPending PaymentStatus = "PENDING"
	PaymentOverdue PaymentStatus = "OVERDUE"
)

// Enrollment links a Student to a Course. DiscountPercent and DiscountAmount
// are mutually derivable from OriginalPrice; FinalPrice = OriginalPrice - DiscountAmount.
type Enrollment struct {
	RecordMeta
	StudentID       string           `json:"studentId"`
	CourseID        string           `json:"courseId"`
	BranchID        string           `json:"branchId"`
	OriginalPrice   decimal.Decimal  `json:"originalPrice"`
	DiscountPercent decimal.Decimal  `json:"discountPercent"`
	DiscountAmount  decimal.Decimal  `json:"discountAmount"`
	FinalPrice      decimal.Decimal  `json:"finalPrice"`
	Status          EnrollmentStatus `json:"status"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"`
}

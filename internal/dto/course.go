package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
)

// CreateCourseRequest defines data for creating a course under a branch.
type CreateCourseRequest struct {
	BranchID    string          `json:"branchId" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// UpdateCourseRequest carries optional field updates for a course.
type UpdateCourseRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
}

// CreateClassRequest defines data for scheduling a class of a course.
// BranchID is inherited from the course, never supplied by the caller.
type CreateClassRequest struct {
	CourseID  string                `json:"courseId" binding:"required"`
	TeacherID string                `json:"teacherId" binding:"required"`
	Name      string                `json:"name" binding:"required"`
	Schedule  []domain.ScheduleSlot `json:"schedule" binding:"required,min=1,dive"`
	StartDate time.Time             `json:"startDate" binding:"required"`
	EndDate   time.Time             `json:"endDate" binding:"required"`
}

// UpdateClassRequest carries optional field updates for a class.
type UpdateClassRequest struct {
	TeacherID *string                `json:"teacherId"`
	Name      *string                `json:"name"`
	Schedule  *[]domain.ScheduleSlot `json:"schedule"`
	StartDate *time.Time             `json:"startDate"`
	EndDate   *time.Time             `json:"endDate"`
}

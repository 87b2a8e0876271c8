package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

var oneHundred = decimal.NewFromInt(100)

// enrollmentService links students to courses with derived discount pricing.
type enrollmentService struct {
	enrollments portsrepo.RecordRepository[domain.Enrollment]
	students    portsrepo.RecordRepository[domain.Student]
	courses     portsrepo.RecordRepository[domain.Course]
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(enrollments portsrepo.RecordRepository[domain.Enrollment], students portsrepo.RecordRepository[domain.Student], courses portsrepo.RecordRepository[domain.Course]) portssvc.EnrollmentSvcFacade {
	return &enrollmentService{enrollments: enrollments, students: students, courses: courses}
}

var _ portssvc.EnrollmentSvcFacade = (*enrollmentService)(nil)

func (s *enrollmentService) CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) (*domain.Enrollment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if !student.IsActive {
		return nil, fmt.Errorf("%w: student %s is inactive", apperrors.ErrValidation, req.StudentID)
	}
	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, fmt.Errorf("%w: course %s is inactive", apperrors.ErrValidation, req.CourseID)
	}
	if req.DiscountPercent != nil && req.DiscountAmount != nil {
		return nil, fmt.Errorf("%w: supply discount percent or amount, not both", apperrors.ErrValidation)
	}

	// One discount figure is given; the other is derived from the course price.
	originalPrice := course.Price
	discountPercent := decimal.Zero
	discountAmount := decimal.Zero
	switch {
	case req.DiscountPercent != nil:
		discountPercent = *req.DiscountPercent
		discountAmount = originalPrice.Mul(discountPercent).Div(oneHundred)
	case req.DiscountAmount != nil:
		discountAmount = *req.DiscountAmount
		if originalPrice.IsPositive() {
			discountPercent = discountAmount.Mul(oneHundred).Div(originalPrice)
		}
	}
	finalPrice := originalPrice.Sub(discountAmount)
	if finalPrice.IsNegative() {
		return nil, fmt.Errorf("%w: discount exceeds course price", apperrors.ErrValidation)
	}

	enrollment, err := s.enrollments.Create(ctx, domain.Enrollment{
		StudentID:       req.StudentID,
		CourseID:        req.CourseID,
		BranchID:        course.BranchID,
		OriginalPrice:   originalPrice,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		FinalPrice:      finalPrice,
		Status:          domain.EnrollmentActive,
		PaymentStatus:   domain.PaymentPending,
	})
	if err != nil {
		logger.Error("Failed to save enrollment", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save enrollment: %w", err)
	}

	logger.Info("Enrollment created", slog.String("enrollment_id", enrollment.ID), slog.String("student_id", req.StudentID), slog.String("course_id", req.CourseID))
	return enrollment, nil
}

func (s *enrollmentService) GetEnrollmentByID(ctx context.Context, id string) (*domain.Enrollment, error) {
	return s.enrollments.FindByID(ctx, id)
}

func (s *enrollmentService) ListEnrollments(ctx context.Context, studentID, courseID string) ([]domain.Enrollment, error) {
	return s.enrollments.FindBy(ctx, func(e domain.Enrollment) bool {
		if studentID != "" && e.StudentID != studentID {
			return false
		}
		if courseID != "" && e.CourseID != courseID {
			return false
		}
		return true
	})
}

func validEnrollmentStatus(s string) bool {
	switch domain.EnrollmentStatus(s) {
	case domain.EnrollmentActive, domain.EnrollmentCompleted, domain.EnrollmentDropped, domain.EnrollmentPending:
		return true
	}
	return false
}

func validPaymentStatus(s string) bool {
	switch domain.PaymentStatus(s) {
	case domain.PaymentPaid, domain.PaymentPartial, domain.PaymentPending, domain.PaymentOverdue:
		return true
	}
	return false
}

func (s *enrollmentService) UpdateEnrollment(ctx context.Context, id string, req dto.UpdateEnrollmentRequest) (*domain.Enrollment, error) {
	if req.Status != nil && !validEnrollmentStatus(*req.Status) {
		return nil, fmt.Errorf("%w: unknown enrollment status %q", apperrors.ErrValidation, *req.Status)
	}
	if req.PaymentStatus != nil && !validPaymentStatus(*req.PaymentStatus) {
		return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, *req.PaymentStatus)
	}
	return s.enrollments.Update(ctx, id, func(e *domain.Enrollment) {
		if req.Status != nil {
			e.Status = domain.EnrollmentStatus(*req.Status)
		}
		if req.PaymentStatus != nil {
			e.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
		}
	})
}

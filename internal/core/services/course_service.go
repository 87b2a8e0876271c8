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

// courseService provides validated CRUD over courses.
type courseService struct {
	courses  portsrepo.RecordRepository[domain.Course]
	branches portsrepo.RecordRepository[domain.Branch]
}

// NewCourseService creates a new CourseService.
func NewCourseService(courses portsrepo.RecordRepository[domain.Course], branches portsrepo.RecordRepository[domain.Branch]) portssvc.CourseSvcFacade {
	return &courseService{courses: courses, branches: branches}
}

var _ portssvc.CourseSvcFacade = (*courseService)(nil)

func (s *courseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*domain.Course, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
		return nil, err
	}
	if req.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: course price must not be negative", apperrors.ErrValidation)
	}

	course, err := s.courses.Create(ctx, domain.Course{
		BranchID:    req.BranchID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		IsActive:    true,
	})
	if err != nil {
		logger.Error("Failed to save course", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save course: %w", err)
	}

	logger.Info("Course created", slog.String("course_id", course.ID), slog.String("branch_id", course.BranchID))
	return course, nil
}

func (s *courseService) GetCourseByID(ctx context.Context, id string) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

func (s *courseService) ListCourses(ctx context.Context, branchID string) ([]domain.Course, error) {
	return s.courses.FindBy(ctx, func(c domain.Course) bool {
		return c.IsActive && (branchID == "" || c.BranchID == branchID)
	})
}

func (s *courseService) UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*domain.Course, error) {
	if req.Price != nil && req.Price.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: course price must not be negative", apperrors.ErrValidation)
	}
	return s.courses.Update(ctx, id, func(c *domain.Course) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Price != nil {
			c.Price = *req.Price
		}
	})
}

func (s *courseService) DeactivateCourse(ctx context.Context, id string) error {
	_, err := s.courses.Update(ctx, id, func(c *domain.Course) {
		c.IsActive = false
	})
	return err
}

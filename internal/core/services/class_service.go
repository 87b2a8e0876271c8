package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orbisedu/academy_mgmt_app/internal/apperrors"
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

var (
	ErrScheduleOrder = errors.New("schedule slot start time must be before end time")
	ErrDateOrder     = errors.New("class start date must be before end date")
)

// classService provides validated CRUD over scheduled classes.
type classService struct {
	classes   portsrepo.RecordRepository[domain.Class]
	courses   portsrepo.RecordRepository[domain.Course]
	employees portsrepo.RecordRepository[domain.Employee]
}

// NewClassService creates a new ClassService.
func NewClassService(classes portsrepo.RecordRepository[domain.Class], courses portsrepo.RecordRepository[domain.Course], employees portsrepo.RecordRepository[domain.Employee]) portssvc.ClassSvcFacade {
	return &classService{classes: classes, courses: courses, employees: employees}
}

var _ portssvc.ClassSvcFacade = (*classService)(nil)

// validateSchedule checks slot time ordering. Times are zero-padded "HH:MM"
// strings, so lexical comparison is chronological.
func validateSchedule(schedule []domain.ScheduleSlot) error {
	for _, slot := range schedule {
		if slot.StartTime >= slot.EndTime {
			return fmt.Errorf("%w: %s %s-%s", ErrScheduleOrder, slot.Day, slot.StartTime, slot.EndTime)
		}
	}
	return nil
}

func (s *classService) requireActiveTeacher(ctx context.Context, teacherID string) (*domain.Employee, error) {
	teacher, err := s.employees.FindByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	if !teacher.IsActive {
		return nil, fmt.Errorf("%w: teacher %s is not active", apperrors.ErrValidation, teacherID)
	}
	return teacher, nil
}

func (s *classService) CreateClass(ctx context.Context, req dto.CreateClassRequest) (*domain.Class, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	course, err := s.courses.FindByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, fmt.Errorf("%w: course %s is inactive", apperrors.ErrValidation, req.CourseID)
	}
	if _, err := s.requireActiveTeacher(ctx, req.TeacherID); err != nil {
		return nil, err
	}
	if err := validateSchedule(req.Schedule); err != nil {
		return nil, err
	}
	if !req.StartDate.Before(req.EndDate) {
		return nil, ErrDateOrder
	}

	// The class inherits its branch from the course.
	class, err := s.classes.Create(ctx, domain.Class{
		CourseID:  req.CourseID,
		BranchID:  course.BranchID,
		TeacherID: req.TeacherID,
		Name:      req.Name,
		Schedule:  req.Schedule,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		IsActive:  true,
	})
	if err != nil {
		logger.Error("Failed to save class", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save class: %w", err)
	}

	logger.Info("Class created", slog.String("class_id", class.ID), slog.String("course_id", class.CourseID))
	return class, nil
}

func (s *classService) GetClassByID(ctx context.Context, id string) (*domain.Class, error) {
	return s.classes.FindByID(ctx, id)
}

func (s *classService) ListClasses(ctx context.Context, courseID string) ([]domain.Class, error) {
	return s.classes.FindBy(ctx, func(c domain.Class) bool {
		return c.IsActive && (courseID == "" || c.CourseID == courseID)
	})
}

func (s *classService) UpdateClass(ctx context.Context, id string, req dto.UpdateClassRequest) (*domain.Class, error) {
	if req.TeacherID != nil {
		if _, err := s.requireActiveTeacher(ctx, *req.TeacherID); err != nil {
			return nil, err
		}
	}
	if req.Schedule != nil {
		if err := validateSchedule(*req.Schedule); err != nil {
			return nil, err
		}
	}

	existing, err := s.classes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	startDate, endDate := existing.StartDate, existing.EndDate
	if req.StartDate != nil {
		startDate = *req.StartDate
	}
	if req.EndDate != nil {
		endDate = *req.EndDate
	}
	if !startDate.Before(endDate) {
		return nil, ErrDateOrder
	}

	return s.classes.Update(ctx, id, func(c *domain.Class) {
		if req.TeacherID != nil {
			c.TeacherID = *req.TeacherID
		}
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Schedule != nil {
			c.Schedule = *req.Schedule
		}
		c.StartDate = startDate
		c.EndDate = endDate
	})
}

func (s *classService) DeactivateClass(ctx context.Context, id string) error {
	_, err := s.classes.Update(ctx, id, func(c *domain.Class) {
		c.IsActive = false
	})
	return err
}

package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
)

// studentService provides validated CRUD over students.
type studentService struct {
	students portsrepo.RecordRepository[domain.Student]
	branches portsrepo.RecordRepository[domain.Branch]
}

// NewStudentService creates a new StudentService.
func NewStudentService(students portsrepo.RecordRepository[domain.Student], branches portsrepo.RecordRepository[domain.Branch]) portssvc.StudentSvcFacade {
	return &studentService{students: students, branches: branches}
}

var _ portssvc.StudentSvcFacade = (*studentService)(nil)

func (s *studentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := requireActiveBranch(ctx, s.branches, req.BranchID); err != nil {
		return nil, err
	}

	student, err := s.students.Create(ctx, domain.Student{
		BranchID: req.BranchID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
	})
	if err != nil {
		logger.Error("Failed to save student", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save student: %w", err)
	}

	logger.Info("Student created", slog.String("student_id", student.ID), slog.String("branch_id", student.BranchID))
	return student, nil
}

func (s *studentService) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	return s.students.FindByID(ctx, id)
}

func (s *studentService) ListStudents(ctx context.Context, branchID string) ([]domain.Student, error) {
	return s.students.FindBy(ctx, func(st domain.Student) bool {
		return st.IsActive && (branchID == "" || st.BranchID == branchID)
	})
}

func (s *studentService) UpdateStudent(ctx context.Context, id string, req dto.UpdateStudentRequest) (*domain.Student, error) {
	return s.students.Update(ctx, id, func(st *domain.Student) {
		if req.Name != nil {
			st.Name = *req.Name
		}
		if req.Phone != nil {
			st.Phone = *req.Phone
		}
		if req.Email != nil {
			st.Email = *req.Email
		}
	})
}

func (s *studentService) DeactivateStudent(ctx context.Context, id string) error {
	_, err := s.students.Update(ctx, id, func(st *domain.Student) {
		st.IsActive = false
	})
	return err
}

package services

import (
	"context"

	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// BranchSvcFacade manages organizational branches.
type BranchSvcFacade interface {
	CreateBranch(ctx context.Context, req dto.CreateBranchRequest) (*domain.Branch, error)
	GetBranchByID(ctx context.Context, id string) (*domain.Branch, error)
	ListBranches(ctx context.Context, includeInactive bool) ([]domain.Branch, error)
	UpdateBranch(ctx context.Context, id string, req dto.UpdateBranchRequest) (*domain.Branch, error)
	// DeactivateBranch soft-deletes; repeating it on an inactive branch is a no-op.
	DeactivateBranch(ctx context.Context, id string) error
}

// CourseSvcFacade manages courses under branches.
type CourseSvcFacade interface {
	CreateCourse(ctx context.Context, req dto.CreateCourseRequest) (*domain.Course, error)
	GetCourseByID(ctx context.Context, id string) (*domain.Course, error)
	ListCourses(ctx context.Context, branchID string) ([]domain.Course, error)
	UpdateCourse(ctx context.Context, id string, req dto.UpdateCourseRequest) (*domain.Course, error)
	DeactivateCourse(ctx context.Context, id string) error
}

// ClassSvcFacade manages scheduled classes of courses.
type ClassSvcFacade interface {
	CreateClass(ctx context.Context, req dto.CreateClassRequest) (*domain.Class, error)
	GetClassByID(ctx context.Context, id string) (*domain.Class, error)
	ListClasses(ctx context.Context, courseID string) ([]domain.Class, error)
	UpdateClass(ctx context.Context, id string, req dto.UpdateClassRequest) (*domain.Class, error)
	DeactivateClass(ctx context.Context, id string) error
}

// StudentSvcFacade manages students.
type StudentSvcFacade interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*domain.Student, error)
	GetStudentByID(ctx context.Context, id string) (*domain.Student, error)
	ListStudents(ctx context.Context, branchID string) ([]domain.Student, error)
	UpdateStudent(ctx context.Context, id string, req dto.UpdateStudentRequest) (*domain.Student, error)
	DeactivateStudent(ctx context.Context, id string) error
}

// EnrollmentSvcFacade links students to courses with derived pricing.
type EnrollmentSvcFacade interface {
	CreateEnrollment(ctx context.Context, req dto.CreateEnrollmentRequest) (*domain.Enrollment, error)
	GetEnrollmentByID(ctx context.Context, id string) (*domain.Enrollment, error)
	ListEnrollments(ctx context.Context, studentID, courseID string) ([]domain.Enrollment, error)
	UpdateEnrollment(ctx context.Context, id string, req dto.UpdateEnrollmentRequest) (*domain.Enrollment, error)
}

// EmployeeSvcFacade manages branch-local and global employees.
type EmployeeSvcFacade interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, id string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, branchID string) ([]domain.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	DeactivateEmployee(ctx context.Context, id string) error
}

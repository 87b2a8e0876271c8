package services

import (
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
)

// NewServiceContainer wires every service over the repository provider.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Branch:     NewBranchService(repos.Branches),
		Course:     NewCourseService(repos.Courses, repos.Branches),
		Class:      NewClassService(repos.Classes, repos.Courses, repos.Employees),
		Student:    NewStudentService(repos.Students, repos.Branches),
		Enrollment: NewEnrollmentService(repos.Enrollments, repos.Students, repos.Courses),
		Employee:   NewEmployeeService(repos.Employees, repos.Branches),
		Revenue:    NewRevenueService(repos.Revenues, repos.Branches, repos.CashLedger),
		Expense:    NewExpenseService(repos.Expenses, repos.Branches, repos.Revenues),
		Debt:       NewDebtService(repos.Debts, repos.DebtPayments, repos.Branches, repos.CashLedger),
		Withdrawal: NewWithdrawalService(repos.Withdrawals, repos.CashLedger),
		Product:    NewProductService(repos.Products, repos.ProductSales, repos.Branches, repos.Revenues, repos.CashLedger),
		Cash:       NewCashService(repos.CashLedger),
		Reporting:  NewReportingService(repos.Revenues, repos.Expenses, repos.Employees, repos.Branches),
		User:       NewUserService(repos.Users, repos.Branches),
	}
}

package repositories

import "github.com/orbisedu/academy_mgmt_app/internal/core/domain"

// RepositoryProvider holds every repository the service container needs.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	Branches     RecordRepository[domain.Branch]
	Courses      RecordRepository[domain.Course]
	Classes      RecordRepository[domain.Class]
	Students     RecordRepository[domain.Student]
	Enrollments  RecordRepository[domain.Enrollment]
	Employees    RecordRepository[domain.Employee]
	Revenues     RecordRepository[domain.Revenue]
	Expenses     RecordRepository[domain.Expense]
	Debts        RecordRepository[domain.Debt]
	DebtPayments RecordRepository[domain.DebtPayment]
	Withdrawals  RecordRepository[domain.Withdrawal]
	Products     RecordRepository[domain.Product]
	ProductSales RecordRepository[domain.ProductSale]
	Users        RecordRepository[domain.User]
	CashLedger   CashLedgerRepository
}

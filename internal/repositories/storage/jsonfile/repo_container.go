package jsonfile

import (
	"github.com/orbisedu/academy_mgmt_app/internal/core/domain"
	portsrepo "github.com/orbisedu/academy_mgmt_app/internal/core/ports/repositories"
)

// Collection keys double as file basenames; names are stable lowercase plurals.
const (
	usersCollection        = "users"
	branchesCollection     = "branches"
	coursesCollection      = "courses"
	classesCollection      = "classes"
	studentsCollection     = "students"
	enrollmentsCollection  = "enrollments"
	employeesCollection    = "employees"
	revenuesCollection     = "revenues"
	expensesCollection     = "expenses"
	debtsCollection        = "debts"
	debtPaymentsCollection = "debtPayments"
	withdrawalsCollection  = "withdrawals"
	productsCollection     = "products"
	productSalesCollection = "productSales"
)

// NewRepositoryProvider wires every collection of the store into the typed
// repository set services consume.
func NewRepositoryProvider(store *Store) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Branches:     NewCollection[domain.Branch](store, branchesCollection),
		Courses:      NewCollection[domain.Course](store, coursesCollection),
		Classes:      NewCollection[domain.Class](store, classesCollection),
		Students:     NewCollection[domain.Student](store, studentsCollection),
		Enrollments:  NewCollection[domain.Enrollment](store, enrollmentsCollection),
		Employees:    NewCollection[domain.Employee](store, employeesCollection),
		Revenues:     NewCollection[domain.Revenue](store, revenuesCollection),
		Expenses:     NewCollection[domain.Expense](store, expensesCollection),
		Debts:        NewCollection[domain.Debt](store, debtsCollection),
		DebtPayments: NewCollection[domain.DebtPayment](store, debtPaymentsCollection),
		Withdrawals:  NewCollection[domain.Withdrawal](store, withdrawalsCollection),
		Products:     NewCollection[domain.Product](store, productsCollection),
		ProductSales: NewCollection[domain.ProductSale](store, productSalesCollection),
		Users:        NewCollection[domain.User](store, usersCollection),
		CashLedger:   NewCashLedgerRepository(store),
	}
}

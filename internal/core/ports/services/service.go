package services

// ServiceContainer holds all service facades the handlers consume.
type ServiceContainer struct {
	Branch     BranchSvcFacade
	Course     CourseSvcFacade
	Class      ClassSvcFacade
	Student    StudentSvcFacade
	Enrollment EnrollmentSvcFacade
	Employee   EmployeeSvcFacade
	Revenue    RevenueSvcFacade
	Expense    ExpenseSvcFacade
	Debt       DebtSvcFacade
	Withdrawal WithdrawalSvcFacade
	Product    ProductSvcFacade
	Cash       CashSvcFacade
	Reporting  ReportingSvcFacade
	User       UserSvcFacade
}

package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/middleware"
	"github.com/orbisedu/academy_mgmt_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	// Everything under /api/v1 requires a valid bearer token
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.User)
	registerBranchRoutes(v1, services.Branch)
	registerCourseRoutes(v1, services.Course, services.Class)
	registerStudentRoutes(v1, services.Student, services.Enrollment)
	registerEmployeeRoutes(v1, services.Employee)
	registerRevenueRoutes(v1, services.Revenue)
	registerExpenseRoutes(v1, services.Expense)
	registerDebtRoutes(v1, services.Debt)
	registerWithdrawalRoutes(v1, services.Withdrawal)
	registerProductRoutes(v1, services.Product)
	registerCashRoutes(v1, services.Cash)
	registerReportingRoutes(v1, services.Reporting)
}

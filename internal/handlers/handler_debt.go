package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// debtHandler handles HTTP requests for debts and their payments.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := &debtHandler{debtService: debtService}

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:debt_id", h.getDebt)
		debts.POST("/:debt_id/payments", h.createPayment)
		debts.GET("/:debt_id/payments", h.listPayments)
		debts.DELETE("/:debt_id/payments/:payment_id", h.deletePayment)
	}
}

func (h *debtHandler) createDebt(c *gin.Context) {
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, debt)
}

func (h *debtHandler) listDebts(c *gin.Context) {
	debts, err := h.debtService.ListDebts(c.Request.Context(), c.Query("branch_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debts)
}

func (h *debtHandler) getDebt(c *gin.Context) {
	debt, err := h.debtService.GetDebtByID(c.Request.Context(), c.Param("debt_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, debt)
}

func (h *debtHandler) createPayment(c *gin.Context) {
	var req dto.CreateDebtPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	payment, err := h.debtService.CreatePayment(c.Request.Context(), c.Param("debt_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *debtHandler) listPayments(c *gin.Context) {
	payments, err := h.debtService.ListPayments(c.Request.Context(), c.Param("debt_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *debtHandler) deletePayment(c *gin.Context) {
	if err := h.debtService.DeletePayment(c.Request.Context(), c.Param("debt_id"), c.Param("payment_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

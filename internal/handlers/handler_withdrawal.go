package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// withdrawalHandler handles HTTP requests related to stakeholder withdrawals.
type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := &withdrawalHandler{withdrawalService: withdrawalService}

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createWithdrawal)
		withdrawals.GET("", h.listWithdrawals)
		withdrawals.GET("/:withdrawal_id", h.getWithdrawal)
		withdrawals.PUT("/:withdrawal_id", h.updateWithdrawal)
		withdrawals.DELETE("/:withdrawal_id", h.removeWithdrawal)
	}
}

func (h *withdrawalHandler) createWithdrawal(c *gin.Context) {
	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	withdrawal, err := h.withdrawalService.CreateWithdrawal(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, withdrawal)
}

func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	withdrawals, err := h.withdrawalService.ListWithdrawals(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawals)
}

func (h *withdrawalHandler) getWithdrawal(c *gin.Context) {
	withdrawal, err := h.withdrawalService.GetWithdrawalByID(c.Request.Context(), c.Param("withdrawal_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

func (h *withdrawalHandler) updateWithdrawal(c *gin.Context) {
	var req dto.UpdateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	withdrawal, err := h.withdrawalService.UpdateWithdrawal(c.Request.Context(), c.Param("withdrawal_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

func (h *withdrawalHandler) removeWithdrawal(c *gin.Context) {
	if err := h.withdrawalService.RemoveWithdrawal(c.Request.Context(), c.Param("withdrawal_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

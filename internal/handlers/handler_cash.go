package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// cashHandler exposes the cash ledger state and manual corrections.
type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

func registerCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvcFacade) {
	h := &cashHandler{cashService: cashService}

	cash := rg.Group("/cash")
	{
		cash.GET("", h.getState)
		cash.POST("/adjustments", h.manualAdjust)
	}
}

func (h *cashHandler) getState(c *gin.Context) {
	state, err := h.cashService.GetState(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

func (h *cashHandler) manualAdjust(c *gin.Context) {
	var req dto.ManualCashAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	state, err := h.cashService.ManualAdjust(c.Request.Context(), req.Amount, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

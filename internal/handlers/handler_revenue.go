package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// revenueHandler handles HTTP requests related to revenues.
type revenueHandler struct {
	revenueService portssvc.RevenueSvcFacade
}

func registerRevenueRoutes(rg *gin.RouterGroup, revenueService portssvc.RevenueSvcFacade) {
	h := &revenueHandler{revenueService: revenueService}

	revenues := rg.Group("/revenues")
	{
		revenues.POST("", h.createRevenue)
		revenues.GET("", h.listRevenues)
		revenues.GET("/:revenue_id", h.getRevenue)
		revenues.DELETE("/:revenue_id", h.removeRevenue)
	}
}

func (h *revenueHandler) createRevenue(c *gin.Context) {
	var req dto.CreateRevenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	revenue, err := h.revenueService.CreateRevenue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, revenue)
}

func (h *revenueHandler) listRevenues(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	revenues, err := h.revenueService.ListRevenues(c.Request.Context(), c.Query("branch_id"), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenues)
}

func (h *revenueHandler) getRevenue(c *gin.Context) {
	revenue, err := h.revenueService.GetRevenueByID(c.Request.Context(), c.Param("revenue_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

func (h *revenueHandler) removeRevenue(c *gin.Context) {
	if err := h.revenueService.RemoveRevenue(c.Request.Context(), c.Param("revenue_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

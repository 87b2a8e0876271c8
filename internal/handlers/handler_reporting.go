package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
)

// reportingHandler serves the derived analytics endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: reportingService}

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.financialSummary)
		reports.GET("/monthly", h.monthlyBreakdown)
		reports.GET("/categories", h.categoryBreakdown)
		reports.GET("/top-branches", h.topBranches)
	}
}

func (h *reportingHandler) financialSummary(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), c.Query("branch_id"), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *reportingHandler) monthlyBreakdown(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	buckets, err := h.reportingService.MonthlyBreakdown(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *reportingHandler) categoryBreakdown(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	buckets, err := h.reportingService.CategoryBreakdown(c.Request.Context(), rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *reportingHandler) topBranches(c *gin.Context) {
	rng, err := parseDateRange(c)
	if err != nil {
		respondError(c, err)
		return
	}
	n := 0
	if raw := c.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid n: " + raw})
			return
		}
		n = parsed
	}
	rankings, err := h.reportingService.TopBranches(c.Request.Context(), n, rng)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rankings)
}

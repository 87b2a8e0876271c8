package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// branchHandler handles HTTP requests related to branches.
type branchHandler struct {
	branchService portssvc.BranchSvcFacade
}

func registerBranchRoutes(rg *gin.RouterGroup, branchService portssvc.BranchSvcFacade) {
	h := &branchHandler{branchService: branchService}

	branches := rg.Group("/branches")
	{
		branches.POST("", h.createBranch)
		branches.GET("", h.listBranches)
		branches.GET("/:branch_id", h.getBranch)
		branches.PUT("/:branch_id", h.updateBranch)
		branches.DELETE("/:branch_id", h.deactivateBranch)
	}
}

func (h *branchHandler) createBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	branch, err := h.branchService.CreateBranch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, branch)
}

func (h *branchHandler) listBranches(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	branches, err := h.branchService.ListBranches(c.Request.Context(), includeInactive)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (h *branchHandler) getBranch(c *gin.Context) {
	branch, err := h.branchService.GetBranchByID(c.Request.Context(), c.Param("branch_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *branchHandler) updateBranch(c *gin.Context) {
	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	branch, err := h.branchService.UpdateBranch(c.Request.Context(), c.Param("branch_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (h *branchHandler) deactivateBranch(c *gin.Context) {
	if err := h.branchService.DeactivateBranch(c.Request.Context(), c.Param("branch_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

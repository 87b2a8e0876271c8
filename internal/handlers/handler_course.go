package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// courseHandler handles HTTP requests for courses and their classes.
type courseHandler struct {
	courseService portssvc.CourseSvcFacade
	classService  portssvc.ClassSvcFacade
}

func registerCourseRoutes(rg *gin.RouterGroup, courseService portssvc.CourseSvcFacade, classService portssvc.ClassSvcFacade) {
	h := &courseHandler{courseService: courseService, classService: classService}

	courses := rg.Group("/courses")
	{
		courses.POST("", h.createCourse)
		courses.GET("", h.listCourses)
		courses.GET("/:course_id", h.getCourse)
		courses.PUT("/:course_id", h.updateCourse)
		courses.DELETE("/:course_id", h.deactivateCourse)
		courses.GET("/:course_id/classes", h.listClasses)
	}

	classes := rg.Group("/classes")
	{
		classes.POST("", h.createClass)
		classes.GET("/:class_id", h.getClass)
		classes.PUT("/:class_id", h.updateClass)
		classes.DELETE("/:class_id", h.deactivateClass)
	}
}

func (h *courseHandler) createCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	course, err := h.courseService.CreateCourse(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *courseHandler) listCourses(c *gin.Context) {
	courses, err := h.courseService.ListCourses(c.Request.Context(), c.Query("branch_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *courseHandler) getCourse(c *gin.Context) {
	course, err := h.courseService.GetCourseByID(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *courseHandler) updateCourse(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	course, err := h.courseService.UpdateCourse(c.Request.Context(), c.Param("course_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *courseHandler) deactivateCourse(c *gin.Context) {
	if err := h.courseService.DeactivateCourse(c.Request.Context(), c.Param("course_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *courseHandler) createClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	class, err := h.classService.CreateClass(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *courseHandler) listClasses(c *gin.Context) {
	classes, err := h.classService.ListClasses(c.Request.Context(), c.Param("course_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *courseHandler) getClass(c *gin.Context) {
	class, err := h.classService.GetClassByID(c.Request.Context(), c.Param("class_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *courseHandler) updateClass(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	class, err := h.classService.UpdateClass(c.Request.Context(), c.Param("class_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *courseHandler) deactivateClass(c *gin.Context) {
	if err := h.classService.DeactivateClass(c.Request.Context(), c.Param("class_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

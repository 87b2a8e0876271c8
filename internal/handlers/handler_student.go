package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/orbisedu/academy_mgmt_app/internal/core/ports/services"
	"github.com/orbisedu/academy_mgmt_app/internal/dto"
)

// studentHandler handles HTTP requests for students and enrollments.
type studentHandler struct {
	studentService    portssvc.StudentSvcFacade
	enrollmentService portssvc.EnrollmentSvcFacade
}

func registerStudentRoutes(rg *gin.RouterGroup, studentService portssvc.StudentSvcFacade, enrollmentService portssvc.EnrollmentSvcFacade) {
	h := &studentHandler{studentService: studentService, enrollmentService: enrollmentService}

	students := rg.Group("/students")
	{
		students.POST("", h.createStudent)
		students.GET("", h.listStudents)
		students.GET("/:student_id", h.getStudent)
		students.PUT("/:student_id", h.updateStudent)
		students.DELETE("/:student_id", h.deactivateStudent)
	}

	enrollments := rg.Group("/enrollments")
	{
		enrollments.POST("", h.createEnrollment)
		enrollments.GET("", h.listEnrollments)
		enrollments.GET("/:enrollment_id", h.getEnrollment)
		enrollments.PUT("/:enrollment_id", h.updateEnrollment)
	}
}

func (h *studentHandler) createStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	student, err := h.studentService.CreateStudent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, student)
}

func (h *studentHandler) listStudents(c *gin.Context) {
	students, err := h.studentService.ListStudents(c.Request.Context(), c.Query("branch_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, students)
}

func (h *studentHandler) getStudent(c *gin.Context) {
	student, err := h.studentService.GetStudentByID(c.Request.Context(), c.Param("student_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *studentHandler) updateStudent(c *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	student, err := h.studentService.UpdateStudent(c.Request.Context(), c.Param("student_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, student)
}

func (h *studentHandler) deactivateStudent(c *gin.Context) {
	if err := h.studentService.DeactivateStudent(c.Request.Context(), c.Param("student_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *studentHandler) createEnrollment(c *gin.Context) {
	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	enrollment, err := h.enrollmentService.CreateEnrollment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, enrollment)
}

func (h *studentHandler) listEnrollments(c *gin.Context) {
	enrollments, err := h.enrollmentService.ListEnrollments(c.Request.Context(), c.Query("student_id"), c.Query("course_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollments)
}

func (h *studentHandler) getEnrollment(c *gin.Context) {
	enrollment, err := h.enrollmentService.GetEnrollmentByID(c.Request.Context(), c.Param("enrollment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

func (h *studentHandler) updateEnrollment(c *gin.Context) {
	var req dto.UpdateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	enrollment, err := h.enrollmentService.UpdateEnrollment(c.Request.Context(), c.Param("enrollment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrollment)
}

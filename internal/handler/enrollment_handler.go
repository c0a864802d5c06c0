package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// EnrollmentHandler exposes enrollment endpoints.
type EnrollmentHandler struct {
	enrollments *service.EnrollmentService
}

// NewEnrollmentHandler constructs the enrollment handler.
func NewEnrollmentHandler(enrollments *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

// List returns enrollments, optionally filtered by student and course.
func (h *EnrollmentHandler) List(c *gin.Context) {
	studentID, err := parseOptionalIDQuery(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	courseID, err := parseOptionalIDQuery(c, "course_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	enrollments, err := h.enrollments.List(c.Request.Context(), models.EnrollmentFilter{
		StudentID: studentID,
		CourseID:  courseID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, enrollments)
}

// Create enrolls a student in a course.
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req models.EnrollmentRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	enrollment, err := h.enrollments.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, enrollment)
}

// Delete removes an enrollment.
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.enrollments.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

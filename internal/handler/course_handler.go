package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// CourseHandler exposes course endpoints.
type CourseHandler struct {
	courses *service.CourseService
}

// NewCourseHandler constructs the course handler.
func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List returns courses, optionally filtered by teacher and published flag.
func (h *CourseHandler) List(c *gin.Context) {
	teacherID, err := parseOptionalIDQuery(c, "teacher_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	publishedOnly, _ := strconv.ParseBool(c.DefaultQuery("published_only", "false"))
	courses, err := h.courses.List(c.Request.Context(), models.CourseFilter{
		TeacherID:     teacherID,
		PublishedOnly: publishedOnly,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, courses)
}

// Get returns one course with the teacher name inlined.
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Create registers a new unpublished course for the teacher named in the
// query string.
func (h *CourseHandler) Create(c *gin.Context) {
	teacherID, err := parseIDQuery(c, "teacher_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Create(c.Request.Context(), teacherID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// Update replaces the editable course fields.
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Publish makes a course visible to students.
func (h *CourseHandler) Publish(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Publish(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, course)
}

// Delete removes a course and its dependents.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

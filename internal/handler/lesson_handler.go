package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// LessonHandler exposes lesson endpoints.
type LessonHandler struct {
	lessons *service.LessonService
}

// NewLessonHandler constructs the lesson handler.
func NewLessonHandler(lessons *service.LessonService) *LessonHandler {
	return &LessonHandler{lessons: lessons}
}

// ListByCourse returns a course's lessons in order-index order.
func (h *LessonHandler) ListByCourse(c *gin.Context) {
	courseID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	lessons, err := h.lessons.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, lessons)
}

// Get returns one lesson.
func (h *LessonHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	lesson, err := h.lessons.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, lesson)
}

// Create adds a lesson to a course.
func (h *LessonHandler) Create(c *gin.Context) {
	var req models.LessonRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	lesson, err := h.lessons.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, lesson)
}

type updateLessonRequest struct {
	Title   string            `json:"title" binding:"required"`
	Kind    models.LessonKind `json:"lesson_type" binding:"required"`
	Content string            `json:"content" binding:"required"`
	Order   int               `json:"order"`
}

// Update replaces the editable lesson fields.
func (h *LessonHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req updateLessonRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	lesson, err := h.lessons.Update(c.Request.Context(), id, req.Title, req.Kind, req.Content, req.Order)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, lesson)
}

// Delete removes a lesson.
func (h *LessonHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.lessons.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Complete records the student's completion marker for the lesson.
func (h *LessonHandler) Complete(c *gin.Context) {
	lessonID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	studentID, err := parseIDQuery(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.lessons.Complete(c.Request.Context(), lessonID, studentID); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"message": "lesson completed"})
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// QuizHandler exposes quiz submission and result endpoints.
type QuizHandler struct {
	quizzes *service.QuizService
}

// NewQuizHandler constructs the quiz handler.
func NewQuizHandler(quizzes *service.QuizService) *QuizHandler {
	return &QuizHandler{quizzes: quizzes}
}

// Submit grades a quiz attempt and records the result.
func (h *QuizHandler) Submit(c *gin.Context) {
	studentID, err := parseIDQuery(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.QuizSubmission
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.quizzes.Submit(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Results returns every recorded attempt for a student.
func (h *QuizHandler) Results(c *gin.Context) {
	studentID, err := parseIDParam(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	results, err := h.quizzes.ResultsByStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, results)
}

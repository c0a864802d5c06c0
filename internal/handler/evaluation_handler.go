package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// EvaluationHandler exposes graded assignment endpoints.
type EvaluationHandler struct {
	evaluations *service.EvaluationService
}

// NewEvaluationHandler constructs the evaluation handler.
func NewEvaluationHandler(evaluations *service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluations: evaluations}
}

// List returns evaluations, optionally for one course.
func (h *EvaluationHandler) List(c *gin.Context) {
	courseID, err := parseOptionalIDQuery(c, "course_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	evals, err := h.evaluations.List(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, evals)
}

// Get returns one evaluation.
func (h *EvaluationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	eval, err := h.evaluations.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, eval)
}

// Create registers a new evaluation.
func (h *EvaluationHandler) Create(c *gin.Context) {
	var req models.EvaluationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	eval, err := h.evaluations.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, eval)
}

// Submit hands in a student's answer.
func (h *EvaluationHandler) Submit(c *gin.Context) {
	studentID, err := parseIDQuery(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.SubmitEvaluationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	sub, err := h.evaluations.Submit(c.Request.Context(), studentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, sub)
}

// Submissions returns an evaluation's submissions with student names.
func (h *EvaluationHandler) Submissions(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	subs, err := h.evaluations.Submissions(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs)
}

// Grade sets score, feedback and the grading timestamp on a submission.
func (h *EvaluationHandler) Grade(c *gin.Context) {
	var req models.GradeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	sub, err := h.evaluations.Grade(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sub)
}

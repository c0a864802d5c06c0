package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// ProgressHandler exposes student progress endpoints.
type ProgressHandler struct {
	progress *service.ProgressService
}

// NewProgressHandler constructs the progress handler.
func NewProgressHandler(progress *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// ForStudent returns one progress row per enrolled course.
func (h *ProgressHandler) ForStudent(c *gin.Context) {
	studentID, err := parseIDParam(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	progress, err := h.progress.ForStudent(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, progress)
}

// Export streams the progress report as CSV or PDF.
func (h *ProgressHandler) Export(c *gin.Context) {
	studentID, err := parseIDParam(c, "student_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	format := c.DefaultQuery("format", "csv")
	data, contentType, err := h.progress.Export(c.Request.Context(), studentID, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	ext := "csv"
	if format == "pdf" {
		ext = "pdf"
	}
	filename := fmt.Sprintf("progress_%d.%s", studentID, ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

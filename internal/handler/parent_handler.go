package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// ParentHandler exposes parent-student link endpoints.
type ParentHandler struct {
	parents *service.ParentService
}

// NewParentHandler constructs the parent handler.
func NewParentHandler(parents *service.ParentService) *ParentHandler {
	return &ParentHandler{parents: parents}
}

// Link ties a parent account to a student account.
func (h *ParentHandler) Link(c *gin.Context) {
	var link models.ParentStudentLink
	if err := bindJSON(c, &link); err != nil {
		response.Error(c, err)
		return
	}
	if err := h.parents.Link(c.Request.Context(), link); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, link)
}

// Children returns every linked child with their progress.
func (h *ParentHandler) Children(c *gin.Context) {
	parentID, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	children, err := h.parents.ChildrenProgress(c.Request.Context(), parentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, children)
}

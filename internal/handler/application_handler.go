package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// ApplicationHandler exposes admission application endpoints.
type ApplicationHandler struct {
	applications *service.ApplicationService
}

// NewApplicationHandler constructs the application handler.
func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// List returns applications newest-first, optionally filtered by status.
func (h *ApplicationHandler) List(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	apps, err := h.applications.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, apps)
}

// Get returns one application.
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	app, err := h.applications.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, app)
}

// Create files a new application. Public endpoint.
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req models.ApplicationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	app, err := h.applications.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, app)
}

type reviewApplicationRequest struct {
	Status models.ApplicationStatus `json:"status" binding:"required"`
}

// Review sets the application outcome for the reviewer named in the query
// string.
func (h *ApplicationHandler) Review(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	reviewedBy, err := parseIDQuery(c, "reviewed_by")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req reviewApplicationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	app, err := h.applications.Review(c.Request.Context(), id, req.Status, reviewedBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, app)
}

// Delete removes an application record.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.applications.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

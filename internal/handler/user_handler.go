package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// UserHandler exposes the user directory endpoints.
type UserHandler struct {
	users *service.UserService
}

// NewUserHandler constructs the user handler.
func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns users, optionally filtered by role and grade level.
func (h *UserHandler) List(c *gin.Context) {
	filter := models.UserFilter{GradeLevel: c.Query("grade_level")}
	if raw := c.Query("role"); raw != "" {
		role := models.UserRole(raw)
		if !role.Valid() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown role"))
			return
		}
		filter.Role = &role
	}
	users, err := h.users.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, users)
}

// Get returns one user.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

type updateGradeRequest struct {
	GradeLevel *string `json:"grade_level"`
}

// UpdateGrade sets a student's grade level.
func (h *UserHandler) UpdateGrade(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req updateGradeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.users.UpdateGrade(c.Request.Context(), id, req.GradeLevel)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, user)
}

// Delete removes a user account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

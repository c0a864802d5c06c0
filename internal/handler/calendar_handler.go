package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	appErrors "github.com/sergiomvp10/Emunahacademy/pkg/errors"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// CalendarHandler exposes calendar event endpoints.
type CalendarHandler struct {
	calendar *service.CalendarService
}

// NewCalendarHandler constructs the calendar handler.
func NewCalendarHandler(calendar *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendar: calendar}
}

// List returns events matching the query filters, ordered by start time.
func (h *CalendarHandler) List(c *gin.Context) {
	courseID, err := parseOptionalIDQuery(c, "course_id")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.CalendarFilter{CourseID: courseID}
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid start_date"))
			return
		}
		filter.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid end_date"))
			return
		}
		filter.EndDate = &end
	}
	events, err := h.calendar.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, events)
}

// Create stores a new event for the creator named in the query string.
func (h *CalendarHandler) Create(c *gin.Context) {
	createdBy, err := parseIDQuery(c, "created_by")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req models.CalendarEventRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	event, err := h.calendar.Create(c.Request.Context(), createdBy, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Delete removes an event.
func (h *CalendarHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.calendar.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

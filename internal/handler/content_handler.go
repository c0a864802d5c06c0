package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/models"
	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// ContentHandler exposes the public site content endpoints.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs the content handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// All returns every section, defaults filling the gaps.
func (h *ContentHandler) All(c *gin.Context) {
	sections, err := h.content.All(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sections)
}

// Get returns a single section.
func (h *ContentHandler) Get(c *gin.Context) {
	section, err := h.content.Get(c.Request.Context(), c.Param("section"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, section)
}

// Update replaces a section's payload.
func (h *ContentHandler) Update(c *gin.Context) {
	var req models.SiteContentRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	section, err := h.content.Update(c.Request.Context(), c.Param("section"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, section)
}

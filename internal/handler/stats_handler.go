package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sergiomvp10/Emunahacademy/internal/service"
	"github.com/sergiomvp10/Emunahacademy/pkg/response"
)

// StatsHandler exposes the platform statistics endpoint.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler constructs the statistics handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Snapshot returns the current platform counts.
func (h *StatsHandler) Snapshot(c *gin.Context) {
	stats, err := h.stats.Snapshot(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

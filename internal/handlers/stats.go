package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/kyamashita/study-tracker-api/internal/errors"
	"github.com/kyamashita/study-tracker-api/internal/middleware"
	"github.com/kyamashita/study-tracker-api/internal/services"
	"github.com/kyamashita/study-tracker-api/internal/utils"
)

// StatsHandler coordinates reporting HTTP handlers.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Summary returns per-day minute totals and the grand total for the
// optional from/to range.
func (h *StatsHandler) Summary(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetRangeParams(c)

	summary, err := h.statsService.Summary(userID, params.From, params.To)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TimePerSubject returns all-time minute totals grouped by subject,
// largest first. Unlike the summary and session list, this report
// never takes a date range.
func (h *StatsHandler) TimePerSubject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	report, err := h.statsService.TimePerSubject(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute report")
		return
	}

	c.JSON(http.StatusOK, report)
}

// StudyTrend returns per-day minute totals for the last 7 calendar days.
func (h *StatsHandler) StudyTrend(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	trend, err := h.statsService.StudyTrend(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute trend")
		return
	}

	c.JSON(http.StatusOK, trend)
}

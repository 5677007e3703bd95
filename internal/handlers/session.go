package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/kyamashita/study-tracker-api/internal/errors"
	"github.com/kyamashita/study-tracker-api/internal/middleware"
	"github.com/kyamashita/study-tracker-api/internal/services"
	"github.com/kyamashita/study-tracker-api/internal/utils"
)

// SessionHandler coordinates session HTTP handlers.
type SessionHandler struct {
	sessionService *services.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// CreateSession logs a study session for the current user. Title, date
// and notes are optional and defaulted; the duration must be a
// positive number of whole minutes.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateSessionRequest struct {
		Title           string  `json:"title"`
		Date            string  `json:"date"`
		DurationMinutes int     `json:"durationMinutes"`
		Notes           string  `json:"notes"`
		SubjectID       *string `json:"subjectId"`
	}

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.Create(services.CreateSessionInput{
		UserID:          userID,
		Title:           req.Title,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
		SubjectID:       req.SubjectID,
	})
	if err != nil {
		if errors.Is(err, services.ErrDurationRequired) {
			apierrors.BadRequest(c, "durationMinutes is required")
			return
		}
		apierrors.InternalError(c, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions returns the current user's sessions within the optional
// from/to range, joined with subject name and color, newest first.
func (h *SessionHandler) ListSessions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	params := utils.GetRangeParams(c)

	sessions, err := h.sessionService.List(userID, params.From, params.To)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// DeleteSession removes one of the current user's sessions.
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.sessionService.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			apierrors.NotFound(c, "Not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/kyamashita/study-tracker-api/internal/errors"
	"github.com/kyamashita/study-tracker-api/internal/middleware"
	"github.com/kyamashita/study-tracker-api/internal/services"
)

// SubjectHandler coordinates subject HTTP handlers.
type SubjectHandler struct {
	subjectService *services.SubjectService
}

// NewSubjectHandler creates a new SubjectHandler.
func NewSubjectHandler(subjectService *services.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
	}
}

// CreateSubject adds a subject for the current user.
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateSubjectRequest struct {
		Name string `json:"name" binding:"required"`
	}

	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Subject name is required")
		return
	}

	subject, err := h.subjectService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrSubjectNameRequired) {
			apierrors.BadRequest(c, "Subject name is required")
			return
		}
		apierrors.InternalError(c, "Failed to create subject")
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// ListSubjects returns the current user's subjects, oldest first.
func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	subjects, err := h.subjectService.List(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch subjects")
		return
	}

	c.JSON(http.StatusOK, subjects)
}

// DeleteSubject removes one of the current user's subjects. Another
// user's subject looks exactly like a missing one: 404.
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.subjectService.Delete(userID, c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSubjectNotFound) {
			apierrors.NotFound(c, "Not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete subject")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

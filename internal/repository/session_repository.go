package repository

import (
	"github.com/kyamashita/study-tracker-api/internal/database"
	"github.com/kyamashita/study-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormSessionRepository is a GORM implementation of SessionRepository
type GormSessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &GormSessionRepository{db: db}
}

// Create inserts an already-normalized session
func (r *GormSessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// ListByUser returns all of the user's sessions. Date filtering,
// joining and ordering happen in the reports engine, not here.
func (r *GormSessionRepository) ListByUser(userID string) ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Scopes(database.OwnedBy(userID)).Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Delete removes a session owned by the user
func (r *GormSessionRepository) Delete(userID, sessionID string) (bool, error) {
	result := r.db.Scopes(database.OwnedBy(userID)).
		Where("id = ?", sessionID).
		Delete(&models.Session{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

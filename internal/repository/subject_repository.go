package repository

import (
	"github.com/kyamashita/study-tracker-api/internal/constants"
	"github.com/kyamashita/study-tracker-api/internal/database"
	"github.com/kyamashita/study-tracker-api/internal/models"
	"gorm.io/gorm"
)

// GormSubjectRepository is a GORM implementation of SubjectRepository
type GormSubjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &GormSubjectRepository{db: db}
}

// CreateWithAssignedColor inserts a subject with the next round-robin
// palette color. The count and the insert run in one transaction so
// concurrent creations by the same user cannot be assigned the same
// color index. The index is based on the current count, not on slots
// freed by deletion.
func (r *GormSubjectRepository) CreateWithAssignedColor(userID, name string) (*models.Subject, error) {
	subject := &models.Subject{
		UserID: userID,
		Name:   name,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Subject{}).
			Scopes(database.OwnedBy(userID)).
			Count(&count).Error; err != nil {
			return err
		}

		subject.Color = constants.SubjectColors[count%int64(len(constants.SubjectColors))]
		return tx.Create(subject).Error
	})
	if err != nil {
		return nil, err
	}

	return subject, nil
}

// ListByUser returns the user's subjects ordered by creation time ascending
func (r *GormSubjectRepository) ListByUser(userID string) ([]models.Subject, error) {
	var subjects []models.Subject
	err := r.db.Scopes(database.OwnedBy(userID)).
		Order("created_at ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

// Delete removes a subject owned by the user. Sessions referencing the
// subject are left untouched; their reference dangles from here on.
func (r *GormSubjectRepository) Delete(userID, subjectID string) (bool, error) {
	result := r.db.Scopes(database.OwnedBy(userID)).
		Where("id = ?", subjectID).
		Delete(&models.Subject{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is one logged study interval. Sessions are created and
// deleted but never updated in place.
//
// SubjectID is nullable and intentionally has no foreign key: deleting
// a subject leaves its sessions with a dangling reference that resolves
// to "Unknown" on read.
type Session struct {
	ID              string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Title           string    `gorm:"type:varchar(255);not null" json:"title"`
	Date            string    `gorm:"type:varchar(10);index;not null" json:"date"`
	DurationMinutes int       `gorm:"not null" json:"durationMinutes"`
	Notes           string    `gorm:"type:text" json:"notes"`
	SubjectID       *string   `gorm:"type:varchar(36);index" json:"subjectId"`
	CreatedAt       time.Time `json:"createdAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

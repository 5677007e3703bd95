package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subject is a user-defined study category. Its color is assigned
// round-robin from a fixed palette at creation time and never changes.
type Subject struct {
	ID        string    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Color     string    `gorm:"type:varchar(16);not null" json:"color"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Subject) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

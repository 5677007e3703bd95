package database

import (
	"gorm.io/gorm"
)

// OwnedBy restricts a query to rows belonging to the given user. Every
// subject and session read or delete goes through this scope; there is
// no cross-user access path.
func OwnedBy(userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

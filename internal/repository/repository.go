package repository

import (
	"github.com/kyamashita/study-tracker-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds a user by exact email match (case-sensitive)
	FindByEmail(email string) (*models.User, error)
}

// SubjectRepository defines the interface for subject data access.
// All reads and deletes are scoped to the owning user.
type SubjectRepository interface {
	// CreateWithAssignedColor counts the user's existing subjects and
	// inserts the new subject with the next palette color, atomically.
	CreateWithAssignedColor(userID, name string) (*models.Subject, error)

	// ListByUser returns the user's subjects ordered by creation time ascending
	ListByUser(userID string) ([]models.Subject, error)

	// Delete removes a subject owned by the user.
	// Returns true iff a matching row existed and was removed.
	Delete(userID, subjectID string) (bool, error)
}

// SessionRepository defines the interface for session data access.
// Sessions are insert-only; there is no update path.
type SessionRepository interface {
	// Create inserts an already-normalized session
	Create(session *models.Session) error

	// ListByUser returns all of the user's sessions, unordered
	ListByUser(userID string) ([]models.Session, error)

	// Delete removes a session owned by the user.
	// Returns true iff a matching row existed and was removed.
	Delete(userID, sessionID string) (bool, error)
}

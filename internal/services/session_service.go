package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/kyamashita/study-tracker-api/internal/constants"
	"github.com/kyamashita/study-tracker-api/internal/models"
	"github.com/kyamashita/study-tracker-api/internal/reports"
	"github.com/kyamashita/study-tracker-api/internal/repository"
)

var (
	ErrDurationRequired = errors.New("durationMinutes is required and must be positive")
	ErrSessionNotFound  = errors.New("session not found")
)

// SessionService handles session business logic.
type SessionService struct {
	sessionRepo repository.SessionRepository
	subjectRepo repository.SubjectRepository
	engine      *reports.Engine
	now         func() time.Time
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessionRepo repository.SessionRepository, subjectRepo repository.SubjectRepository, engine *reports.Engine) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		subjectRepo: subjectRepo,
		engine:      engine,
		now:         time.Now,
	}
}

// CreateSessionInput represents input for logging a session.
type CreateSessionInput struct {
	UserID          string
	Title           string
	Date            string
	DurationMinutes int
	Notes           string
	SubjectID       *string
}

// NormalizeSession applies the defaulting rules to raw input: empty
// title becomes "Study Session", an omitted date becomes the current
// UTC date, notes default to the empty string. It does not validate.
func NormalizeSession(input CreateSessionInput, now time.Time) models.Session {
	session := models.Session{
		UserID:          input.UserID,
		Title:           input.Title,
		Date:            input.Date,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		SubjectID:       input.SubjectID,
	}

	if session.Title == "" {
		session.Title = constants.DefaultSessionTitle
	}
	if session.Date == "" {
		session.Date = now.UTC().Format(constants.ISODateFormat)
	}

	return session
}

// Create validates, normalizes and stores a session. The subject
// reference is stored as given; it is not required to resolve.
func (s *SessionService) Create(input CreateSessionInput) (*models.Session, error) {
	if input.DurationMinutes <= 0 {
		return nil, ErrDurationRequired
	}

	session := NormalizeSession(input, s.now())
	if err := s.sessionRepo.Create(&session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &session, nil
}

// List returns the user's sessions within the optional date range,
// each joined with its subject's name and color, newest first.
func (s *SessionService) List(userID, from, to string) ([]reports.EnrichedSession, error) {
	sessions, err := s.sessionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	subjects, err := s.subjectRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	return s.engine.ListWithSubjects(sessions, subjects, from, to), nil
}

// Delete removes a session owned by the user.
func (s *SessionService) Delete(userID, sessionID string) error {
	deleted, err := s.sessionRepo.Delete(userID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

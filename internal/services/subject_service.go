package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kyamashita/study-tracker-api/internal/models"
	"github.com/kyamashita/study-tracker-api/internal/repository"
)

var (
	ErrSubjectNameRequired = errors.New("subject name is required")
	ErrSubjectNotFound     = errors.New("subject not found")
)

// SubjectService handles subject business logic.
type SubjectService struct {
	subjectRepo repository.SubjectRepository
}

// NewSubjectService creates a new SubjectService.
func NewSubjectService(subjectRepo repository.SubjectRepository) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
	}
}

// Create adds a subject for the user. The color is assigned by the
// repository from the fixed palette, round-robin over the user's
// current subject count.
func (s *SubjectService) Create(userID, name string) (*models.Subject, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrSubjectNameRequired
	}

	subject, err := s.subjectRepo.CreateWithAssignedColor(userID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject: %w", err)
	}

	return subject, nil
}

// List returns the user's subjects ordered by creation time ascending.
func (s *SubjectService) List(userID string) ([]models.Subject, error) {
	subjects, err := s.subjectRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	return subjects, nil
}

// Delete removes a subject owned by the user. A subject that does not
// exist or belongs to someone else reports ErrSubjectNotFound.
// Sessions referencing the subject are never touched.
func (s *SubjectService) Delete(userID, subjectID string) error {
	deleted, err := s.subjectRepo.Delete(userID, subjectID)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if !deleted {
		return ErrSubjectNotFound
	}
	return nil
}

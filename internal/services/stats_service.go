package services

import (
	"fmt"

	"github.com/kyamashita/study-tracker-api/internal/reports"
	"github.com/kyamashita/study-tracker-api/internal/repository"
)

// StatsService feeds a user's rows into the reports engine. It never
// fails on data shape, only on store access.
type StatsService struct {
	sessionRepo repository.SessionRepository
	subjectRepo repository.SubjectRepository
	engine      *reports.Engine
}

// NewStatsService creates a new StatsService.
func NewStatsService(sessionRepo repository.SessionRepository, subjectRepo repository.SubjectRepository, engine *reports.Engine) *StatsService {
	return &StatsService{
		sessionRepo: sessionRepo,
		subjectRepo: subjectRepo,
		engine:      engine,
	}
}

// Summary returns per-day totals and the grand total for the optional
// date range.
func (s *StatsService) Summary(userID, from, to string) (reports.Summary, error) {
	sessions, err := s.sessionRepo.ListByUser(userID)
	if err != nil {
		return reports.Summary{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	return s.engine.DailySummary(sessions, from, to), nil
}

// TimePerSubject returns all-time totals grouped by subject. It takes
// no date range: subject totals always aggregate over every session
// the user has logged.
func (s *StatsService) TimePerSubject(userID string) ([]reports.SubjectTotal, error) {
	sessions, err := s.sessionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	subjects, err := s.subjectRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	return s.engine.PerSubjectReport(sessions, subjects), nil
}

// StudyTrend returns per-day totals for the last 7 calendar days.
func (s *StatsService) StudyTrend(userID string) ([]reports.TrendPoint, error) {
	sessions, err := s.sessionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return s.engine.RecentTrend(sessions), nil
}

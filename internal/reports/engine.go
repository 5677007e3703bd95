// Package reports turns a single user's raw session and subject rows
// into query results. Everything here is pure: inputs are already
// scoped to one user by the repositories, nothing is mutated, and no
// operation can fail. Missing or empty inputs simply produce empty
// results.
package reports

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/kyamashita/study-tracker-api/internal/constants"
	"github.com/kyamashita/study-tracker-api/internal/models"
)

// EnrichedSession is a session joined with its subject's name and
// color. Both are null when the subject reference is missing or
// dangles (subject deleted after the session was logged).
type EnrichedSession struct {
	models.Session
	SubjectName  *string `json:"subjectName"`
	SubjectColor *string `json:"subjectColor"`
}

// DayTotal is the summed duration for one calendar date.
type DayTotal struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// Summary is the daily breakdown plus the grand total for a range.
type Summary struct {
	Days         []DayTotal `json:"days"`
	TotalMinutes int        `json:"totalMinutes"`
}

// SubjectTotal is the all-time summed duration for one subject.
type SubjectTotal struct {
	Name         string `json:"name"`
	Color        string `json:"color"`
	TotalMinutes int    `json:"totalMinutes"`
}

// TrendPoint is one day of the recent-trend window.
type TrendPoint struct {
	Date         string `json:"date"`
	TotalMinutes int    `json:"totalMinutes"`
}

// Engine computes session aggregations. The clock is injected so the
// recent-trend window is testable; NewEngine wires the wall clock.
type Engine struct {
	now func() time.Time
}

// NewEngine creates an Engine backed by the wall clock.
func NewEngine() *Engine {
	return NewEngineWithClock(time.Now)
}

// NewEngineWithClock creates an Engine with a caller-supplied clock.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// filterByRange retains sessions whose date falls within [from, to]
// inclusive. Empty bounds are open ends. Dates are zero-padded
// YYYY-MM-DD strings, so plain string comparison orders them correctly.
func filterByRange(sessions []models.Session, from, to string) []models.Session {
	return lo.Filter(sessions, func(s models.Session, _ int) bool {
		if from != "" && s.Date < from {
			return false
		}
		if to != "" && s.Date > to {
			return false
		}
		return true
	})
}

// ListWithSubjects filters sessions by the optional date range, joins
// each one to its subject, and orders the result by date descending
// with creation time descending as the tie-breaker.
func (e *Engine) ListWithSubjects(sessions []models.Session, subjects []models.Subject, from, to string) []EnrichedSession {
	subjectsByID := lo.KeyBy(subjects, func(s models.Subject) string { return s.ID })

	filtered := filterByRange(sessions, from, to)
	results := make([]EnrichedSession, 0, len(filtered))
	for _, s := range filtered {
		enriched := EnrichedSession{Session: s}
		if s.SubjectID != nil {
			if subject, ok := subjectsByID[*s.SubjectID]; ok {
				enriched.SubjectName = &subject.Name
				enriched.SubjectColor = &subject.Color
			}
		}
		results = append(results, enriched)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Date != results[j].Date {
			return results[i].Date > results[j].Date
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results
}

// DailySummary groups the sessions in the optional date range by date,
// summing minutes per day, with days ordered ascending. Days with no
// sessions are omitted, not zero-filled.
func (e *Engine) DailySummary(sessions []models.Session, from, to string) Summary {
	filtered := filterByRange(sessions, from, to)

	days := sumByDate(filtered)
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Summary{
		Days:         days,
		TotalMinutes: lo.SumBy(filtered, func(s models.Session) int { return s.DurationMinutes }),
	}
}

// PerSubjectReport sums minutes per subject across all of the user's
// sessions, regardless of any date range active elsewhere. Sessions
// with no subject reference contribute to no group; sessions whose
// subject was deleted are reported under "Unknown". Sorted by total
// minutes descending, ties keeping encounter order.
func (e *Engine) PerSubjectReport(sessions []models.Session, subjects []models.Subject) []SubjectTotal {
	subjectsByID := lo.KeyBy(subjects, func(s models.Subject) string { return s.ID })

	totals := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if s.SubjectID == nil {
			continue
		}
		id := *s.SubjectID
		if _, seen := totals[id]; !seen {
			order = append(order, id)
		}
		totals[id] += s.DurationMinutes
	}

	report := make([]SubjectTotal, 0, len(order))
	for _, id := range order {
		entry := SubjectTotal{
			Name:         constants.UnknownSubjectName,
			Color:        constants.UnknownSubjectColor,
			TotalMinutes: totals[id],
		}
		if subject, ok := subjectsByID[id]; ok {
			entry.Name = subject.Name
			entry.Color = subject.Color
		}
		report = append(report, entry)
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].TotalMinutes > report[j].TotalMinutes
	})

	return report
}

// RecentTrend sums minutes per day for sessions dated within the last
// 7 calendar days inclusive, computed from the engine's clock in UTC,
// ordered by date ascending.
func (e *Engine) RecentTrend(sessions []models.Session) []TrendPoint {
	bound := e.now().UTC().AddDate(0, 0, -7).Format(constants.ISODateFormat)

	recent := lo.Filter(sessions, func(s models.Session, _ int) bool {
		return s.Date >= bound
	})

	days := sumByDate(recent)
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	trend := make([]TrendPoint, 0, len(days))
	for _, d := range days {
		trend = append(trend, TrendPoint{Date: d.Date, TotalMinutes: d.Minutes})
	}
	return trend
}

// sumByDate groups sessions by date and sums their durations,
// preserving first-encounter order.
func sumByDate(sessions []models.Session) []DayTotal {
	minutes := make(map[string]int)
	var order []string
	for _, s := range sessions {
		if _, seen := minutes[s.Date]; !seen {
			order = append(order, s.Date)
		}
		minutes[s.Date] += s.DurationMinutes
	}

	days := make([]DayTotal, 0, len(order))
	for _, date := range order {
		days = append(days, DayTotal{Date: date, Minutes: minutes[date]})
	}
	return days
}

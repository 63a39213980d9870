// Package stats computes the dashboard summary statistics and the 30-day
// activity time series over the full project collection.
package stats

import (
	"time"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
)

// TimeSeriesDays is the fixed chart window: the N calendar days ending
// today, inclusive.
const TimeSeriesDays = 30

// Summary holds the headline counts shown on the dashboard cards.
type Summary struct {
	TotalProjects      int            `json:"totalProjects"`
	CompletedProjects  int            `json:"completedProjects"`
	BookmarkedProjects int            `json:"bookmarkedProjects"`
	Categories         map[string]int `json:"categories"`
	Statuses           map[string]int `json:"statuses"`
}

// DayPoint is one calendar day of the activity series.
type DayPoint struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"` // cumulative count of projects created by day end
}

// Summarize computes the summary counts. The per-category and per-status
// maps each partition the collection, so their counts sum to the total.
func Summarize(projects []domain.Project) Summary {
	s := Summary{
		Categories: map[string]int{},
		Statuses:   map[string]int{},
	}
	for _, p := range projects {
		s.TotalProjects++
		if p.Status == domain.StatusCompleted {
			s.CompletedProjects++
		}
		if p.Bookmarked {
			s.BookmarkedProjects++
		}
		s.Categories[p.Category]++
		s.Statuses[p.Status]++
	}
	return s
}

// TimeSeries derives the 30-day created/completed/cumulative-total series
// ending on now's calendar day, using local day boundaries.
//
// "Completed on day X" is counted as status == completed with updatedAt on
// day X. This conflates completion with the last edit, so a completed
// project edited later moves between days; the behavior is kept as-is
// because the charts were built around it.
//
// Records with a zero timestamp fall into no day and no cumulative count.
// An empty collection yields an empty series so chart consumers render an
// explicit empty state rather than a flat zero line.
func TimeSeries(projects []domain.Project, now time.Time) []DayPoint {
	if len(projects) == 0 {
		return nil
	}

	out := make([]DayPoint, 0, TimeSeriesDays)
	for i := 0; i < TimeSeriesDays; i++ {
		day := now.AddDate(0, 0, -(TimeSeriesDays - 1 - i))
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

		point := DayPoint{Date: dayStart.Format("2006-01-02")}
		for _, p := range projects {
			if inDay(p.CreatedAt, dayStart, dayEnd) {
				point.Created++
			}
			if p.Status == domain.StatusCompleted && inDay(p.UpdatedAt, dayStart, dayEnd) {
				point.Completed++
			}
			if !p.CreatedAt.IsZero() && !p.CreatedAt.After(dayEnd) {
				point.Total++
			}
		}
		out = append(out, point)
	}
	return out
}

func inDay(t, start, end time.Time) bool {
	return !t.IsZero() && !t.Before(start) && !t.After(end)
}

// Package export builds and persists the dashboard's JSON export
// snapshots: the summary, the activity timeline, and a trimmed project
// list. Image and PDF rendering of charts stays client-side; the backend
// only serves the data form.
package export

import (
	"time"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/stats"
)

// ProjectRow is the trimmed per-project record included in a snapshot.
type ProjectRow struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	TechStack []string  `json:"techStack"`
}

// Snapshot is one exported dashboard state.
type Snapshot struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generatedAt"`
	GeneratedBy string           `json:"generatedBy,omitempty"`
	Summary     stats.Summary    `json:"summary"`
	Timeline    []stats.DayPoint `json:"timeline"`
	Projects    []ProjectRow     `json:"projects"`
}

// BuildSnapshot assembles a snapshot over the full collection as of now.
func BuildSnapshot(projects []domain.Project, now time.Time) *Snapshot {
	rows := make([]ProjectRow, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, ProjectRow{
			ID:        p.ID,
			Title:     p.Title,
			Category:  p.Category,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			TechStack: p.TechStack,
		})
	}

	return &Snapshot{
		GeneratedAt: now,
		Summary:     stats.Summarize(projects),
		Timeline:    stats.TimeSeries(projects, now),
		Projects:    rows,
	}
}

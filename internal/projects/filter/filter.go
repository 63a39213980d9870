// Package filter composes the search result with the exact-match filters
// into the visible project set.
package filter

import (
	"slices"
	"strings"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/search"
)

// Options are the four active filters. Empty string / false means the
// corresponding predicate is inactive.
type Options struct {
	Query          string
	Category       string
	Tech           string
	BookmarkedOnly bool
}

// Visible returns the projects passing every active filter. The predicates
// form a pure conjunction; the cheap exact matches run before the fuzzy
// search so the index is only consulted for surviving candidates.
func Visible(projects []domain.Project, opts Options) []domain.Project {
	query := strings.TrimSpace(opts.Query)

	var matched map[string]struct{}
	if query != "" {
		matched = search.Build(projects, search.DefaultWeights()).QuerySet(query)
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		if opts.Tech != "" && !slices.Contains(p.TechStack, opts.Tech) {
			continue
		}
		if opts.BookmarkedOnly && !p.Bookmarked {
			continue
		}
		if matched != nil {
			if _, ok := matched[p.ID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

// Categories returns the distinct category values in first-seen order.
func Categories(projects []domain.Project) []string {
	return distinct(projects, func(p domain.Project) []string {
		return []string{p.Category}
	})
}

// TechStacks returns the distinct tech values across all projects in
// first-seen order.
func TechStacks(projects []domain.Project) []string {
	return distinct(projects, func(p domain.Project) []string {
		return p.TechStack
	})
}

func distinct(projects []domain.Project, pick func(domain.Project) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, p := range projects {
		for _, v := range pick(p) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}

// Package search implements the weighted fuzzy index backing the dashboard
// search box. Matching is approximate: a query matches a field when the
// normalized edit distance of its best alignment is at most the threshold
// (0 = exact, 1 = no similarity).
package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/grok-project-10/mvp-dashboard-backend/internal/projects/domain"
)

// DefaultThreshold is the maximum normalized distance that still counts as
// a match.
const DefaultThreshold = 0.3

// Weights assigns a relative weight to each searchable field.
type Weights struct {
	Title     float64
	SubTitle  float64
	TechStack float64
	Category  float64
}

func DefaultWeights() Weights {
	return Weights{Title: 0.4, SubTitle: 0.3, TechStack: 0.2, Category: 0.1}
}

// Result is one matched project with its relevance score. Scores are kept
// for future ranking use; downstream filtering only needs the ID set.
type Result struct {
	ID    string
	Score float64
}

type field struct {
	text   string
	weight float64
}

type entry struct {
	id     string
	fields []field
}

// Index is a rebuildable search index over a project snapshot. Rebuilding
// on every query is fine at dashboard scale.
type Index struct {
	entries   []entry
	threshold float64
}

// Build constructs an index over projects with the given field weights.
// techStack is matched element-wise.
func Build(projects []domain.Project, w Weights) *Index {
	ix := &Index{threshold: DefaultThreshold, entries: make([]entry, 0, len(projects))}
	for _, p := range projects {
		e := entry{id: p.ID}
		e.fields = append(e.fields,
			field{text: p.Title, weight: w.Title},
			field{text: p.SubTitle, weight: w.SubTitle},
			field{text: p.Category, weight: w.Category},
		)
		for _, tech := range p.TechStack {
			e.fields = append(e.fields, field{text: tech, weight: w.TechStack})
		}
		ix.entries = append(ix.entries, e)
	}
	return ix
}

// Query returns the matched projects ranked by score, best first. An empty
// or whitespace query matches everything (no filter), not nothing.
func (ix *Index) Query(text string) []Result {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		out := make([]Result, len(ix.entries))
		for i, e := range ix.entries {
			out[i] = Result{ID: e.id, Score: 1}
		}
		return out
	}

	var out []Result
	for _, e := range ix.entries {
		best := 0.0
		for _, f := range e.fields {
			d := bestDistance(q, strings.ToLower(f.text))
			if d > ix.threshold {
				continue
			}
			if score := (1 - d) * f.weight; score > best {
				best = score
			}
		}
		if best > 0 {
			out = append(out, Result{ID: e.id, Score: best})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// QuerySet returns just the matched-identifier set.
func (ix *Index) QuerySet(text string) map[string]struct{} {
	results := ix.Query(text)
	set := make(map[string]struct{}, len(results))
	for _, r := range results {
		set[r.ID] = struct{}{}
	}
	return set
}

// bestDistance computes the normalized distance between the query and the
// closest alignment within text: an exact substring scores 0, otherwise
// the minimum over the whole text and its individual tokens.
func bestDistance(q, text string) float64 {
	if text == "" {
		return 1
	}
	if strings.Contains(text, q) {
		return 0
	}

	best := normalized(q, text)
	for _, tok := range tokenize(text) {
		if d := normalized(q, tok); d < best {
			best = d
		}
	}
	return best
}

func normalized(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	if la == 0 && lb == 0 {
		return 0
	}
	max := la
	if lb > max {
		max = lb
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(max)
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

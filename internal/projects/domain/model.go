package domain

import "time"

// Canonical status values used across the dashboard. Status remains free
// text in storage; only the completed marker has fixed semantics.
const (
	StatusCompleted  = "완료"
	DefaultStatus    = "기획"
	DefaultVersion   = "v1.0"
	CloneTitleSuffix = " (복제본)"
)

// Project is one tracked MVP record. The document ID doubles as the record
// identity; timestamps are assigned server-side on write.
type Project struct {
	ID         string    `firestore:"-" json:"id"`
	Category   string    `firestore:"category" json:"category"`
	Title      string    `firestore:"title" json:"title"`
	SubTitle   string    `firestore:"subTitle" json:"subTitle"`
	URL        string    `firestore:"url" json:"url"`
	TechStack  []string  `firestore:"techStack" json:"techStack"`
	Docs       []string  `firestore:"docs" json:"docs"`
	Note       string    `firestore:"note" json:"note"`
	Thumbnail  string    `firestore:"thumbnail" json:"thumbnail,omitempty"`
	Status     string    `firestore:"status" json:"status"`
	Version    string    `firestore:"version" json:"version"`
	CreatedBy  string    `firestore:"createdBy" json:"createdBy,omitempty"`
	Bookmarked bool      `firestore:"bookmarked" json:"bookmarked"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `firestore:"updatedAt" json:"updatedAt"`
}

// Fields is the writable subset of a project. Identity, timestamps, and the
// bookmark flag are managed by dedicated operations.
type Fields struct {
	Category  string
	Title     string
	SubTitle  string
	URL       string
	TechStack []string
	Docs      []string
	Note      string
	Thumbnail string
	Status    string
	Version   string
	CreatedBy string
}

// OwnedBy reports whether uid may edit or delete the project. Records
// without an owner are treated as unowned and editable by anyone; the real
// enforcement lives in Firestore security rules.
func (p *Project) OwnedBy(uid string) bool {
	return p.CreatedBy == "" || p.CreatedBy == uid
}

// Dedup returns values with duplicates removed, preserving first-seen
// order. The store does not reject duplicates; callers apply this at the
// edit boundary before writing techStack and docs.
func Dedup(values []string) []string {
	if len(values) == 0 {
		return values
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

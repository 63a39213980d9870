package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedup(t *testing.T) {
	t.Run("removes duplicates preserving first-seen order", func(t *testing.T) {
		got := Dedup([]string{"react", "go", "react", "firebase", "go"})
		assert.Equal(t, []string{"react", "go", "firebase"}, got)
	})

	t.Run("keeps already-unique input unchanged", func(t *testing.T) {
		got := Dedup([]string{"react", "go"})
		assert.Equal(t, []string{"react", "go"}, got)
	})

	t.Run("handles empty and nil input", func(t *testing.T) {
		assert.Empty(t, Dedup(nil))
		assert.Empty(t, Dedup([]string{}))
	})
}

func TestProjectOwnedBy(t *testing.T) {
	t.Run("owner may act", func(t *testing.T) {
		p := Project{CreatedBy: "user-1"}
		assert.True(t, p.OwnedBy("user-1"))
	})

	t.Run("non-owner may not act", func(t *testing.T) {
		p := Project{CreatedBy: "user-1"}
		assert.False(t, p.OwnedBy("user-2"))
	})

	t.Run("unowned record is editable by anyone", func(t *testing.T) {
		p := Project{}
		assert.True(t, p.OwnedBy("user-2"))
	})
}

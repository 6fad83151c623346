package file

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiff(t *testing.T) {
	t.Run("identical content", func(t *testing.T) {
		out, added, removed := lineDiff("a.txt", "same\n", "same\n")
		assert.Zero(t, added)
		assert.Zero(t, removed)
		assert.True(t, strings.HasPrefix(out, "--- a/a.txt\n+++ b/a.txt\n"))
	})

	t.Run("collapses long unchanged runs", func(t *testing.T) {
		var lines []string
		for i := range 20 {
			lines = append(lines, fmt.Sprintf("line %d", i))
		}
		old := strings.Join(lines, "\n") + "\n"
		lines[10] = "changed"
		updated := strings.Join(lines, "\n") + "\n"

		out, added, removed := lineDiff("f", old, updated)
		assert.Equal(t, 1, added)
		assert.Equal(t, 1, removed)
		assert.Contains(t, out, "@@ 7 unchanged lines @@")
		assert.Contains(t, out, "-line 10\n+changed\n")
		assert.Contains(t, out, " line 9\n")
		assert.NotContains(t, out, " line 2\n")
	})

	t.Run("inserted blank line", func(t *testing.T) {
		out, added, removed := lineDiff("x.txt", "a\nb\n", "a\n\nb\n")
		assert.Equal(t, 1, added)
		assert.Zero(t, removed)
		assert.Contains(t, out, " a\n+\n b\n")
	})

	t.Run("deleted blank line", func(t *testing.T) {
		out, added, removed := lineDiff("x.txt", "a\n\nb\n", "a\nb\n")
		assert.Zero(t, added)
		assert.Equal(t, 1, removed)
		assert.Contains(t, out, " a\n-\n b\n")
	})

	t.Run("content that looks like a marker keeps its prefix", func(t *testing.T) {
		out, added, _ := lineDiff("x.txt", "", "@@ hunk\n")
		assert.Equal(t, 1, added)
		assert.Contains(t, out, "\n+@@ hunk\n")

		out, _, _ = lineDiff("x.txt", "@@ keep\nold\n", "@@ keep\nnew\n")
		assert.Contains(t, out, "\n @@ keep\n")
	})
}

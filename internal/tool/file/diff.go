package file

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/utils/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept around each change.
const contextLines = 3

// lineDiff renders a line-oriented diff of oldContent -> newContent in a
// unified-like layout and returns it with added and removed line counts.
func lineDiff(name, oldContent, newContent string) (string, int, int) {
	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", name, name)

	added, removed := 0, 0
	diffs := diff.Do(oldContent, newContent)
	for i, d := range diffs {
		lines := splitDiffLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += len(lines)
			writePrefixed(&b, "+", lines)
		case diffmatchpatch.DiffDelete:
			removed += len(lines)
			writePrefixed(&b, "-", lines)
		case diffmatchpatch.DiffEqual:
			writeContext(&b, lines, i == 0, i == len(diffs)-1)
		}
	}

	return b.String(), added, removed
}

// writeContext writes unchanged lines, keeping contextLines next to each
// change and collapsing the rest into a single marker line.
func writeContext(b *strings.Builder, lines []string, first, last bool) {
	keepHead, keepTail := contextLines, contextLines
	if first {
		keepHead = 0
	}
	if last {
		keepTail = 0
	}
	if len(lines) <= keepHead+keepTail {
		writePrefixed(b, " ", lines)
		return
	}

	writePrefixed(b, " ", lines[:keepHead])
	fmt.Fprintf(b, "@@ %d unchanged lines @@\n", len(lines)-keepHead-keepTail)
	writePrefixed(b, " ", lines[len(lines)-keepTail:])
}

// splitDiffLines splits a diff chunk into lines. A chunk of "\n" is one
// empty line.
func splitDiffLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func writePrefixed(b *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

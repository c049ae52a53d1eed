// Package diff renders line-oriented differences between two texts.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 1000
	truncateMessage = "... (diff truncated) ..."
)

// Stats counts changed lines.
type Stats struct {
	Added   int
	Removed int
}

// Lines compares before and after line by line and returns the changed
// lines prefixed with "-" or "+", under a header naming both sides.
// Identical inputs produce an empty string.
func Lines(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n+++ %s\n", beforeLabel, afterLabel)

	written := 0
	for _, d := range lineDiffs(before, after) {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range splitLines(d.Text) {
			if written == maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}

	return buf.String()
}

// Count reports how many lines were added and removed going from before to
// after.
func Count(before, after string) Stats {
	var stats Stats
	for _, d := range lineDiffs(before, after) {
		n := len(splitLines(d.Text))
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			stats.Removed += n
		case diffmatchpatch.DiffInsert:
			stats.Added += n
		}
	}
	return stats
}

// lineDiffs diffs whole lines rather than characters.
func lineDiffs(before, after string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Package tui provides the Bubble Tea interview interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText word-wraps plain text to a display width. Words wider than the
// width are split hard so a long token cannot blow out the layout.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	var out strings.Builder
	lineWidth := 0
	for _, word := range strings.Fields(text) {
		wordWidth := runewidth.StringWidth(word)
		spaceNeeded := 0
		if lineWidth > 0 {
			spaceNeeded = 1
		}
		if lineWidth+spaceNeeded+wordWidth > width && lineWidth > 0 {
			out.WriteByte('\n')
			lineWidth = 0
			spaceNeeded = 0
		}
		if wordWidth > width {
			lineWidth = writeSplitWord(&out, word, width, lineWidth)
			continue
		}
		if spaceNeeded > 0 {
			out.WriteByte(' ')
			lineWidth++
		}
		out.WriteString(word)
		lineWidth += wordWidth
	}
	return out.String()
}

func writeSplitWord(out *strings.Builder, word string, width, lineWidth int) int {
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if lineWidth+rw > width && lineWidth > 0 {
			out.WriteByte('\n')
			lineWidth = 0
		}
		out.WriteRune(r)
		lineWidth += rw
	}
	return lineWidth
}

// formatClock renders remaining seconds as m:ss.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

package display

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

const DefaultWidth = 80

// Wrap word-wraps each line of text to width, preserving ANSI escape
// sequences. A non-positive width uses DefaultWidth. Trailing whitespace left
// at a break is trimmed.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := strings.Split(wordwrap.String(text, width), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

package shared

import (
	"strings"
	"unicode"
)

const MaxLogPreviewLen = 48

// TruncateWithEllipsis shortens text to at most maxLen characters plus an ellipsis,
// cutting at a word boundary when there is one. Line breaks become spaces.
func TruncateWithEllipsis(text string, maxLen int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := maxLen
	if !unicode.IsSpace(runes[cut]) {
		for cut > 0 && !unicode.IsSpace(runes[cut-1]) {
			cut--
		}
		// A single long word is cut mid-word
		if cut == 0 {
			cut = maxLen
		}
	}
	return strings.TrimRightFunc(string(runes[:cut]), unicode.IsSpace) + "…"
}

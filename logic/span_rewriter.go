package logic

import (
	"fmt"
	"sort"
)

// Span is a [Start, End) code point range of a post's text, plus the markup that replaces it.
type Span struct {
	Start       int
	End         int
	Replacement string
}

// Rewrite replaces every span's range in text with its markup.
// Offsets are code points; out-of-range or inverted spans yield ErrMalformedEntity.
func Rewrite(text string, spans []Span) (string, error) {
	res, _, err := RewriteFlagged(text, spans)
	return res, err
}

// RewriteFlagged is Rewrite that also returns the spans it dropped because a span applied
// after them overlapped their range. Spans are applied from the highest start offset down;
// on a tie, extraction order is kept, so the later span wins.
func RewriteFlagged(text string, spans []Span) (string, []Span, error) {

	runes := []rune(text)
	for _, s := range spans {
		if s.Start < 0 || s.End > len(runes) || s.Start > s.End {
			return "", nil, fmt.Errorf("%w: span [%d,%d) in text of length %d",
				ErrMalformedEntity, s.Start, s.End, len(runes))
		}
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start > sorted[j].Start
	})

	// Last applied wins: a lower span reaching into ones already accepted evicts them
	var accepted, dropped []Span
	for _, s := range sorted {
		for len(accepted) > 0 && accepted[len(accepted)-1].Start < s.End {
			dropped = append(dropped, accepted[len(accepted)-1])
			accepted = accepted[:len(accepted)-1]
		}
		accepted = append(accepted, s)
	}

	// Highest offset first: earlier offsets stay valid as lengths change behind them
	for _, s := range accepted {
		repl := []rune(s.Replacement)
		spliced := make([]rune, 0, len(runes)-(s.End-s.Start)+len(repl))
		spliced = append(spliced, runes[:s.Start]...)
		spliced = append(spliced, repl...)
		spliced = append(spliced, runes[s.End:]...)
		runes = spliced
	}
	return string(runes), dropped, nil
}

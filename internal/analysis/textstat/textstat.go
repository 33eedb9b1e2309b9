package textstat

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Stats holds local reading measures for a block of text.
type Stats struct {
	Words      int `json:"words"`
	Sentences  int `json:"sentences"`
	Characters int `json:"characters"`
}

var sentenceEnders = map[rune]bool{
	'.': true, '!': true, '?': true,
	'。': true, '！': true, '？': true,
}

// Closing marks that may trail a terminator without opening the next sentence.
var sentenceTrailers = map[rune]bool{
	'"': true, '\'': true, '”': true, '’': true,
	')': true, '）': true, ']': true, '»': true,
}

// Measure computes word, sentence, and character counts for text.
// Text without a terminator counts as one sentence when non-blank.
func Measure(text string) Stats {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Stats{}
	}

	stats := Stats{
		Words:      len(strings.Fields(trimmed)),
		Characters: utf8.RuneCountInString(trimmed),
	}

	open := false
	for _, r := range trimmed {
		switch {
		case sentenceEnders[r]:
			if open {
				stats.Sentences++
				open = false
			}
		case unicode.IsSpace(r) || sentenceTrailers[r]:
		default:
			open = true
		}
	}
	if open {
		stats.Sentences++
	}

	return stats
}

// CompressionPct reports how much shorter the output is than the input as a
// word-count percentage, clamped to [-100, 100]. Empty input yields 0.
func CompressionPct(in, out Stats) float64 {
	if in.Words == 0 {
		return 0
	}
	pct := 100 * (1 - float64(out.Words)/float64(in.Words))
	if pct > 100 {
		pct = 100
	}
	if pct < -100 {
		pct = -100
	}
	return math.Round(pct*10) / 10
}

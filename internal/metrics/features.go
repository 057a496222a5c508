package metrics

import (
	"strings"
	"unicode/utf8"
)

// Features holds basic local text features of a recognized utterance.
type Features struct {
	Bytes int
	Runes int
	Words int
}

// CountFeatures computes byte, rune, and word counts for the utterance.
// Attached to turn telemetry so operators can spot degenerate recognition
// output (single-word fragments, runaway transcripts) without payloads.
func CountFeatures(s string) Features {
	return Features{
		Bytes: len(s),
		Runes: utf8.RuneCountInString(s),
		Words: len(strings.Fields(s)),
	}
}

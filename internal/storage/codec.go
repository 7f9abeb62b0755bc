package storage

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/serpientes/internal/game"
)

const (
	verseSep    = '|'
	verseEscape = '\\'
)

// EncodeVerses joins verses into a single column value.
// Separators and backslashes inside a verse are escaped with a backslash.
func EncodeVerses(verses []string) string {
	var b strings.Builder
	for i, v := range verses {
		if i > 0 {
			b.WriteRune(verseSep)
		}
		for _, r := range v {
			if r == verseSep || r == verseEscape {
				b.WriteRune(verseEscape)
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DecodeVerses reverses EncodeVerses. The empty string is an empty list.
// Malformed input is reported as game.ErrCorruptState.
func DecodeVerses(s string) ([]string, error) {
	verses := []string{}
	if s == "" {
		return verses, nil
	}

	var cur strings.Builder
	escaped := false
	for _, r := range s {
		switch {
		case escaped:
			if r != verseSep && r != verseEscape {
				return nil, fmt.Errorf("%w: bad escape %q in verse list", game.ErrCorruptState, r)
			}
			cur.WriteRune(r)
			escaped = false
		case r == verseEscape:
			escaped = true
		case r == verseSep:
			verses = append(verses, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: dangling escape in verse list", game.ErrCorruptState)
	}
	verses = append(verses, cur.String())

	for _, v := range verses {
		if v == "" {
			return nil, fmt.Errorf("%w: empty verse in list", game.ErrCorruptState)
		}
	}
	return verses, nil
}

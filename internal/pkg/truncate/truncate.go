// Package truncate shortens text to a UTF-8 byte budget without splitting
// multi-byte characters, preferring sentence boundaries over word boundaries.
package truncate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Bytes returns text shortened so that its UTF-8 byte length is at most
// limit. Text already within the budget is returned unchanged. Otherwise the
// longest run of whole sentences under the budget is kept; if not even one
// sentence fits, the cut falls back to the last whitespace boundary strictly
// under the budget, and finally to a hard rune-aligned cut. The result is
// trimmed of surrounding whitespace.
func Bytes(text string, limit int) string {
	if limit <= 0 {
		return ""
	}
	if len(text) <= limit {
		return text
	}

	if s := bySentence(text, limit); s != "" {
		return s
	}
	if s := byWord(text, limit); s != "" {
		return s
	}

	// Hard cut, backed off to a rune start.
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return strings.TrimSpace(text[:cut])
}

func bySentence(text string, limit int) string {
	var b strings.Builder
	for _, loc := range sentenceRe.FindAllStringIndex(text, -1) {
		sentence := text[loc[0]:loc[1]]
		if b.Len()+len(sentence) > limit {
			break
		}
		b.WriteString(sentence)
	}
	return strings.TrimSpace(b.String())
}

func byWord(text string, limit int) string {
	cut := -1
	for i, r := range text {
		if i >= limit {
			break
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			cut = i
		}
	}
	if cut <= 0 {
		return ""
	}
	return strings.TrimSpace(text[:cut])
}

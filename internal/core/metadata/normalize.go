// Package metadata canonicalizes free-text track and artist metadata into
// comparable forms: casefolded, diacritic-free, punctuation-unified, with
// collaboration notation standardized and mix/version labels extracted.
package metadata

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// quote and dash variants collapse onto plain ASCII forms
	quoteVariantRE = regexp.MustCompile("[‘’‛`´]")
	dashVariantRE  = regexp.MustCompile("[‐‑‒–—―−]")

	// a lone "x", "×" or "and" between artist names means "&"
	collabJoinRE = regexp.MustCompile(`\s(?:x|×|and)\s`)

	// everything that is not a word character, whitespace, &, ' or - is dropped
	disallowedRE = regexp.MustCompile(`[^\w\s&'-]`)

	// whole-token featuring notation, optionally followed by a dot
	featTokenRE = regexp.MustCompile(`(?i)(?:^|\s)(?:featuring|feat|ft|with)\.?(?:\s|$)`)
)

// Normalize canonicalizes raw metadata text into a comparable form. Empty
// input yields the empty string. Normalize is idempotent:
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := norm.NFKC.String(text)
	s = strings.ToLower(s)
	s = collapseWhitespace(s)
	s = stripDiacritics(s)
	s = unifyPunctuation(s)
	return standardizeCollaborations(s)
}

// stripDiacritics decomposes the string and removes every combining mark, so
// "beyoncé" becomes "beyonce".
func stripDiacritics(s string) string {
	// transform.Chain is not safe for concurrent use, so build it per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func unifyPunctuation(s string) string {
	s = quoteVariantRE.ReplaceAllString(s, "'")
	s = dashVariantRE.ReplaceAllString(s, "-")
	s = collabJoinRE.ReplaceAllString(s, " & ")
	s = disallowedRE.ReplaceAllString(s, "")
	return collapseWhitespace(s)
}

// standardizeCollaborations rewrites every featuring notation (feat., ft.,
// featuring, with) to the single token " feat ". It preserves the case of
// the surrounding text so it can also run on raw artist strings.
func standardizeCollaborations(s string) string {
	s = featTokenRE.ReplaceAllString(s, " feat ")
	return collapseWhitespace(s)
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

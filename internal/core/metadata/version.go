package metadata

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	parenGroupRE   = regexp.MustCompile(`\(([^()]*)\)`)
	bracketGroupRE = regexp.MustCompile(`\[([^][]*)\]`)
)

// VersionInfo is a raw title decomposed into its core title and an optional
// mix/version label. Mix is empty when the title carries no label.
type VersionInfo struct {
	Core string
	Mix  string
}

// mixKeywords is the vocabulary of mix/version terms. Each occurrence inside
// a bracketed candidate scores +10.
var mixKeywords = []string{
	"remix", "mix", "edit", "rework", "bootleg", "mashup", "version",
	"radio", "club", "extended", "vocal", "instrumental", "dub", "original",
	"live", "acoustic", "unplugged", "session", "remaster", "remastered",
	"demo", "vip",
}

// collabKeywords mark a bracketed segment as a collaborator credit rather
// than mix info. Each occurrence scores -20.
var collabKeywords = []string{"feat", "ft", "featuring", "with", "performed by"}

// candidate source types, in ascending tie-break priority.
const (
	sourceHyphen = iota
	sourceParens
	sourceBrackets
)

type versionCandidate struct {
	text   string
	source int
	score  int
}

// ExtractVersionInfo decomposes a raw (pre-normalization) title into a core
// title and a mix/version label. Every parenthesized group, bracketed group
// and dash-free trailing " - " segment is scored against the keyword
// vocabularies; the best positively scoring candidate wins, with ties broken
// by source type (brackets > parentheses > hyphen). Unbalanced bracket
// syntax is treated as ordinary text.
func ExtractVersionInfo(title string) VersionInfo {
	if title == "" {
		return VersionInfo{}
	}

	candidates := collectCandidates(title)

	best := versionCandidate{score: 0, source: -1}
	found := false
	for _, c := range candidates {
		if c.score <= 0 {
			continue
		}
		if !found || c.score > best.score || (c.score == best.score && c.source > best.source) {
			best = c
			found = true
		}
	}

	if !found {
		return VersionInfo{Core: stripAllAnnotations(title)}
	}

	return VersionInfo{
		Core: stripSource(title, best.source),
		Mix:  best.text,
	}
}

func collectCandidates(title string) []versionCandidate {
	var candidates []versionCandidate

	add := func(text string, source int) {
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		candidates = append(candidates, versionCandidate{
			text:   text,
			source: source,
			score:  scoreCandidate(text),
		})
	}

	for _, group := range bracketGroupRE.FindAllStringSubmatch(title, -1) {
		add(group[1], sourceBrackets)
	}
	for _, group := range parenGroupRE.FindAllStringSubmatch(title, -1) {
		add(group[1], sourceParens)
	}
	if tail, ok := trailingHyphenSegment(title); ok {
		add(tail, sourceHyphen)
	}

	return candidates
}

func scoreCandidate(text string) int {
	lower := strings.ToLower(text)

	score := 0
	for _, kw := range mixKeywords {
		score += 10 * strings.Count(lower, kw)
	}
	for _, kw := range collabKeywords {
		score -= 20 * strings.Count(lower, kw)
	}
	if isShouted(text) {
		score -= 5
	}
	return score
}

// isShouted flags long all-caps candidates, which are usually artist or
// label names rather than mix info.
func isShouted(s string) bool {
	if utf8.RuneCountInString(s) <= 3 {
		return false
	}
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// trailingHyphenSegment returns the segment after the final " - " separator,
// provided the segment itself contains no further hyphen.
func trailingHyphenSegment(title string) (string, bool) {
	idx := strings.LastIndex(title, " - ")
	if idx == -1 {
		return "", false
	}
	tail := title[idx+3:]
	if strings.Contains(tail, "-") {
		return "", false
	}
	return tail, true
}

// stripSource removes every occurrence of the winning candidate type from
// the title.
func stripSource(title string, source int) string {
	switch source {
	case sourceBrackets:
		title = bracketGroupRE.ReplaceAllString(title, " ")
	case sourceParens:
		title = parenGroupRE.ReplaceAllString(title, " ")
	case sourceHyphen:
		if idx := strings.LastIndex(title, " - "); idx != -1 {
			title = title[:idx]
		}
	}
	return collapseWhitespace(title)
}

// stripAllAnnotations defensively removes every bracketed group and any
// dash-free trailing hyphen segment when no candidate qualified as mix info.
func stripAllAnnotations(title string) string {
	title = bracketGroupRE.ReplaceAllString(title, " ")
	title = parenGroupRE.ReplaceAllString(title, " ")
	if _, ok := trailingHyphenSegment(title); ok {
		idx := strings.LastIndex(title, " - ")
		title = title[:idx]
	}
	return collapseWhitespace(title)
}

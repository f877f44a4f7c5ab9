// Package verseref canonicalizes textual verse references. The study database
// keys verses in two synonymous lexical forms ("Genesis 1:1" and
// "1. Mose 1:1"); every lookup must try both.
package verseref

import (
	"regexp"
	"strconv"
	"strings"
)

// translatePattern separates an optional numeric prefix ("1 ", "2 ") from the
// book name and the trailing chapter:verse suffix of a stored cross-reference.
var translatePattern = regexp.MustCompile(`^(\d\s)?([A-Z][a-z]+(?:\s[A-Z][a-z]+)*)(.*)$`)

var (
	singleVersePattern = regexp.MustCompile(`:\d+$`)
	trailingNumber     = regexp.MustCompile(`(\d+)$`)
	numericBookPrefix  = regexp.MustCompile(`^\d+\.$`)
)

// AlternateForm returns the synonymous key variant of a verse reference:
// the German form for an English-book reference and vice versa. Book matching
// is longest-prefix so multi-word book names resolve correctly. References
// that do not start with a known book name followed by a chapter number are
// returned unchanged.
func AlternateForm(ref string) string {
	if book, rest, ok := splitKnownBook(ref, bookDE); ok {
		return bookDE[book] + rest
	}
	if book, rest, ok := splitKnownBook(ref, bookEN); ok {
		return bookEN[book] + rest
	}
	return ref
}

// splitKnownBook finds the longest book name in table that prefixes ref and
// is followed by a space and a digit.
func splitKnownBook(ref string, table map[string]string) (book, rest string, ok bool) {
	for name := range table {
		if !strings.HasPrefix(ref, name+" ") {
			continue
		}
		tail := ref[len(name):]
		if len(tail) < 2 || tail[1] < '0' || tail[1] > '9' {
			continue
		}
		if len(name) > len(book) {
			book, rest, ok = name, tail, true
		}
	}
	return book, rest, ok
}

// Translate converts an English stored cross-reference such as
// "1 Corinthians 15:20" into its German display form "1. Korinther 15:20",
// preserving the chapter:verse suffix verbatim. Untranslatable references
// pass through unchanged.
func Translate(ref string) string {
	m := translatePattern.FindStringSubmatch(ref)
	if m == nil {
		return ref
	}
	book := m[2]
	if m[1] != "" {
		book = strings.TrimSpace(m[1]) + " " + m[2]
	}
	if de, ok := bookDE[book]; ok {
		return de + m[3]
	}
	return ref
}

// IsSingleVerse reports whether ref addresses exactly one verse, e.g.
// "Genesis 1:3" but not "Genesis 1", "Genesis 1:1-5", or parenthesized forms.
func IsSingleVerse(ref string) bool {
	return singleVersePattern.MatchString(ref) &&
		!strings.Contains(ref, "(") &&
		!strings.Contains(ref, "-")
}

// VerseNumber extracts the trailing verse number of ref, or 0 if absent.
// Used for numeric (not lexical) verse ordering, so verse 3 sorts before 10.
func VerseNumber(ref string) int {
	m := trailingNumber.FindStringSubmatch(ref)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// BookLabel extracts the book portion of a reference for grouping.
// Numeric-prefixed German books ("1. Mose") are treated as one token.
func BookLabel(ref string) string {
	parts := strings.Split(ref, " ")
	if len(parts) >= 2 && numericBookPrefix.MatchString(parts[0]) {
		return parts[0] + " " + parts[1]
	}
	return parts[0]
}

package filter

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// maxJuniorYears is the largest stated requirement a junior search accepts.
const maxJuniorYears = 2

// \p{Nd} so "३+ years" or "٥ years" count the same as their ASCII forms.
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\p{Nd}+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)(\p{Nd}+)\+?\s*yrs?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?i)minimum\s*(\p{Nd}+)\s*years?`),
	regexp.MustCompile(`(?i)at\s*least\s*(\p{Nd}+)\s*years?`),
}

// HasEntryLevelSignal reports whether text mentions any entry-level phrase.
// It is informational only: a stated year requirement still wins.
func HasEntryLevelSignal(text string, phrases []string) bool {
	return containsAny(text, phrases)
}

// RequiredYears returns every year count stated in text, in pattern order.
// Captures that do not parse as an int are dropped.
func RequiredYears(text string) []int {
	var years []int
	for _, re := range yearPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			n, err := parseDigits(m[1])
			if err != nil {
				continue
			}
			years = append(years, n)
		}
	}
	return years
}

// MatchesExperienceLevel reports whether text is acceptable for a junior
// search. Any stated requirement above two years rejects, even when the
// text also says "fresher"; no stated requirement accepts.
func MatchesExperienceLevel(text string) bool {
	for _, n := range RequiredYears(text) {
		if n > maxJuniorYears {
			return false
		}
	}
	return true
}

// parseDigits maps every decimal digit to ASCII before Atoi.
func parseDigits(s string) (int, error) {
	var b strings.Builder
	for _, r := range s {
		b.WriteRune('0' + rune(digitValue(r)))
	}
	return strconv.Atoi(b.String())
}

// digitValue relies on Unicode laying out every Nd range as runs of 0..9.
func digitValue(r rune) int {
	if r >= '0' && r <= '9' {
		return int(r - '0')
	}
	zero := r
	for unicode.IsDigit(zero - 1) {
		zero--
	}
	return int(r-zero) % 10
}

package filter

import "strings"

// DefaultThreshold is the score a job needs to be marked relevant.
const DefaultThreshold = 0.6

// KeywordConfig holds the four keyword lists the scorer matches against.
// Case is kept as written; matching lowercases both sides.
type KeywordConfig struct {
	Target         []string `yaml:"target_keywords"`
	Avoid          []string `yaml:"avoid_keywords"`
	Experience     []string `yaml:"experience_keywords"`
	PreferredSizes []string `yaml:"preferred_company_sizes"`
}

// DefaultKeywords targets junior Node.js / JavaScript / Python backend roles.
func DefaultKeywords() KeywordConfig {
	return KeywordConfig{
		Target: []string{
			"software engineer", "backend developer", "node.js", "nodejs",
			"javascript", "python", "api development", "full stack",
			"react", "express", "mongodb", "sql",
		},
		Avoid: []string{
			"senior", "5+ years", "4+ years", "3+ years", "lead",
			"principal", "architect", "manager", "director", "head",
			"5 years", "4 years", "3 years",
		},
		Experience: []string{
			"0-1 years", "1-2 years", "fresher", "entry level",
			"junior", "1 year", "graduate", "new grad",
		},
		PreferredSizes: []string{
			"11-50 employees", "51-200 employees", "201-500 employees",
			"501-1000 employees", "1001-5000 employees",
		},
	}
}

// IsZero reports whether no list has been set at all.
func (k KeywordConfig) IsZero() bool {
	return len(k.Target) == 0 && len(k.Avoid) == 0 && len(k.Experience) == 0 && len(k.PreferredSizes) == 0
}

// lowered returns a lowercased copy so the caller's slices are never shared.
func (k KeywordConfig) lowered() KeywordConfig {
	return KeywordConfig{
		Target:         lowerAll(k.Target),
		Avoid:          lowerAll(k.Avoid),
		Experience:     lowerAll(k.Experience),
		PreferredSizes: lowerAll(k.PreferredSizes),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		out = append(out, strings.ToLower(s))
	}
	return out
}

// containsAny is plain substring matching; text must already be lowercased.
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

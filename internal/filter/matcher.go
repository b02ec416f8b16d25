package filter

import (
	"strings"

	"linkedin-job-screener/internal/scraper"
)

// Weights in tenths of a point. Summing integers keeps 0.3+0.2+0.1 at
// exactly 0.6 and 0.4+0.3+0.2+0.1 at exactly 1.0.
const (
	targetWeight     = 4
	noAvoidWeight    = 3
	experienceWeight = 2
	sizeWeight       = 1
)

// Checks is the per-rule breakdown behind a score.
type Checks struct {
	HasTarget       bool
	HasAvoid        bool
	EntryLevel      bool
	ExperienceOK    bool
	GoodCompanySize bool
}

type Result struct {
	Score      float64
	IsRelevant bool
	Checks     Checks
}

// Scorer is immutable after NewScorer and safe for concurrent use.
type Scorer struct {
	kw        KeywordConfig
	threshold float64
}

// NewScorer copies and lowercases kw. A threshold <= 0 means DefaultThreshold.
func NewScorer(kw KeywordConfig, threshold float64) *Scorer {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Scorer{kw: kw.lowered(), threshold: threshold}
}

func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Score classifies one job. It never fails: empty or sentinel fields
// simply do not match.
func (s *Scorer) Score(job scraper.Job) Result {
	jobText := strings.ToLower(job.Title) + " " + strings.ToLower(job.Description)

	c := Checks{
		HasTarget:       containsAny(jobText, s.kw.Target),
		HasAvoid:        containsAny(jobText, s.kw.Avoid),
		EntryLevel:      HasEntryLevelSignal(jobText, s.kw.Experience),
		ExperienceOK:    MatchesExperienceLevel(jobText),
		GoodCompanySize: s.isGoodCompanySize(job.CompanySize),
	}

	tenths := 0
	if c.HasTarget {
		tenths += targetWeight
	}
	if !c.HasAvoid {
		tenths += noAvoidWeight
	}
	if c.ExperienceOK {
		tenths += experienceWeight
	}
	if c.GoodCompanySize {
		tenths += sizeWeight
	}

	score := float64(tenths) / 10
	return Result{
		Score:      score,
		IsRelevant: score >= s.threshold,
		Checks:     c,
	}
}

// IsRelevant is Score(job).IsRelevant.
func (s *Scorer) IsRelevant(job scraper.Job) bool {
	return s.Score(job).IsRelevant
}

// unknown size never counts against a job
func (s *Scorer) isGoodCompanySize(companySize string) bool {
	size := strings.ToLower(companySize)
	if size == "" || size == strings.ToLower(scraper.SizeNotAvailable) {
		return true
	}
	return containsAny(size, s.kw.PreferredSizes)
}

package filter

import (
	"strings"
	"sync"
	"testing"

	"linkedin-job-screener/internal/scraper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorer_Score(t *testing.T) {
	scorer := NewScorer(DefaultKeywords(), 0)

	tests := []struct {
		name     string
		job      scraper.Job
		expected float64
		relevant bool
	}{
		{
			name: "Perfect junior match",
			job: scraper.Job{
				Title:       "junior software engineer",
				Description: "nodejs javascript api development, 1-2 years experience",
				CompanySize: "",
			},
			expected: 1.0,
			relevant: true,
		},
		{
			name: "Senior architect",
			job: scraper.Job{
				Title:       "senior architect",
				Description: "lead the platform",
				CompanySize: "",
			},
			expected: 0.3,
			relevant: false,
		},
		{
			name: "No target but nothing to avoid and unknown size",
			job: scraper.Job{
				Title:       "QA Tester",
				Description: "manual testing",
				CompanySize: scraper.SizeNotAvailable,
			},
			expected: 0.6,
			relevant: true,
		},
		{
			name: "No target and size outside preferred buckets",
			job: scraper.Job{
				Title:       "QA Tester",
				Description: "manual testing",
				CompanySize: "10,001+ employees",
			},
			expected: 0.5,
			relevant: false,
		},
		{
			name: "Target without experience language",
			job: scraper.Job{
				Title:       "Backend Developer",
				Description: "Build REST services in Python",
				CompanySize: "2-10 employees",
			},
			expected: 0.9,
			relevant: true,
		},
		{
			name: "Default avoid list catches minimum 5 years",
			job: scraper.Job{
				Title:       "software engineer",
				Description: "javascript, minimum 5 years required",
				CompanySize: "51-200 employees",
			},
			expected: 0.5,
			relevant: false,
		},
		{
			name: "Sentinel fields",
			job: scraper.Job{
				Title:       scraper.TitleNotFound,
				Description: scraper.DescriptionNotFound,
				CompanySize: scraper.SizeNotAvailable,
			},
			expected: 0.6,
			relevant: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := scorer.Score(tt.job)
			assert.Equal(t, tt.expected, res.Score)
			assert.Equal(t, tt.relevant, res.IsRelevant)
		})
	}
}

// A stated high requirement only costs the experience weight; strong
// target/avoid/size signals still carry the job over the threshold.
func TestScorer_HighExperienceStillRelevant(t *testing.T) {
	kw := DefaultKeywords()
	kw.Avoid = []string{"senior", "lead", "principal", "architect", "manager"}
	scorer := NewScorer(kw, 0)

	res := scorer.Score(scraper.Job{
		Title:       "software engineer",
		Description: "javascript, minimum 5 years required",
		CompanySize: "51-200 employees",
	})

	assert.True(t, res.Checks.HasTarget)
	assert.False(t, res.Checks.HasAvoid)
	assert.False(t, res.Checks.ExperienceOK)
	assert.True(t, res.Checks.GoodCompanySize)
	assert.Equal(t, 0.8, res.Score)
	assert.True(t, res.IsRelevant)
}

func TestScorer_Deterministic(t *testing.T) {
	scorer := NewScorer(DefaultKeywords(), 0)
	job := scraper.Job{
		Title:       "Full Stack Engineer",
		Description: "React + Express, at least 2 years",
		CompanySize: "201-500 employees",
	}

	first := scorer.Score(job)
	second := scorer.Score(job)
	assert.Equal(t, first, second)
}

func TestScorer_AvoidNeverIncreasesScore(t *testing.T) {
	scorer := NewScorer(DefaultKeywords(), 0)
	jobs := []scraper.Job{
		{Title: "junior software engineer", Description: "nodejs", CompanySize: ""},
		{Title: "data analyst", Description: "excel", CompanySize: "10,001+ employees"},
		{Title: "python developer", Description: "5+ years experience", CompanySize: "51-200 employees"},
	}

	for _, job := range jobs {
		before := scorer.Score(job).Score
		withAvoid := job
		withAvoid.Description += " you will lead the team"
		after := scorer.Score(withAvoid).Score
		assert.LessOrEqual(t, after, before, job.Title)
	}
}

func TestScorer_CaseInsensitive(t *testing.T) {
	job := scraper.Job{
		Title:       "Junior Software Engineer",
		Description: "NodeJS JavaScript API development, 1-2 Years Experience",
		CompanySize: "51-200 Employees",
	}
	upperJob := scraper.Job{
		Title:       strings.ToUpper(job.Title),
		Description: strings.ToUpper(job.Description),
		CompanySize: strings.ToUpper(job.CompanySize),
	}

	lowerKW := DefaultKeywords()
	upperKW := KeywordConfig{
		Target:         upperAll(lowerKW.Target),
		Avoid:          upperAll(lowerKW.Avoid),
		Experience:     upperAll(lowerKW.Experience),
		PreferredSizes: upperAll(lowerKW.PreferredSizes),
	}

	want := NewScorer(lowerKW, 0).Score(job)
	assert.Equal(t, want, NewScorer(upperKW, 0).Score(job))
	assert.Equal(t, want, NewScorer(lowerKW, 0).Score(upperJob))
	assert.Equal(t, want, NewScorer(upperKW, 0).Score(upperJob))
	assert.Equal(t, 1.0, want.Score)
}

func TestScorer_UnknownSizeSentinelAnyCase(t *testing.T) {
	scorer := NewScorer(KeywordConfig{PreferredSizes: []string{"51-200 employees"}}, 0)

	for _, size := range []string{"", "size not available", "Size not available", "SIZE NOT AVAILABLE"} {
		res := scorer.Score(scraper.Job{CompanySize: size})
		assert.True(t, res.Checks.GoodCompanySize, size)
	}
	assert.False(t, scorer.Score(scraper.Job{CompanySize: "2-10 employees"}).Checks.GoodCompanySize)
}

func TestScorer_CustomThreshold(t *testing.T) {
	job := scraper.Job{Title: "QA Tester", CompanySize: ""}

	assert.True(t, NewScorer(DefaultKeywords(), 0).IsRelevant(job))
	strict := NewScorer(DefaultKeywords(), 0.7)
	assert.Equal(t, 0.7, strict.Threshold())
	assert.False(t, strict.IsRelevant(job))
}

func TestNewScorer_DoesNotAliasKeywords(t *testing.T) {
	kw := KeywordConfig{Target: []string{"Golang"}}
	scorer := NewScorer(kw, 0)
	kw.Target[0] = "cobol"

	assert.True(t, scorer.Score(scraper.Job{Title: "golang dev"}).Checks.HasTarget)
	assert.Equal(t, "cobol", kw.Target[0])
}

func TestScorer_ConcurrentUse(t *testing.T) {
	scorer := NewScorer(DefaultKeywords(), 0)
	job := scraper.Job{Title: "junior software engineer", Description: "nodejs"}
	want := scorer.Score(job)

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = scorer.Score(job)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

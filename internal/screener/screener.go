package screener

import (
	"fmt"
	"io"
	"log"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"linkedin-job-screener/internal/filter"
	"linkedin-job-screener/internal/scraper"
)

const topDescriptionChars = 100

// Screener scores batches of scraped jobs with a shared Scorer.
type Screener struct {
	scorer  *filter.Scorer
	workers int
	verbose bool
}

// New returns a Screener using at most workers goroutines (<= 0 means GOMAXPROCS).
func New(scorer *filter.Scorer, workers int, verbose bool) *Screener {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Screener{scorer: scorer, workers: workers, verbose: verbose}
}

// Apply copies the result onto job, including its status label.
func Apply(job scraper.Job, r filter.Result) scraper.Job {
	job.Score = r.Score
	job.IsRelevant = r.IsRelevant
	if r.IsRelevant {
		job.ScreeningStatus = scraper.StatusRelevant
	} else {
		job.ScreeningStatus = scraper.StatusNotRelevant
	}
	return job
}

// Screen scores every job and returns them in input order. Scoring is pure
// and quick, so it always completes; a cancelled run still gets its
// already scraped jobs scored and saved.
func (s *Screener) Screen(jobs []scraper.Job) []scraper.Job {
	out := make([]scraper.Job, len(jobs))
	results := make([]filter.Result, len(jobs))

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range jobs {
		g.Go(func() error {
			results[i] = s.scorer.Score(jobs[i])
			out[i] = Apply(jobs[i], results[i])
			return nil
		})
	}
	_ = g.Wait()

	for i, j := range out {
		if j.IsRelevant {
			log.Printf("  ✅ RELEVANT: %s at %s (%.1f)", j.Title, j.Company, j.Score)
		} else {
			log.Printf("  ❌ SKIP: %s at %s (%.1f)", j.Title, j.Company, j.Score)
		}
		if s.verbose {
			c := results[i].Checks
			log.Printf("     target=%v avoid=%v entry_level=%v experience_ok=%v size_ok=%v",
				c.HasTarget, c.HasAvoid, c.EntryLevel, c.ExperienceOK, c.GoodCompanySize)
		}
	}
	return out
}

// Relevant filters screened jobs down to the relevant ones, keeping order.
func Relevant(jobs []scraper.Job) []scraper.Job {
	var out []scraper.Job
	for _, j := range jobs {
		if j.IsRelevant {
			out = append(out, j)
		}
	}
	return out
}

// TopJobs returns up to n relevant jobs, highest score first. Equal scores
// keep discovery order.
func TopJobs(jobs []scraper.Job, n int) []scraper.Job {
	top := Relevant(jobs)
	sort.SliceStable(top, func(a, b int) bool {
		return top[a].Score > top[b].Score
	})
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	return top
}

// PrintTopJobs writes the top n relevant jobs in a human-readable block.
func PrintTopJobs(w io.Writer, jobs []scraper.Job, n int) {
	top := TopJobs(jobs, n)
	if len(top) == 0 {
		fmt.Fprintln(w, "❌ No relevant jobs to display")
		return
	}

	fmt.Fprintf(w, "\n🔥 TOP %d RELEVANT JOBS:\n", len(top))
	fmt.Fprintln(w, strings.Repeat("=", 60))
	for i, j := range top {
		fmt.Fprintf(w, "\n%d. 📍 %s\n", i+1, j.Title)
		fmt.Fprintf(w, "   🏢 %s\n", j.Company)
		fmt.Fprintf(w, "   📍 %s\n", j.Location)
		fmt.Fprintf(w, "   🔗 %s\n", j.URL)
		if r := []rune(j.Description); len(r) > topDescriptionChars {
			fmt.Fprintf(w, "   📝 %s...\n", string(r[:topDescriptionChars]))
		}
	}
}

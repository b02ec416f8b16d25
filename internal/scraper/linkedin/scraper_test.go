package linkedin

import (
	"context"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-job-screener/internal/scraper"
)

//helper start a headless browser whose every request is answered with body
func setupMockedPage(t *testing.T, body string) playwright.Page {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping browser test in short mode")
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skipf("playwright not available: %v", err)
	}
	t.Cleanup(func() { _ = pw.Stop() })

	b, err := pw.Firefox.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Skipf("firefox not available: %v", err)
	}
	t.Cleanup(func() { _ = b.Close() })

	page, err := b.NewPage()
	require.NoError(t, err)

	require.NoError(t, page.Route("**/*", func(route playwright.Route) {
		_ = route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        body,
		})
	}))
	return page
}

const mockSearchHTML = `<html><body>
<ul class="jobs-search__results-list">
  <li class="jobs-search-results__list-item">Card one</li>
  <li class="jobs-search-results__list-item">Card two</li>
  <li class="jobs-search-results__list-item">Card three</li>
</ul>` + jobDetailFixture + `</body></html>`

func TestLinkedInScraper_Scrape_Mocked(t *testing.T) {
	page := setupMockedPage(t, mockSearchHTML)

	s := NewLinkedInScraper(Options{RequestsPerSecond: 100, WaitTimeout: 5 * time.Second})
	jobs, err := s.Scrape(context.Background(), page, scraper.Search{
		Keywords: "python developer",
		Location: "India",
		MaxJobs:  2,
	})

	require.NoError(t, err)
	require.Len(t, jobs, 2, "MaxJobs caps the number of screened cards")
	for _, j := range jobs {
		assert.Equal(t, "Junior Python Developer", j.Title)
		assert.Equal(t, "Acme Labs", j.Company)
		assert.Contains(t, j.URL, "/jobs/search/")
		_, err := time.Parse(screeningDateLayout, j.ScreeningDate)
		assert.NoError(t, err)
	}
}

func TestLinkedInScraper_Scrape_NoResults(t *testing.T) {
	page := setupMockedPage(t, `<html><title>Sign in</title><body>Please sign in</body></html>`)

	s := NewLinkedInScraper(Options{RequestsPerSecond: 100, WaitTimeout: time.Second})
	jobs, err := s.Scrape(context.Background(), page, scraper.Search{Keywords: "qa", MaxJobs: 5})

	assert.Error(t, err)
	assert.Empty(t, jobs)
}

func TestLinkedInScraper_SearchProfiles_Mocked(t *testing.T) {
	page := setupMockedPage(t, `<html><body>
<a href="https://www.linkedin.com/in/ana/">Ana</a>
<a href="https://www.linkedin.com/in/ana/?miniProfileUrn=1">Ana again</a>
<a href="/in/bob/">Bob</a>
<a href="/in/carl/">Carl</a>
</body></html>`)

	s := NewLinkedInScraper(Options{RequestsPerSecond: 100, WaitTimeout: time.Second})
	links, err := s.SearchProfiles(context.Background(), page, "qa engineer", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://www.linkedin.com/in/ana/",
		"https://www.linkedin.com/in/bob/",
	}, links)
}

func TestLinkedInScraper_Login_NoCredentials(t *testing.T) {
	s := NewLinkedInScraper(Options{})
	err := s.Login(context.Background(), nil, false)
	assert.ErrorIs(t, err, ErrLoginFailed)
}

package linkedin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/time/rate"

	"linkedin-job-screener/internal/browser"
	"linkedin-job-screener/internal/scraper"
)

const (
	baseURL  = "https://www.linkedin.com"
	loginURL = baseURL + "/login"
	feedURL  = baseURL + "/feed/"

	jobCardSelector    = "li.jobs-search-results__list-item, li.scaffold-layout__list-item"
	resultListSelector = "ul.jobs-search__results-list, " + jobCardSelector

	screeningDateLayout = "2006-01-02 15:04:05"
)

var ErrLoginFailed = errors.New("linkedin login failed")

var _ scraper.Scraper = (*LinkedInScraper)(nil)

type Options struct {
	Email    string
	Password string

	// RequestsPerSecond paces page visits and card clicks. <= 0 means 0.5.
	RequestsPerSecond float64

	// WaitTimeout bounds each selector wait. <= 0 means 10s.
	WaitTimeout time.Duration

	Screenshots *browser.Screenshotter
}

type LinkedInScraper struct {
	opts    Options
	limiter *rate.Limiter
	now     func() time.Time
}

func NewLinkedInScraper(opts Options) *LinkedInScraper {
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 0.5
	}
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = 10 * time.Second
	}
	return &LinkedInScraper{
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		now:     time.Now,
	}
}

func (s *LinkedInScraper) Name() string {
	return "LinkedIn"
}

func (s *LinkedInScraper) waitMs() *float64 {
	return playwright.Float(float64(s.opts.WaitTimeout.Milliseconds()))
}

// Login reuses a cookie session when the feed loads, and otherwise signs in
// with the configured email and password.
func (s *LinkedInScraper) Login(ctx context.Context, page playwright.Page, haveSession bool) error {
	if haveSession {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}
		log.Println("🍪 Session cookie found, checking feed...")
		if _, err := page.Goto(feedURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		}); err == nil && isLoggedInURL(page.URL()) {
			log.Println("✅ Login confirmed via cookies.")
			return nil
		}
		log.Println("⚠️ Cookie session rejected, falling back to password login")
	}

	if s.opts.Email == "" || s.opts.Password == "" {
		return fmt.Errorf("%w: no credentials configured", ErrLoginFailed)
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	log.Println("🌐 Opening LinkedIn...")
	if _, err := page.Goto(loginURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to load login page: %w", err)
	}

	email := page.Locator("#username")
	if err := email.WaitFor(playwright.LocatorWaitForOptions{Timeout: s.waitMs()}); err != nil {
		s.opts.Screenshots.Capture(page, "login_form", "Login form not found")
		return fmt.Errorf("%w: login form not found: %v", ErrLoginFailed, err)
	}
	if err := email.Fill(s.opts.Email); err != nil {
		return fmt.Errorf("fill email: %w", err)
	}
	if err := page.Locator("#password").Fill(s.opts.Password); err != nil {
		return fmt.Errorf("fill password: %w", err)
	}
	browser.RandomDelay(300, 800)
	if err := page.Locator("button[type='submit']").First().Click(); err != nil {
		return fmt.Errorf("click sign in: %w", err)
	}

	if err := page.WaitForURL(regexp.MustCompile(`linkedin\.com/(feed|mynetwork)`), playwright.PageWaitForURLOptions{
		Timeout: s.waitMs(),
	}); err != nil {
		s.opts.Screenshots.Capture(page, "login_failed", "Login did not reach the feed")
		return fmt.Errorf("%w: %v", ErrLoginFailed, err)
	}
	log.Println("✅ Successfully logged into LinkedIn")
	browser.RandomDelay(1500, 2500)
	_ = browser.MouseJiggle(page)
	return nil
}

func isLoggedInURL(u string) bool {
	return strings.Contains(u, "/feed") || strings.Contains(u, "/mynetwork")
}

// SearchURL builds the job search URL for keywords in a location.
func SearchURL(keywords, location string) string {
	q := url.Values{}
	q.Set("keywords", keywords)
	if location != "" {
		q.Set("location", location)
	}
	return baseURL + "/jobs/search/?" + q.Encode()
}

// SearchJobs opens the result list for keywords in location.
func (s *LinkedInScraper) SearchJobs(ctx context.Context, page playwright.Page, keywords, location string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}
	searchURL := SearchURL(keywords, location)
	log.Printf("  🌐 Visiting Job Search: %s", searchURL)
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to load job search page: %w", err)
	}

	if _, err := page.WaitForSelector(resultListSelector, playwright.PageWaitForSelectorOptions{
		Timeout: s.waitMs(),
	}); err != nil {
		s.opts.Screenshots.Capture(page, "search_results", "Job list not found")
		return fmt.Errorf("job list not found for %q: %w", keywords, err)
	}
	log.Printf("🔍 Search completed for: %s in %s", keywords, location)
	browser.RandomDelay(1500, 2500)
	if err := browser.HumanScroll(page); err != nil {
		log.Printf("⚠️ Scroll failed: %v", err)
	}
	return nil
}

// Scrape runs one search and reads the detail panel of up to search.MaxJobs
// cards. A card that fails is logged and skipped.
func (s *LinkedInScraper) Scrape(ctx context.Context, page playwright.Page, search scraper.Search) ([]scraper.Job, error) {
	if err := s.SearchJobs(ctx, page, search.Keywords, search.Location); err != nil {
		return nil, err
	}

	cards, err := page.Locator(jobCardSelector).All()
	if err != nil {
		return nil, fmt.Errorf("error finding job cards: %w", err)
	}

	limit := len(cards)
	if search.MaxJobs > 0 && search.MaxJobs < limit {
		limit = search.MaxJobs
	}
	log.Printf("📋 Found %d jobs to screen...", len(cards))

	jobs := make([]scraper.Job, 0, limit)
	for i := 0; i < limit; i++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return jobs, err
		}
		log.Printf("📝 Screening job %d/%d", i+1, limit)

		job, err := s.screenCard(page, cards[i])
		if err != nil {
			log.Printf("  ⚠️ Error processing job %d: %v", i+1, err)
			continue
		}
		jobs = append(jobs, job)
		browser.RandomDelay(800, 1500)
	}
	return jobs, nil
}

func (s *LinkedInScraper) screenCard(page playwright.Page, card playwright.Locator) (scraper.Job, error) {
	if err := card.ScrollIntoViewIfNeeded(); err != nil {
		return scraper.Job{}, fmt.Errorf("scroll card: %w", err)
	}
	browser.RandomDelay(500, 1000)
	if err := card.Click(); err != nil {
		return scraper.Job{}, fmt.Errorf("click card: %w", err)
	}
	browser.RandomDelay(1500, 2500)
	return s.extractJobDetails(page)
}

// extractJobDetails waits briefly for the title and then parses whatever
// the detail panel holds. A missing title is not an error.
func (s *LinkedInScraper) extractJobDetails(page playwright.Page) (scraper.Job, error) {
	_, _ = page.WaitForSelector(titleSelector, playwright.PageWaitForSelectorOptions{
		Timeout: s.waitMs(),
	})

	content, err := page.Content()
	if err != nil {
		return scraper.Job{}, fmt.Errorf("read page content: %w", err)
	}
	job, err := ParseJobDetailHTML(content, page.URL())
	if err != nil {
		return scraper.Job{}, err
	}
	job.ScreeningDate = s.now().Format(screeningDateLayout)
	return job, nil
}

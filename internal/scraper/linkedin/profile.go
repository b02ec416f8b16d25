package linkedin

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"linkedin-job-screener/internal/browser"
	"linkedin-job-screener/internal/scraper"
)

const profileReadySelector = ".pv-text-details__left-panel"

// ProfileSearchURL builds the people search URL for query.
func ProfileSearchURL(query string) string {
	return baseURL + "/search/results/people/?keywords=" + url.QueryEscape(query)
}

// linkSet keeps profile links in discovery order without duplicates.
type linkSet struct {
	seen  map[string]struct{}
	links []string
}

func newLinkSet() *linkSet {
	return &linkSet{seen: make(map[string]struct{})}
}

// add accepts plain profile links only: "/in/" and no query string.
func (ls *linkSet) add(href string) {
	href = strings.TrimSpace(href)
	if !strings.Contains(href, "/in/") || strings.Contains(href, "?") {
		return
	}
	if strings.HasPrefix(href, "/") {
		href = baseURL + href
	}
	if _, ok := ls.seen[href]; ok {
		return
	}
	ls.seen[href] = struct{}{}
	ls.links = append(ls.links, href)
}

// SearchProfiles scrolls the people search results until maxResults links are
// collected or the page stops growing.
func (s *LinkedInScraper) SearchProfiles(ctx context.Context, page playwright.Page, query string, maxResults int) ([]string, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if _, err := page.Goto(ProfileSearchURL(query), playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return nil, fmt.Errorf("failed to load people search: %w", err)
	}
	browser.RandomDelay(2000, 3000)

	links := newLinkSet()
	err := browser.ScrollUntilStable(ctx, page, 2*time.Second, func() bool {
		anchors, err := page.Locator("a[href*='/in/']").All()
		if err != nil {
			log.Printf("⚠️ Error finding profile links: %v", err)
			return false
		}
		for _, a := range anchors {
			href, err := a.GetAttribute("href")
			if err != nil {
				continue
			}
			links.add(href)
			if len(links.links) >= maxResults {
				return true
			}
		}
		return false
	})
	if err != nil && len(links.links) == 0 {
		return nil, fmt.Errorf("search profiles: %w", err)
	}

	found := links.links
	if len(found) > maxResults {
		found = found[:maxResults]
	}
	log.Printf("🔗 Found %d profile links", len(found))
	return found, nil
}

// ScrapeProfile loads one profile and parses its top card.
func (s *LinkedInScraper) ScrapeProfile(ctx context.Context, page playwright.Page, profileURL string) (scraper.Profile, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return scraper.Profile{}, err
	}
	if _, err := page.Goto(profileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return scraper.Profile{}, fmt.Errorf("load profile %s: %w", profileURL, err)
	}
	if _, err := page.WaitForSelector(profileReadySelector, playwright.PageWaitForSelectorOptions{
		Timeout: s.waitMs(),
	}); err != nil {
		s.opts.Screenshots.Capture(page, "profile", "Profile top card not found")
		return scraper.Profile{}, fmt.Errorf("profile %s did not load: %w", profileURL, err)
	}

	content, err := page.Content()
	if err != nil {
		return scraper.Profile{}, fmt.Errorf("read profile content: %w", err)
	}
	profile, err := ParseProfileHTML(content, profileURL)
	if err != nil {
		return scraper.Profile{}, err
	}
	log.Printf("👤 Scraped: %s", profile.Name)
	return profile, nil
}

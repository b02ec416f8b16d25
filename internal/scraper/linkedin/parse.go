package linkedin

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"linkedin-job-screener/internal/scraper"
)

const (
	titleSelector       = "h1[class*='job-title'], h1[class*='t-24']"
	companySelector     = "a[class*='job-details-jobs-unified-top-card__company-name']"
	locationSelector    = "span[class*='job-details-jobs-unified-top-card__bullet']"
	descriptionSelector = "div[class*='job-details-jobs-unified-top-card__job-description']"
	// newer job view layouts
	descriptionFallback = "#job-details, .jobs-description__content"
)

// ParseJobDetailHTML extracts the job panel fields from a rendered page.
// Fields that cannot be found get their sentinel value, never "".
func ParseJobDetailHTML(rawHTML, pageURL string) (scraper.Job, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return scraper.Job{}, fmt.Errorf("parse job page: %w", err)
	}

	description := firstText(doc, descriptionSelector)
	if description == "" {
		description = firstText(doc, descriptionFallback)
	}

	return scraper.Job{
		Title:       scraper.OrDefault(firstText(doc, titleSelector), scraper.TitleNotFound),
		Company:     scraper.OrDefault(firstText(doc, companySelector), scraper.CompanyNotFound),
		Location:    scraper.OrDefault(firstText(doc, locationSelector), scraper.LocationNotFound),
		Description: scraper.OrDefault(description, scraper.DescriptionNotFound),
		CompanySize: scraper.OrDefault(companySize(doc), scraper.SizeNotAvailable),
		URL:         pageURL,
	}, nil
}

// ParseProfileHTML reads the top card and about section of a profile page.
// Missing fields are "N/A".
func ParseProfileHTML(rawHTML, profileURL string) (scraper.Profile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return scraper.Profile{}, fmt.Errorf("parse profile page: %w", err)
	}

	location := ""
	doc.Find("span.text-body-small").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if t := scraper.CleanText(s.Text()); t != "" && strings.Contains(t, ",") {
			location = t
			return false
		}
		return true
	})

	about := ""
	if section := doc.Find("div.pv-shared-text-with-see-more").First(); section.Length() > 0 {
		about = section.Find("span[aria-hidden='true']").First().Text()
	}

	return scraper.Profile{
		Name:       scraper.OrDefault(firstText(doc, "h1.text-heading-xlarge"), scraper.NotAvailable),
		Title:      scraper.OrDefault(firstText(doc, "div.text-body-medium"), scraper.NotAvailable),
		Location:   scraper.OrDefault(location, scraper.NotAvailable),
		About:      scraper.OrDefault(about, scraper.NotAvailable),
		ProfileURL: profileURL,
	}, nil
}

func firstText(doc *goquery.Document, selector string) string {
	return doc.Find(selector).First().Text()
}

// companySize returns the first span whose own text mentions employees,
// e.g. "51-200 employees".
func companySize(doc *goquery.Document) string {
	size := ""
	doc.Find("span").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		own := ownText(s)
		if strings.Contains(strings.ToLower(own), "employee") {
			size = own
			return false
		}
		return true
	})
	return size
}

func ownText(s *goquery.Selection) string {
	var b strings.Builder
	s.Contents().Each(func(_ int, c *goquery.Selection) {
		if n := c.Get(0); n != nil && n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
	})
	return b.String()
}

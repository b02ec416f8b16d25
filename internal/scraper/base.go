// Define the records produced by the LinkedIn scrapers
// and the interface every job source implements

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Sentinels used when a field could not be extracted from the page.
// Scorers rely on these fields never being left undefined.
const (
	TitleNotFound       = "Title not found"
	CompanyNotFound     = "Company not found"
	LocationNotFound    = "Location not found"
	DescriptionNotFound = "Description not found"
	SizeNotAvailable    = "Size not available"
	NotAvailable        = "N/A"
)

// Screening status labels written next to every screened job
const (
	StatusRelevant    = "✅ RELEVANT"
	StatusNotRelevant = "❌ NOT RELEVANT"
)

type Job struct {
	Title         string `json:"title"`
	Company       string `json:"company"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	CompanySize   string `json:"company_size"`
	URL           string `json:"job_url"`
	ScreeningDate string `json:"screening_date"`

	//filled by the screener
	Score           float64 `json:"score"`
	IsRelevant      bool    `json:"is_relevant"`
	ScreeningStatus string  `json:"screening_status"`
}

type Profile struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	About      string `json:"about"`
	ProfileURL string `json:"profile_url"`
}

// Search is one keyword/location pair to run against a job board
type Search struct {
	Keywords string
	Location string
	MaxJobs  int
}

// Scraper defines the interface that job sources must implement
type Scraper interface {
	//Scrape returns the raw job records for one search; scoring happens later
	Scrape(ctx context.Context, page playwright.Page, search Search) ([]Job, error)

	//Name is the platform name
	Name() string
}

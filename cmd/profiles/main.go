package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"linkedin-job-screener/internal/browser"
	"linkedin-job-screener/internal/config"
	"linkedin-job-screener/internal/output"
	"linkedin-job-screener/internal/scraper"
	"linkedin-job-screener/internal/scraper/linkedin"
	"linkedin-job-screener/internal/secrets"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config")
	query := flag.String("query", "", "people search query, e.g. \"python developer\" (overrides config)")
	maxProfiles := flag.Int("max", 0, "number of profiles to scrape (overrides config)")
	headless := flag.Bool("headless", false, "run Firefox without a window")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "query":
			cfg.Search.ProfileQuery = *query
		case "max":
			cfg.Search.MaxProfiles = *maxProfiles
		case "headless":
			cfg.Browser.Headless = *headless
		}
	})
	if strings.TrimSpace(cfg.Search.ProfileQuery) == "" {
		log.Fatal("❌ No search query: pass -query or set search.profile_query")
	}

	password, err := secrets.ResolveLinkedInPassword(cfg.LinkedInEmail, cfg.LinkedInPassword)
	if err != nil {
		log.Printf("⚠️ %v. Continuing with cookies only.", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pwManager, err := browser.NewPlaywright(ctx, browser.Options{
		Headless:        cfg.Browser.Headless,
		PageLoadTimeout: cfg.PageLoadTimeout(),
		ImplicitWait:    cfg.ImplicitWait(),
	})
	if err != nil {
		log.Fatalf("❌ Failed to init Playwright: %v", err)
	}
	defer pwManager.Close()

	cookies, err := browser.LoadCookies(cfg.CookiesFile())
	if err != nil {
		log.Printf("⚠️ Could not load LinkedIn cookies: %v. Continuing.", err)
	}
	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("❌ Failed to create new page: %v", err)
	}

	li := linkedin.NewLinkedInScraper(linkedin.Options{
		Email:             cfg.LinkedInEmail,
		Password:          password,
		RequestsPerSecond: cfg.Browser.RequestsPerSecond,
		WaitTimeout:       cfg.ImplicitWait(),
		Screenshots:       browser.NewScreenshotter(""),
	})
	if err := li.Login(ctx, page, browser.HasSessionCookie(cookies)); err != nil {
		log.Printf("❌ %v", err)
		return
	}

	log.Printf("🔎 Searching for %q...", cfg.Search.ProfileQuery)
	links, err := li.SearchProfiles(ctx, page, cfg.Search.ProfileQuery, cfg.Search.MaxProfiles)
	if err != nil {
		log.Printf("❌ %v", err)
		return
	}
	if len(links) == 0 {
		log.Println("ℹ️ No profiles found")
		return
	}

	log.Printf("Scraping %d profiles...", len(links))
	var profiles []scraper.Profile
	for i, link := range links {
		if ctx.Err() != nil {
			log.Println("⚠️ Scraping interrupted by user")
			break
		}
		log.Printf("Scraping profile %d/%d", i+1, len(links))
		p, err := li.ScrapeProfile(ctx, page, link)
		if err != nil {
			log.Printf("  ⚠️ %v", err)
			continue
		}
		profiles = append(profiles, p)
		time.Sleep(2 * time.Second)
	}

	if len(profiles) == 0 {
		log.Println("ℹ️ No profiles were successfully scraped")
		return
	}
	if err := output.SaveProfilesCSV(cfg.Output.ProfilesCSV, profiles); err != nil {
		log.Printf("❌ %v", err)
	}
	if err := output.SaveProfilesJSON(cfg.Output.ProfilesJSON, profiles); err != nil {
		log.Printf("❌ %v", err)
	}
	log.Printf("🏁 Scraping completed! Found %d profiles.", len(profiles))
}

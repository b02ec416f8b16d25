package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/playwright-community/playwright-go"

	"linkedin-job-screener/internal/browser"
	"linkedin-job-screener/internal/config"
	"linkedin-job-screener/internal/dedup"
	"linkedin-job-screener/internal/filter"
	"linkedin-job-screener/internal/output"
	"linkedin-job-screener/internal/scraper"
	"linkedin-job-screener/internal/scraper/linkedin"
	"linkedin-job-screener/internal/screener"
	"linkedin-job-screener/internal/secrets"
	"linkedin-job-screener/internal/store"
	"linkedin-job-screener/internal/telegram"
)

const runTimeout = 45 * time.Minute

type flags struct {
	configPath string
	headless   bool
	maxJobs    int
	saveAll    bool
	top        int
	fresh      bool
	verbose    bool
	history    int
}

func main() {
	var f flags
	flag.StringVar(&f.configPath, "config", config.DefaultPath, "path to the YAML config")
	flag.BoolVar(&f.headless, "headless", false, "run Firefox without a window")
	flag.IntVar(&f.maxJobs, "max-jobs", 0, "job cards to screen per search (overrides config)")
	flag.BoolVar(&f.saveAll, "save-all", false, "also write every screened job to <csv>_all_jobs.csv")
	flag.IntVar(&f.top, "top", 5, "number of top relevant jobs to print")
	flag.BoolVar(&f.fresh, "fresh", false, "overwrite the result CSVs instead of appending")
	flag.BoolVar(&f.verbose, "verbose", false, "log the per-rule breakdown of every score")
	flag.IntVar(&f.history, "history", 0, "print the N most recent relevant screenings from sqlite and exit")
	flag.Parse()

	//load config
	cfg, err := config.Load(f.configPath)
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	applyOverrides(cfg, f, set)
	log.Printf("🔧 Config loaded. Keywords: %v, location: %s", cfg.Search.Keywords, cfg.Search.Location)

	if f.history > 0 {
		if err := printHistory(cfg, f.history); err != nil {
			log.Fatalf("❌ %v", err)
		}
		return
	}

	if err := output.EnsureDirectories(output.DefaultDirectories...); err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	if err := run(ctx, cfg, f); err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Println("🏁 Execution finished.")
}

// applyOverrides copies explicitly set flags onto cfg. A non-positive
// -max-jobs is ignored so it cannot turn into "no limit".
func applyOverrides(cfg *config.Config, f flags, set map[string]bool) {
	if set["headless"] {
		cfg.Browser.Headless = f.headless
	}
	if set["max-jobs"] {
		if f.maxJobs > 0 {
			cfg.Search.MaxJobsPerSearch = f.maxJobs
		} else {
			log.Printf("⚠️ Ignoring -max-jobs %d, keeping %d", f.maxJobs, cfg.Search.MaxJobsPerSearch)
		}
	}
	if set["save-all"] {
		cfg.Output.SaveAllJobs = f.saveAll
	}
}

func run(ctx context.Context, cfg *config.Config, f flags) error {
	opLog := output.NewOperationLog(cfg.Output.LogFile)
	opLog.Logf("Screening started: %d searches in %s", len(cfg.Search.Keywords), cfg.Search.Location)

	password, err := secrets.ResolveLinkedInPassword(cfg.LinkedInEmail, cfg.LinkedInPassword)
	if err != nil {
		log.Printf("⚠️ %v. Continuing with cookies only.", err)
	}

	var bot *telegram.Bot
	if cfg.TelegramEnabled() {
		bot, err = telegram.NewBot(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Printf("⚠️ Telegram disabled: %v", err)
			bot = nil
		} else {
			log.Println("🤖 Telegram Bot initialized.")
		}
	}

	var history *store.DB
	if cfg.Output.SQLitePath != "" {
		history, err = store.Open(cfg.Output.SQLitePath)
		if err != nil {
			log.Printf("⚠️ Screening history disabled: %v", err)
			history = nil
		} else {
			defer history.Close()
		}
	}

	log.Println("🚀 Starting LinkedIn job screener...")
	pwManager, err := browser.NewPlaywright(ctx, browser.Options{
		Headless:        cfg.Browser.Headless,
		PageLoadTimeout: cfg.PageLoadTimeout(),
		ImplicitWait:    cfg.ImplicitWait(),
	})
	if err != nil {
		return fmt.Errorf("failed to init Playwright: %w", err)
	}
	defer pwManager.Close()

	page, haveSession, err := openPage(pwManager, cfg.CookiesFile())
	if err != nil {
		return err
	}

	li := linkedin.NewLinkedInScraper(linkedin.Options{
		Email:             cfg.LinkedInEmail,
		Password:          password,
		RequestsPerSecond: cfg.Browser.RequestsPerSecond,
		WaitTimeout:       cfg.ImplicitWait(),
		Screenshots:       browser.NewScreenshotter(""),
	})
	if err := li.Login(ctx, page, haveSession); err != nil {
		if bot != nil {
			_ = bot.SendError(err)
		}
		return err
	}

	jobCache := dedup.NewJobCache(cfg.CachePath)
	sc := screener.New(filter.NewScorer(cfg.Keywords(), cfg.Filter.Threshold), 0, f.verbose)

	// saving must outlive a cancelled run
	saveCtx := context.WithoutCancel(ctx)

	var screened []scraper.Job
	runSeen := make(map[string]bool)
	for _, keywords := range cfg.Search.Keywords {
		if ctx.Err() != nil {
			log.Printf("⚠️ Run interrupted (%v), saving what was screened", ctx.Err())
			break
		}
		log.Printf("\n🔑 Searching: %q", keywords)
		jobs, err := li.Scrape(ctx, page, scraper.Search{
			Keywords: keywords,
			Location: cfg.Search.Location,
			MaxJobs:  cfg.Search.MaxJobsPerSearch,
		})
		if err != nil {
			log.Printf("❌ Search %q failed: %v", keywords, err)
			opLog.Logf("Search %q failed: %v", keywords, err)
			if len(jobs) == 0 {
				continue
			}
		}

		unseen := make([]scraper.Job, 0, len(jobs))
		for _, j := range jobCache.FilterUnseen(jobs) {
			key := dedup.NormalizeURL(j.URL)
			if key != "" && runSeen[key] {
				continue
			}
			runSeen[key] = true
			unseen = append(unseen, j)
		}
		log.Printf("🔍 Deduplication: %d total -> %d unseen jobs", len(jobs), len(unseen))

		results := sc.Screen(unseen)
		opLog.Logf("Search %q: screened %d jobs, %d relevant", keywords, len(results), len(screener.Relevant(results)))

		if history != nil {
			if err := history.SaveScreenings(saveCtx, keywords, results); err != nil {
				log.Printf("⚠️ Failed to record screening history: %v", err)
			}
		}
		screened = append(screened, results...)
	}

	relevant := screener.Relevant(screened)
	log.Printf("\n📦 Screened %d jobs, %d relevant", len(screened), len(relevant))
	finishRun(cfg, f.fresh, opLog, jobCache, screened)
	notify(bot, relevant, len(screened))

	screener.PrintTopJobs(os.Stdout, screened, f.top)
	opLog.Logf("Screening finished: %d screened, %d relevant", len(screened), len(relevant))
	return nil
}

// openPage creates a browser context seeded with the saved LinkedIn cookies.
func openPage(pm *browser.PlaywrightManager, cookiesFile string) (playwright.Page, bool, error) {
	cookies, err := browser.LoadCookies(cookiesFile)
	if err != nil {
		log.Printf("⚠️ Could not load LinkedIn cookies: %v. Continuing.", err)
	} else {
		log.Printf("🍪 Loaded LinkedIn cookies (%d)", len(cookies))
	}

	browserCtx, err := pm.NewContext(cookies)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create browser context: %w", err)
	}
	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, false, fmt.Errorf("failed to create new page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")
	return page, browser.HasSessionCookie(cookies), nil
}

// finishRun saves the results and only then marks the screened URLs as
// seen, so jobs that never reached the CSV are screened again next run.
func finishRun(cfg *config.Config, fresh bool, opLog *output.OperationLog, cache *dedup.JobCache, screened []scraper.Job) {
	if err := saveResults(cfg, fresh, opLog, screener.Relevant(screened), screened); err != nil {
		log.Printf("❌ Failed to save results: %v. Jobs stay unseen for the next run.", err)
		return
	}
	urls := make([]string, 0, len(screened))
	for _, j := range screened {
		urls = append(urls, j.URL)
	}
	cache.Add(urls)
}

// saveResults returns the error of the relevant-jobs CSV only; the all-jobs
// and JSON files are best effort.
func saveResults(cfg *config.Config, fresh bool, opLog *output.OperationLog, relevant, all []scraper.Job) error {
	save := output.AppendJobsCSV
	if fresh {
		save = output.SaveJobsCSV
	}

	if len(relevant) > 0 {
		if err := save(cfg.Output.CSVFile, relevant); err != nil {
			return err
		}
		log.Printf("💾 Saved %d relevant jobs", len(relevant))
		opLog.Logf("Saved %d relevant jobs to %s", len(relevant), cfg.Output.CSVFile)
	} else {
		log.Println("❌ No relevant jobs found to save")
	}

	if cfg.Output.SaveAllJobs && len(all) > 0 {
		path := cfg.AllJobsCSV()
		if err := save(path, all); err != nil {
			log.Printf("❌ Failed to save all jobs: %v", err)
		} else {
			log.Printf("💾 Saved %d total jobs screened", len(all))
			opLog.Logf("Saved %d screened jobs to %s", len(all), path)
		}
	}

	if cfg.Output.JSONFile != "" {
		path := output.DatedJSONPath(cfg.Output.JSONFile, time.Now())
		if err := output.SaveJobsJSON(path, relevant); err != nil {
			log.Printf("⚠️ Failed to write JSON results: %v", err)
		} else if len(relevant) > 0 {
			log.Printf("📁 Results saved to %s", path)
		}
	}
	return nil
}

func notify(bot *telegram.Bot, relevant []scraper.Job, screened int) {
	if bot == nil || len(relevant) == 0 {
		return
	}
	log.Printf("📊 Sending %d relevant jobs to Telegram", len(relevant))
	sent := 0
	for _, job := range relevant {
		if err := bot.SendJob(job); err != nil {
			log.Printf("⚠️ Failed to send job to Telegram: %v", err)
			continue
		}
		sent++
		//1 second delay to avoid 429
		time.Sleep(1 * time.Second)
	}
	statusMsg := fmt.Sprintf("✅ Screened %d jobs, %d relevant, sent %d.", screened, len(relevant), sent)
	if err := bot.SendStatus(statusMsg); err != nil {
		log.Printf("⚠️ Failed to send status to Telegram: %v", err)
	}
}

func printHistory(cfg *config.Config, n int) error {
	if cfg.Output.SQLitePath == "" {
		return fmt.Errorf("output.sqlite_path is not configured")
	}
	db, err := store.Open(cfg.Output.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := db.ListRecent(context.Background(), n, true)
	if err != nil {
		return err
	}
	jobs := make([]scraper.Job, 0, len(rows))
	for _, r := range rows {
		jobs = append(jobs, r.Job)
	}
	screener.PrintTopJobs(os.Stdout, jobs, n)
	return nil
}

// Load envs from .env
// Load YAML config
// Override with env vars
// Provide default values
// Validate config

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"linkedin-job-screener/internal/filter"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "configs/config.yaml"

type SearchConfig struct {
	Keywords         []string `yaml:"keywords"`
	Location         string   `yaml:"location"`
	MaxJobsPerSearch int      `yaml:"max_jobs_per_search"`
	ProfileQuery     string   `yaml:"profile_query"`
	MaxProfiles      int      `yaml:"max_profiles"`
}

type FilterConfig struct {
	filter.KeywordConfig `yaml:",inline"`
	Threshold            float64 `yaml:"threshold"`
}

type OutputConfig struct {
	CSVFile      string `yaml:"csv_filename"`
	LogFile      string `yaml:"log_filename"`
	SaveAllJobs  bool   `yaml:"save_all_jobs"`
	JSONFile     string `yaml:"json_filename"`
	SQLitePath   string `yaml:"sqlite_path"`
	ProfilesCSV  string `yaml:"profiles_csv"`
	ProfilesJSON string `yaml:"profiles_json"`
}

type BrowserConfig struct {
	Headless          bool    `yaml:"headless"`
	PageLoadTimeout   int     `yaml:"page_load_timeout"` // seconds
	ImplicitWait      int     `yaml:"implicit_wait"`     // seconds
	CookiesPath       string  `yaml:"cookies_path"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
}

type TelegramConfig struct {
	Token  string `yaml:"token" env:"TELEGRAM_BOT_TOKEN"`
	ChatID int64  `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
}

type Config struct {
	Search    SearchConfig   `yaml:"search"`
	Filter    FilterConfig   `yaml:"filter"`
	Output    OutputConfig   `yaml:"output"`
	Browser   BrowserConfig  `yaml:"browser"`
	Telegram  TelegramConfig `yaml:"telegram"`
	CachePath string         `yaml:"cache_path"`

	//credentials come from the environment only
	LinkedInEmail    string `yaml:"-" env:"LINKEDIN_EMAIL"`
	LinkedInPassword string `yaml:"-" env:"LINKEDIN_PASSWORD"`
}

// Load reads .env, then the YAML file at path, then env overrides, then
// fills defaults and validates. A missing YAML file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️ Could not read %s: %v (using defaults)", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)

	if err := Validate(*cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if email := os.Getenv("LINKEDIN_EMAIL"); email != "" {
		cfg.LinkedInEmail = email
	}
	if password := os.Getenv("LINKEDIN_PASSWORD"); password != "" {
		cfg.LinkedInPassword = password
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.Telegram.Token = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = id
	}

	if headless := os.Getenv("SCREENER_HEADLESS"); headless != "" {
		v, err := strconv.ParseBool(headless)
		if err != nil {
			return fmt.Errorf("invalid SCREENER_HEADLESS: %w", err)
		}
		cfg.Browser.Headless = v
	}
	return nil
}

// ApplyDefaults fills every unset field. Keyword lists are defaulted one
// by one, so a YAML file may override only the lists it names.
func ApplyDefaults(cfg *Config) {
	if len(cfg.Search.Keywords) == 0 {
		cfg.Search.Keywords = []string{
			"software engineer nodejs",
			"backend developer javascript",
			"full stack developer node.js",
			"software engineer I",
			"junior software engineer",
		}
	}
	if cfg.Search.Location == "" {
		cfg.Search.Location = "India"
	}
	if cfg.Search.MaxJobsPerSearch == 0 {
		cfg.Search.MaxJobsPerSearch = 20
	}
	if cfg.Search.MaxProfiles == 0 {
		cfg.Search.MaxProfiles = 5
	}

	defaults := filter.DefaultKeywords()
	if cfg.Filter.Target == nil {
		cfg.Filter.Target = defaults.Target
	}
	if cfg.Filter.Avoid == nil {
		cfg.Filter.Avoid = defaults.Avoid
	}
	if cfg.Filter.Experience == nil {
		cfg.Filter.Experience = defaults.Experience
	}
	if cfg.Filter.PreferredSizes == nil {
		cfg.Filter.PreferredSizes = defaults.PreferredSizes
	}
	if cfg.Filter.Threshold == 0 {
		cfg.Filter.Threshold = filter.DefaultThreshold
	}

	if cfg.Output.CSVFile == "" {
		cfg.Output.CSVFile = "data/output/relevant_jobs.csv"
	}
	if cfg.Output.LogFile == "" {
		cfg.Output.LogFile = "data/output/logs/screening_log.txt"
	}
	if cfg.Output.ProfilesCSV == "" {
		cfg.Output.ProfilesCSV = "linkedin_profiles.csv"
	}
	if cfg.Output.ProfilesJSON == "" {
		cfg.Output.ProfilesJSON = "linkedin_profiles.json"
	}

	if cfg.Browser.PageLoadTimeout == 0 {
		cfg.Browser.PageLoadTimeout = 30
	}
	if cfg.Browser.ImplicitWait == 0 {
		cfg.Browser.ImplicitWait = 10
	}
	if cfg.Browser.CookiesPath == "" {
		cfg.Browser.CookiesPath = ".cookies"
	}
	if cfg.Browser.RequestsPerSecond == 0 {
		cfg.Browser.RequestsPerSecond = 0.5
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}
}

// Validate reports every problem at once.
func Validate(cfg Config) error {
	var errs []string

	if len(cfg.Search.Keywords) == 0 {
		errs = append(errs, "search.keywords must have at least 1 entry")
	}
	for i, kw := range cfg.Search.Keywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, fmt.Sprintf("search.keywords[%d] cannot be empty", i))
		}
	}
	if cfg.Search.MaxJobsPerSearch < 0 {
		errs = append(errs, "search.max_jobs_per_search must be > 0")
	}
	if cfg.Search.MaxProfiles < 0 {
		errs = append(errs, "search.max_profiles must be > 0")
	}

	if cfg.Filter.Threshold <= 0 || cfg.Filter.Threshold > 1 {
		errs = append(errs, "filter.threshold must be in (0, 1]")
	}
	checkTerms := func(name string, terms []string) {
		for i, term := range terms {
			if strings.TrimSpace(term) == "" {
				errs = append(errs, fmt.Sprintf("filter.%s[%d] cannot be empty", name, i))
			}
		}
	}
	checkTerms("target_keywords", cfg.Filter.Target)
	checkTerms("avoid_keywords", cfg.Filter.Avoid)
	checkTerms("experience_keywords", cfg.Filter.Experience)
	checkTerms("preferred_company_sizes", cfg.Filter.PreferredSizes)
	if len(cfg.Filter.Target) == 0 {
		errs = append(errs, "filter.target_keywords must have at least 1 term")
	}

	if cfg.Browser.PageLoadTimeout < 0 || cfg.Browser.ImplicitWait < 0 {
		errs = append(errs, "browser timeouts must be >= 0")
	}
	if cfg.Browser.RequestsPerSecond < 0 {
		errs = append(errs, "browser.requests_per_second must be > 0")
	}

	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID == 0 {
		errs = append(errs, "telegram.chat_id is required when telegram.token is set")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// Keywords returns the keyword lists the scorer is built from.
func (c *Config) Keywords() filter.KeywordConfig {
	return c.Filter.KeywordConfig
}

func (c *Config) PageLoadTimeout() time.Duration {
	return time.Duration(c.Browser.PageLoadTimeout) * time.Second
}

func (c *Config) ImplicitWait() time.Duration {
	return time.Duration(c.Browser.ImplicitWait) * time.Second
}

// AllJobsCSV is the sibling file used when save_all_jobs is on.
func (c *Config) AllJobsCSV() string {
	return strings.ReplaceAll(c.Output.CSVFile, ".csv", "_all_jobs.csv")
}

// CookiesFile is the LinkedIn cookie export inside browser.cookies_path.
func (c *Config) CookiesFile() string {
	return filepath.Join(c.Browser.CookiesPath, "cookies-linkedin.json")
}

func (c *Config) TelegramEnabled() bool {
	return c.Telegram.Token != "" && c.Telegram.ChatID != 0
}

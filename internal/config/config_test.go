package config

import (
	"os"
	"path/filepath"
	"testing"

	"linkedin-job-screener/internal/filter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_YAMLOverridesAndDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	path := writeConfig(t, `
search:
  keywords: ["golang developer"]
  location: "Remote"
  max_jobs_per_search: 5
filter:
  target_keywords: ["golang", "Go developer"]
  avoid_keywords: []
  threshold: 0.7
output:
  save_all_jobs: true
  csv_filename: "out/jobs.csv"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"golang developer"}, cfg.Search.Keywords)
	assert.Equal(t, "Remote", cfg.Search.Location)
	assert.Equal(t, 5, cfg.Search.MaxJobsPerSearch)

	assert.Equal(t, []string{"golang", "Go developer"}, cfg.Filter.Target)
	assert.Empty(t, cfg.Filter.Avoid, "explicit empty list is kept")
	assert.Equal(t, filter.DefaultKeywords().Experience, cfg.Filter.Experience)
	assert.Equal(t, filter.DefaultKeywords().PreferredSizes, cfg.Filter.PreferredSizes)
	assert.Equal(t, 0.7, cfg.Filter.Threshold)

	assert.True(t, cfg.Output.SaveAllJobs)
	assert.Equal(t, "out/jobs_all_jobs.csv", cfg.AllJobsCSV())
	assert.Equal(t, "data/output/logs/screening_log.txt", cfg.Output.LogFile)
	assert.Equal(t, ".cache", cfg.CachePath)
	assert.Equal(t, filepath.Join(".cookies", "cookies-linkedin.json"), cfg.CookiesFile())
	assert.False(t, cfg.TelegramEnabled())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "India", cfg.Search.Location)
	assert.Equal(t, 20, cfg.Search.MaxJobsPerSearch)
	assert.Len(t, cfg.Search.Keywords, 5)
	assert.Equal(t, filter.DefaultThreshold, cfg.Filter.Threshold)
	assert.Equal(t, filter.DefaultKeywords(), cfg.Keywords())
	assert.Equal(t, "data/output/relevant_jobs.csv", cfg.Output.CSVFile)
	assert.Equal(t, float64(30), cfg.PageLoadTimeout().Seconds())
	assert.Equal(t, float64(10), cfg.ImplicitWait().Seconds())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LINKEDIN_EMAIL", "me@example.com")
	t.Setenv("LINKEDIN_PASSWORD", "hunter2")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("SCREENER_HEADLESS", "true")

	cfg, err := Load(writeConfig(t, "browser:\n  headless: false\n"))
	require.NoError(t, err)

	assert.Equal(t, "me@example.com", cfg.LinkedInEmail)
	assert.Equal(t, "hunter2", cfg.LinkedInPassword)
	assert.Equal(t, int64(42), cfg.Telegram.ChatID)
	assert.True(t, cfg.TelegramEnabled())
	assert.True(t, cfg.Browser.Headless)
}

func TestLoad_InvalidChatID(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	_, err := Load(writeConfig(t, ""))
	assert.ErrorContains(t, err, "TELEGRAM_CHAT_ID")
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "search: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	require.NoError(t, Validate(*cfg))

	cfg.Filter.Threshold = 1.5
	cfg.Filter.Avoid = []string{"senior", " "}
	cfg.Search.Keywords = []string{""}
	cfg.Telegram.Token = "token-without-chat"

	err := Validate(*cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter.threshold")
	assert.Contains(t, err.Error(), "filter.avoid_keywords[1]")
	assert.Contains(t, err.Error(), "search.keywords[0]")
	assert.Contains(t, err.Error(), "telegram.chat_id")
}

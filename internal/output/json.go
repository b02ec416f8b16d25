package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"linkedin-job-screener/internal/scraper"
)

// DatedJSONPath turns "logs/job-search.json" into "logs/job-search-2006-01-02.json".
func DatedJSONPath(path string, now time.Time) string {
	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	if ext == "" {
		ext = ".json"
	}
	return fmt.Sprintf("%s-%s%s", base, now.Format("2006-01-02"), ext)
}

func SaveJobsJSON(path string, jobs []scraper.Job) error {
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs to save.")
		return nil
	}
	return writeJSON(path, jobs)
}

func SaveProfilesJSON(path string, profiles []scraper.Profile) error {
	if len(profiles) == 0 {
		log.Println("ℹ️ No profiles to save")
		return nil
	}
	if err := writeJSON(path, profiles); err != nil {
		return err
	}
	log.Printf("💾 Saved %d profiles to %s", len(profiles), path)
	return nil
}

// writeJSON keeps non-ASCII and HTML characters as written
func writeJSON(path string, v any) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

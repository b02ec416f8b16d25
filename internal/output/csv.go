package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"linkedin-job-screener/internal/scraper"
)

// JobColumns is the row layout downstream tooling parses. Keep it stable.
var JobColumns = []string{
	"title", "company", "location", "description", "company_size",
	"job_url", "screening_date", "score", "is_relevant",
}

var ProfileColumns = []string{"name", "title", "location", "about", "profile_url"}

func jobRow(j scraper.Job) []string {
	return []string{
		j.Title,
		j.Company,
		j.Location,
		j.Description,
		j.CompanySize,
		j.URL,
		j.ScreeningDate,
		strconv.FormatFloat(j.Score, 'f', 1, 64),
		strconv.FormatBool(j.IsRelevant),
	}
}

// SaveJobsCSV writes jobs to path, replacing any existing file.
func SaveJobsCSV(path string, jobs []scraper.Job) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return writeJobs(f, jobs, true)
}

// AppendJobsCSV appends jobs to path, writing the header only when the
// file is new or empty.
func AppendJobsCSV(path string, jobs []scraper.Job) error {
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	return writeJobs(f, jobs, info.Size() == 0)
}

func writeJobs(w io.Writer, jobs []scraper.Job, header bool) error {
	cw := csv.NewWriter(w)
	if header {
		if err := cw.Write(JobColumns); err != nil {
			return err
		}
	}
	for _, j := range jobs {
		if err := cw.Write(jobRow(j)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// LoadJobsCSV reads a file written by SaveJobsCSV/AppendJobsCSV.
// A missing file yields no jobs and no error.
func LoadJobsCSV(path string) ([]scraper.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("⚠️ File not found: %s", path)
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	get := func(row []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	jobs := make([]scraper.Job, 0, len(records)-1)
	for _, row := range records[1:] {
		score, _ := strconv.ParseFloat(get(row, "score"), 64)
		relevant, _ := strconv.ParseBool(get(row, "is_relevant"))
		jobs = append(jobs, scraper.Job{
			Title:         get(row, "title"),
			Company:       get(row, "company"),
			Location:      get(row, "location"),
			Description:   get(row, "description"),
			CompanySize:   get(row, "company_size"),
			URL:           get(row, "job_url"),
			ScreeningDate: get(row, "screening_date"),
			Score:         score,
			IsRelevant:    relevant,
		})
	}
	return jobs, nil
}

func SaveProfilesCSV(path string, profiles []scraper.Profile) error {
	if len(profiles) == 0 {
		log.Println("ℹ️ No profiles to save")
		return nil
	}
	if err := ensureParent(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(ProfileColumns); err != nil {
		return err
	}
	for _, p := range profiles {
		if err := cw.Write([]string{p.Name, p.Title, p.Location, p.About, p.ProfileURL}); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	log.Printf("💾 Saved %d profiles to %s", len(profiles), path)
	return nil
}

func ensureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

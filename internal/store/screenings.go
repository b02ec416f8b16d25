package store

import (
	"context"
	"fmt"

	"linkedin-job-screener/internal/scraper"
)

type Screening struct {
	ID             int64
	SearchKeywords string
	scraper.Job
}

// SaveScreenings records one row per screened job in a single transaction.
func (d *DB) SaveScreenings(ctx context.Context, keywords string, jobs []scraper.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO screenings (title, company, location, company_size, job_url, search_keywords, screening_date, score, is_relevant)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, j := range jobs {
		relevant := 0
		if j.IsRelevant {
			relevant = 1
		}
		if _, err := stmt.ExecContext(ctx,
			j.Title, j.Company, j.Location, j.CompanySize, j.URL, keywords, j.ScreeningDate, j.Score, relevant,
		); err != nil {
			return fmt.Errorf("insert screening %q: %w", j.URL, err)
		}
	}
	return tx.Commit()
}

// ListRecent returns the newest screenings first. relevantOnly drops rejected jobs.
func (d *DB) ListRecent(ctx context.Context, limit int, relevantOnly bool) ([]Screening, error) {
	if limit <= 0 {
		limit = 50
	}

	q := `
SELECT id, title, company, location, company_size, job_url, search_keywords, screening_date, score, is_relevant
FROM screenings`
	if relevantOnly {
		q += ` WHERE is_relevant = 1`
	}
	q += ` ORDER BY screening_date DESC, id DESC LIMIT ?;`

	rows, err := d.Pool.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list screenings: %w", err)
	}
	defer rows.Close()

	var out []Screening
	for rows.Next() {
		var s Screening
		var relevant int
		if err := rows.Scan(&s.ID, &s.Title, &s.Company, &s.Location, &s.CompanySize, &s.URL,
			&s.SearchKeywords, &s.ScreeningDate, &s.Score, &relevant); err != nil {
			return nil, err
		}
		s.IsRelevant = relevant == 1
		if s.IsRelevant {
			s.ScreeningStatus = scraper.StatusRelevant
		} else {
			s.ScreeningStatus = scraper.StatusNotRelevant
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

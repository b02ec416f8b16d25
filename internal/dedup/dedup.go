package dedup

import (
	"encoding/json"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"linkedin-job-screener/internal/scraper"
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// JobCache remembers screened job URLs for 30 days so repeated runs
// do not re-screen or re-report the same posting. The JSON file is
// guarded by a sibling .lock file, so two screener processes can
// share a cache directory.
type JobCache struct {
	mu       sync.Mutex
	filePath string
	lock     *flock.Flock
	seen     map[string]int64
	now      func() time.Time
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewJobCache creates or loads a job cache
func NewJobCache(cacheDir string) *JobCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	path := filepath.Join(cacheDir, "seen_jobs.json")
	cache := &JobCache{
		filePath: path,
		lock:     flock.New(path + ".lock"),
		seen:     make(map[string]int64),
		now:      time.Now,
	}
	cache.load()
	return cache
}

// NormalizeURL drops the query string and fragment that LinkedIn appends
// for tracking, so the same posting reached from two searches matches.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/")
}

// IsSeen checks if a URL has already been processed
func (jc *JobCache) IsSeen(rawURL string) bool {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	_, exists := jc.seen[NormalizeURL(rawURL)]
	return exists
}

// FilterUnseen keeps jobs whose URL is not cached. Jobs without a URL are kept.
func (jc *JobCache) FilterUnseen(jobs []scraper.Job) []scraper.Job {
	out := make([]scraper.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.URL == "" || !jc.IsSeen(j.URL) {
			out = append(out, j)
		}
	}
	return out
}

func (jc *JobCache) Add(urls []string) {
	jc.mu.Lock()
	defer jc.mu.Unlock()

	now := jc.now().UnixMilli()
	changed := false
	for _, raw := range urls {
		u := NormalizeURL(raw)
		if u == "" {
			continue
		}
		if _, exists := jc.seen[u]; !exists {
			jc.seen[u] = now
			changed = true
		}
	}

	if changed {
		jc.save()
	}
}

func (jc *JobCache) Len() int {
	jc.mu.Lock()
	defer jc.mu.Unlock()
	return len(jc.seen)
}

// load reads the cache from disk into the in-memory map
func (jc *JobCache) load() {
	if err := jc.lock.RLock(); err != nil {
		log.Printf("⚠️ Failed to lock seen_jobs.json: %v", err)
		return
	}
	defer jc.lock.Unlock()

	data, err := os.ReadFile(jc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_jobs.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_jobs.json: %v", err)
		return
	}

	thirtyDaysAgo := jc.now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			jc.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen jobs (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk. Caller holds jc.mu.
func (jc *JobCache) save() {
	if err := jc.lock.Lock(); err != nil {
		log.Printf("⚠️ Failed to lock seen_jobs.json: %v", err)
		return
	}
	defer jc.lock.Unlock()

	entries := make([]seenEntry, 0, len(jc.seen))
	for u, ts := range jc.seen {
		entries = append(entries, seenEntry{URL: u, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen jobs: %v", err)
		return
	}
	if err := os.WriteFile(jc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_jobs.json: %v", err)
		return
	}
	log.Printf("💾 Saved %d seen jobs to cache", len(entries))
}

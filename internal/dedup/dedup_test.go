package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin-job-screener/internal/scraper"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://www.linkedin.com/jobs/view/123/?refId=abc&trackingId=x", "https://www.linkedin.com/jobs/view/123"},
		{"https://www.linkedin.com/jobs/view/123#top", "https://www.linkedin.com/jobs/view/123"},
		{"  https://www.linkedin.com/jobs/view/123  ", "https://www.linkedin.com/jobs/view/123"},
		{"not a url", "not a url"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeURL(tt.in))
		})
	}
}

func TestJobCache_AddPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	c := NewJobCache(dir)
	assert.False(t, c.IsSeen("https://www.linkedin.com/jobs/view/1"))

	c.Add([]string{"https://www.linkedin.com/jobs/view/1/?refId=a", ""})
	assert.True(t, c.IsSeen("https://www.linkedin.com/jobs/view/1?refId=b"))
	assert.Equal(t, 1, c.Len())

	reloaded := NewJobCache(dir)
	assert.True(t, reloaded.IsSeen("https://www.linkedin.com/jobs/view/1"))
	assert.FileExists(t, filepath.Join(dir, "seen_jobs.json.lock"))
}

func TestJobCache_ExpiresOldEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UnixMilli()
	entries := []seenEntry{
		{URL: "https://www.linkedin.com/jobs/view/old", Timestamp: now - thirtyDaysMs - 1000},
		{URL: "https://www.linkedin.com/jobs/view/new", Timestamp: now - 1000},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_jobs.json"), data, 0644))

	c := NewJobCache(dir)
	assert.False(t, c.IsSeen("https://www.linkedin.com/jobs/view/old"))
	assert.True(t, c.IsSeen("https://www.linkedin.com/jobs/view/new"))
}

func TestJobCache_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_jobs.json"), []byte("{not json"), 0644))

	c := NewJobCache(dir)
	assert.Equal(t, 0, c.Len())
}

func TestJobCache_FilterUnseen(t *testing.T) {
	c := NewJobCache(t.TempDir())
	c.Add([]string{"https://www.linkedin.com/jobs/view/2"})

	jobs := []scraper.Job{
		{Title: "a", URL: "https://www.linkedin.com/jobs/view/1"},
		{Title: "b", URL: "https://www.linkedin.com/jobs/view/2?trk=x"},
		{Title: "c"},
	}
	got := c.FilterUnseen(jobs)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Title)
	assert.Equal(t, "c", got[1].Title)
}

package browser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewScreenshotter_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshotter(dir)
	assert.DirExists(t, dir)

	path, err := s.Capture(nil, "login", "no page")
	assert.NoError(t, err)
	assert.Empty(t, path)

	var off *Screenshotter
	path, err = off.Capture(nil, "login", "disabled")
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestScreenshotter_Path(t *testing.T) {
	s := &Screenshotter{
		dir: "shots",
		now: func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) },
	}
	tests := []struct {
		step string
		want string
	}{
		{"login_form", "login_form_20260304-050607.png"},
		{"Search Results/2", "search_results_2_20260304-050607.png"},
		{"  ", "page_20260304-050607.png"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, filepath.Join("shots", tt.want), s.path(tt.step))
		})
	}
}

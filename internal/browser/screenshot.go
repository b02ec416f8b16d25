package browser

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

const DefaultScreenshotDir = "data/output/logs/screenshots"

// Screenshotter dumps the current page to disk when a scrape step cannot
// find what it expected. A nil *Screenshotter does nothing.
type Screenshotter struct {
	dir string
	now func() time.Time
}

func NewScreenshotter(dir string) *Screenshotter {
	if dir == "" {
		dir = DefaultScreenshotDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Printf("⚠️ Failed to create screenshot directory: %v", err)
	}
	return &Screenshotter{dir: dir, now: time.Now}
}

// Capture logs reason and writes a full-page PNG. It returns the file
// path, or "" when nothing was written.
func (s *Screenshotter) Capture(page playwright.Page, step, reason string) (string, error) {
	log.Printf("📸 %s", reason)
	if s == nil || page == nil {
		return "", nil
	}

	path := s.path(step)
	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		log.Printf("⚠️ Screenshot %s failed: %v", step, err)
		return "", fmt.Errorf("screenshot %s: %w", step, err)
	}
	log.Printf("   Saved %s", path)
	return path, nil
}

func (s *Screenshotter) path(step string) string {
	name := fmt.Sprintf("%s_%s.png", safeName(step), s.now().Format("20060102-150405"))
	return filepath.Join(s.dir, name)
}

// safeName keeps step names usable as file names on every OS.
func safeName(step string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, strings.TrimSpace(step))
	if name == "" {
		return "page"
	}
	return name
}

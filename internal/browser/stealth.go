package browser

import (
	"context"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay waits for a random duration between min and max milliseconds
func RandomDelay(min, max int) {
	if min >= max {
		time.Sleep(time.Duration(min) * time.Millisecond)
		return
	}
	duration := rand.Intn(max-min+1) + min
	time.Sleep(time.Duration(duration) * time.Millisecond)
}

// HumanScroll simulates human-like scrolling behavior
func HumanScroll(page playwright.Page) error {
	// Scroll down in steps
	for i := 0; i < 5; i++ {
		_, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)")
		if err != nil {
			return err
		}
		RandomDelay(500, 1500)
	}
	// Scroll back up a bit (random behavior)
	_, err := page.Evaluate("window.scrollBy(0, -200)")
	return err
}

// MouseJiggle simulates random mouse movements to prevent idle detection
func MouseJiggle(page playwright.Page) error {
	viewportSize := page.ViewportSize()
	if viewportSize == nil {
		return nil
	}
	for i := 0; i < 3; i++ {
		x := rand.Intn(viewportSize.Width)
		y := rand.Intn(viewportSize.Height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return err
		}
		RandomDelay(100, 300)
	}
	return nil
}

// ScrollUntilStable scrolls to the bottom, calling collect after each
// scroll, until collect reports done or the page height stops growing.
func ScrollUntilStable(ctx context.Context, page playwright.Page, pause time.Duration, collect func() (done bool)) error {
	last, err := scrollHeight(page)
	if err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := page.Evaluate("window.scrollTo(0, document.body.scrollHeight)"); err != nil {
			return err
		}
		time.Sleep(pause)

		if collect() {
			return nil
		}

		height, err := scrollHeight(page)
		if err != nil {
			return err
		}
		if height == last {
			return nil
		}
		last = height
	}
}

func scrollHeight(page playwright.Page) (int, error) {
	v, err := page.Evaluate("document.body.scrollHeight")
	if err != nil {
		return 0, err
	}
	switch h := v.(type) {
	case int:
		return h, nil
	case float64:
		return int(h), nil
	default:
		return 0, nil
	}
}

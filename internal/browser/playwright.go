package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/playwright-community/playwright-go"
)

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0"

type Options struct {
	Headless        bool
	PageLoadTimeout time.Duration
	ImplicitWait    time.Duration
	UserAgent       string
}

type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
}

// NewPlaywright starts the playwright driver and launches Firefox.
func NewPlaywright(ctx context.Context, opts Options) (*PlaywrightManager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.PageLoadTimeout <= 0 {
		opts.PageLoadTimeout = 30 * time.Second
	}
	if opts.ImplicitWait <= 0 {
		opts.ImplicitWait = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Firefox.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
		FirefoxUserPrefs: map[string]interface{}{
			"dom.webdriver.enabled":  false,
			"useAutomationExtension": false,
			"media.volume_scale":     "0.0",
		},
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch firefox: %w", err)
	}
	log.Printf("🦊 Firefox launched (headless=%v)", opts.Headless)

	return &PlaywrightManager{pw: pw, browser: browser, opts: opts}, nil
}

// NewContext opens an isolated browser context with the given cookies
// and the configured timeouts applied.
func (pm *PlaywrightManager) NewContext(cookies []playwright.OptionalCookie) (playwright.BrowserContext, error) {
	bctx, err := pm.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(pm.opts.UserAgent),
		Viewport: &playwright.Size{
			Width:  1366,
			Height: 768,
		},
		Locale: playwright.String("en-US"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}

	bctx.SetDefaultTimeout(float64(pm.opts.ImplicitWait.Milliseconds()))
	bctx.SetDefaultNavigationTimeout(float64(pm.opts.PageLoadTimeout.Milliseconds()))

	if len(cookies) > 0 {
		if err := bctx.AddCookies(cookies); err != nil {
			_ = bctx.Close()
			return nil, fmt.Errorf("could not add cookies: %w", err)
		}
	}
	return bctx, nil
}

func (pm *PlaywrightManager) Close() error {
	if pm == nil {
		return nil
	}
	var firstErr error
	if pm.browser != nil {
		if err := pm.browser.Close(); err != nil {
			firstErr = err
		}
	}
	if pm.pw != nil {
		if err := pm.pw.Stop(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr == nil {
		log.Println("🔒 Browser closed successfully")
	}
	return firstErr
}

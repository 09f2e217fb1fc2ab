package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/wpaccept/internal/config"
)

// Launcher owns the playwright driver and the Chromium instance shared by all
// scenarios of a run. Each scenario gets its own browser context, so cookies
// and storage never leak between scenarios.
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     config.BrowserConfig
}

// Launch starts playwright and a Chromium browser.
// Browsers must already be installed: go run github.com/playwright-community/playwright-go/cmd/playwright install chromium
func Launch(cfg config.BrowserConfig) (*Launcher, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	opts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	}
	if cfg.SlowMo > 0 {
		opts.SlowMo = playwright.Float(config.Milliseconds(cfg.SlowMo))
	}

	b, err := pw.Chromium.Launch(opts)
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch chromium: %w", err)
	}

	return &Launcher{pw: pw, browser: b, cfg: cfg}, nil
}

// NewPage opens a page in a fresh browser context. The returned close function
// disposes of both.
func (l *Launcher) NewPage() (playwright.Page, func() error, error) {
	bctx, err := l.browser.NewContext()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		return nil, nil, fmt.Errorf("failed to open page: %w", err)
	}
	page.SetDefaultTimeout(config.Milliseconds(l.cfg.Timeout))

	closeFn := func() error {
		return bctx.Close()
	}
	return page, closeFn, nil
}

// Close shuts down the browser and the playwright driver
func (l *Launcher) Close() error {
	return errors.Join(l.browser.Close(), l.pw.Stop())
}

//go:build e2e

package e2e

import (
	"os"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/wpaccept/internal/config"
)

var (
	pw      *playwright.Playwright
	browser playwright.Browser
	suite   *config.SuiteConfig
)

// TestMain sets up and tears down the Playwright browser for all tests.
// The WordPress site and database come from the WP_* environment variables.
func TestMain(m *testing.M) {
	var err error

	suite, err = config.LoadSuiteConfig(os.Getenv("WPACCEPT_CONFIG"), os.Getenv)
	if err != nil {
		panic(err)
	}

	// Start Playwright (browsers already installed via: go run github.com/playwright-community/playwright-go/cmd/playwright@latest install chromium)
	pw, err = playwright.Run()
	if err != nil {
		panic(err)
	}

	// Launch browser in headless mode
	browser, err = pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(suite.Browser.Headless),
	})
	if err != nil {
		pw.Stop()
		panic(err)
	}

	code := m.Run()

	browser.Close()
	pw.Stop()
	os.Exit(code)
}

// newPage opens a page in its own browser context so scenarios never share cookies
func newPage(t *testing.T) playwright.Page {
	t.Helper()

	bctx, err := browser.NewContext()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { bctx.Close() })

	page, err := bctx.NewPage()
	if err != nil {
		t.Fatal(err)
	}
	return page
}

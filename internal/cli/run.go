package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/cucumber/godog"
	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/wpaccept/internal/bridge"
	"github.com/themizzi/wpaccept/internal/browser"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/steps"
)

// PageLauncher hands out isolated browser pages
type PageLauncher interface {
	NewPage() (playwright.Page, func() error, error)
}

// SuiteOptions select which scenarios run and how
type SuiteOptions struct {
	Paths       []string
	Tags        string
	Format      string
	Concurrency int
	Output      io.Writer
}

// ErrSuiteFailed is returned when at least one scenario failed
var ErrSuiteFailed = errors.New("acceptance suite failed")

// PageOpener returns a scenario opener that gives every scenario its own page,
// browser session and bridge
func PageOpener(launcher PageLauncher, cfg *config.SuiteConfig, logger *log.Logger) steps.Opener {
	return func(ctx context.Context) (*steps.Scenario, func() error, error) {
		page, closePage, err := launcher.NewPage()
		if err != nil {
			return nil, nil, err
		}

		session := browser.NewSession(page, cfg.WordPress, cfg.Browser.Timeout, logger)
		scenario := steps.NewScenario(session, bridge.NewPageEvaluator(page), cfg.Editor, logger)
		return scenario, closePage, nil
	}
}

// RunSuite runs the feature files in opts.Paths against scenarios from open
func RunSuite(open steps.Opener, opts SuiteOptions) error {
	if len(opts.Paths) == 0 {
		opts.Paths = []string{"features"}
	}
	if opts.Format == "" {
		opts.Format = "pretty"
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	log.Printf("Running features in %v (concurrency %d)", opts.Paths, opts.Concurrency)

	suite := godog.TestSuite{
		Name:                "wpaccept",
		ScenarioInitializer: steps.Initializer(open),
		Options: &godog.Options{
			Paths:       opts.Paths,
			Tags:        opts.Tags,
			Format:      opts.Format,
			Concurrency: opts.Concurrency,
			Output:      opts.Output,
			Strict:      true,
		},
	}

	if status := suite.Run(); status != 0 {
		return fmt.Errorf("%w: status %d", ErrSuiteFailed, status)
	}

	log.Println("Acceptance suite passed")
	return nil
}

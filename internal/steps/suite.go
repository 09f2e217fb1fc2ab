package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// Step expressions
const (
	StepPostOfWords     = `^a post of (\d+) words$`
	StepBlockAtStart    = `^the "([^"]*)" block is placed at the start of the post$`
	StepPostOnFrontend  = `^I see the post on the frontend$`
	StepReadingTimeText = `^I should see the block shows an estimated reading time of "([^"]*)"$`
)

// Opener starts the browser session of one scenario. The returned close
// function is called after the scenario's last step.
type Opener func(ctx context.Context) (*Scenario, func() error, error)

// Initializer returns a godog scenario initializer that opens a fresh session
// and state store for every scenario and binds the step vocabulary to it
func Initializer(open Opener) func(*godog.ScenarioContext) {
	return func(sc *godog.ScenarioContext) {
		var (
			s       *Scenario
			closeFn func() error
		)

		sc.Before(func(ctx context.Context, g *godog.Scenario) (context.Context, error) {
			var err error
			s, closeFn, err = open(ctx)
			if err != nil {
				return ctx, fmt.Errorf("failed to open session for %q: %w", g.Name, err)
			}
			s.logger.Printf("Scenario: %s", g.Name)
			return ctx, nil
		})

		sc.After(func(ctx context.Context, g *godog.Scenario, stepErr error) (context.Context, error) {
			if closeFn == nil {
				return ctx, nil
			}
			if err := closeFn(); err != nil {
				return ctx, fmt.Errorf("failed to close session for %q: %w", g.Name, err)
			}
			return ctx, nil
		})

		sc.Step(StepPostOfWords, func(ctx context.Context, wordCount int) error {
			return s.APostOfWords(ctx, wordCount)
		})
		sc.Step(StepBlockAtStart, func(ctx context.Context, blockType string) error {
			return s.TheBlockIsPlacedAtTheStartOfThePost(ctx, blockType)
		})
		sc.Step(StepPostOnFrontend, func(ctx context.Context) error {
			return s.ISeeThePostOnTheFrontend(ctx)
		})
		sc.Step(StepReadingTimeText, func(ctx context.Context, estimate string) error {
			return s.IShouldSeeTheBlockShowsAnEstimatedReadingTimeOf(ctx, estimate)
		})
	}
}

package bridge

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// PageEvaluator evaluates scripts in a playwright page. It borrows the page and
// never closes it.
type PageEvaluator struct {
	page playwright.Page
}

// NewPageEvaluator creates an evaluator over page
func NewPageEvaluator(page playwright.Page) *PageEvaluator {
	return &PageEvaluator{page: page}
}

// Evaluate runs script in the page's main frame
func (e *PageEvaluator) Evaluate(ctx context.Context, script string) (Result, error) {
	if e.page == nil || e.page.IsClosed() {
		return Result{}, &BridgeError{Script: script, Err: ErrSessionUnavailable}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, &BridgeError{Script: script, Err: err}
	}

	v, err := e.page.Evaluate(script)
	if err != nil {
		return Result{}, &BridgeError{Script: script, Err: err}
	}
	return NewResult(v), nil
}

// Package browser wraps the playwright page a scenario runs against: page
// navigation, form filling, logging in and text-presence assertions.
package browser

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/wpaccept/internal/config"
)

// Login form selectors on wp-login.php
const (
	loginUserField     = "#user_login"
	loginPasswordField = "#user_pass"
	loginSubmitButton  = "#wp-submit"
)

// AssertionFailure reports text that was expected on the rendered page but absent
type AssertionFailure struct {
	Expected string
	URL      string
}

func (e *AssertionFailure) Error() string {
	return fmt.Sprintf("expected to see %q on %s", e.Expected, e.URL)
}

// Session drives one scenario's page. It borrows the page; the runner owns and closes it.
type Session struct {
	page    playwright.Page
	site    *config.WordPressConfig
	timeout time.Duration
	logger  *log.Logger
}

// NewSession creates a session over page for the site described by site
func NewSession(page playwright.Page, site *config.WordPressConfig, timeout time.Duration, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		page:    page,
		site:    site,
		timeout: timeout,
		logger:  logger,
	}
}

// Page returns the underlying playwright page
func (s *Session) Page() playwright.Page {
	return s.page
}

// AmOnPage navigates to a site-relative path, e.g. "/index.php?p=12"
func (s *Session) AmOnPage(ctx context.Context, path string) error {
	return s.goTo(ctx, s.site.URL(path))
}

// AmOnAdminPage navigates to a page in the admin area, e.g. "post-new.php"
func (s *Session) AmOnAdminPage(ctx context.Context, page string) error {
	return s.goTo(ctx, s.site.AdminURL(page))
}

func (s *Session) goTo(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.logger.Printf("Browser: navigating to %s", url)
	if _, err := s.page.Goto(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// FillField types value into the field matched by selector
func (s *Session) FillField(ctx context.Context, selector, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.page.Locator(selector).Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s: %w", selector, err)
	}
	return nil
}

// Click clicks the element matched by selector
func (s *Session) Click(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.page.Locator(selector).Click(); err != nil {
		return fmt.Errorf("failed to click %s: %w", selector, err)
	}
	return nil
}

// See asserts that text appears in the rendered page body
func (s *Session) See(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := s.page.Locator("body").InnerText()
	if err != nil {
		return fmt.Errorf("failed to read page text: %w", err)
	}
	if !strings.Contains(body, text) {
		return &AssertionFailure{Expected: text, URL: s.page.URL()}
	}
	return nil
}

// LoginAsAdmin signs in with the configured administrator account and waits
// for the admin dashboard
func (s *Session) LoginAsAdmin(ctx context.Context) error {
	s.logger.Printf("Browser: logging in as %s", s.site.AdminUser)

	if err := s.goTo(ctx, s.site.LoginURL()); err != nil {
		return err
	}
	if err := s.FillField(ctx, loginUserField, s.site.AdminUser); err != nil {
		return err
	}
	if err := s.FillField(ctx, loginPasswordField, s.site.AdminPassword); err != nil {
		return err
	}
	if err := s.Click(ctx, loginSubmitButton); err != nil {
		return err
	}

	pattern := "**/" + s.site.AdminPath + "/**"
	if err := s.page.WaitForURL(pattern, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(config.Milliseconds(s.timeout)),
	}); err != nil {
		return fmt.Errorf("login did not reach the admin area: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"errors"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/wpaccept/internal/bridge/bridgetest"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/models"
)

// embeddedLocator names the embedded interface so its field does not shadow
// the promoted Locator method
type embeddedLocator = playwright.Locator

// fakeLocator answers text queries from its page
type fakeLocator struct {
	embeddedLocator
	page *fakePage
}

func (l *fakeLocator) Fill(value string, options ...playwright.LocatorFillOptions) error {
	return nil
}

func (l *fakeLocator) Click(options ...playwright.LocatorClickOptions) error {
	return nil
}

func (l *fakeLocator) InnerText(options ...playwright.LocatorInnerTextOptions) (string, error) {
	return l.page.body, nil
}

// fakePage implements the subset of playwright.Page the session and bridge use
type fakePage struct {
	playwright.Page
	body    string
	visited []string
	scripts []string
	gotoErr error
	respond bridgetest.Responder
}

func (p *fakePage) Goto(url string, options ...playwright.PageGotoOptions) (playwright.Response, error) {
	p.visited = append(p.visited, url)
	return nil, p.gotoErr
}

func (p *fakePage) Locator(selector string, options ...playwright.PageLocatorOptions) playwright.Locator {
	return &fakeLocator{page: p}
}

func (p *fakePage) URL() string {
	if len(p.visited) == 0 {
		return "about:blank"
	}
	return p.visited[len(p.visited)-1]
}

func (p *fakePage) IsClosed() bool {
	return false
}

func (p *fakePage) WaitForURL(url interface{}, options ...playwright.PageWaitForURLOptions) error {
	return nil
}

func (p *fakePage) Evaluate(expression string, arg ...interface{}) (interface{}, error) {
	p.scripts = append(p.scripts, expression)
	if p.respond == nil {
		return nil, nil
	}
	return p.respond(expression)
}

// fakeLauncher hands out one fake page and counts closes
type fakeLauncher struct {
	page    *fakePage
	opened  int
	closed  int
	openErr error
}

func (l *fakeLauncher) NewPage() (playwright.Page, func() error, error) {
	if l.openErr != nil {
		return nil, nil, l.openErr
	}
	l.opened++
	return l.page, func() error {
		l.closed++
		return nil
	}, nil
}

// fakePosts is an in-memory PostFixtures
type fakePosts struct {
	inserted  []*models.Post
	deleted   []int64
	insertErr error
}

func (f *fakePosts) HavePostInDatabase(ctx context.Context, post *models.Post) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.inserted = append(f.inserted, post)
	post.ID = int64(len(f.inserted))
	return post.ID, nil
}

func (f *fakePosts) DeletePost(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func testConfig() *config.SuiteConfig {
	return &config.SuiteConfig{
		WordPress: &config.WordPressConfig{
			BaseURL:       "http://wp.test",
			AdminPath:     "wp-admin",
			AdminUser:     "admin",
			AdminPassword: "password",
		},
		Database: &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:", TablePrefix: "wp_"},
		Editor:   config.EditorConfig{SaveStrategy: config.SaveStrategySettle},
	}
}

var errBrowser = errors.New("browser crashed")

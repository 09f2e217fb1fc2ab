package steps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/themizzi/wpaccept/internal/bridge/bridgetest"
	"github.com/themizzi/wpaccept/internal/config"
)

// fakeBrowser records the collaborator calls a step makes
type fakeBrowser struct {
	calls    []string
	logins   int
	body     string
	loginErr error
	navErr   error
}

func (b *fakeBrowser) LoginAsAdmin(ctx context.Context) error {
	b.logins++
	b.calls = append(b.calls, "login")
	return b.loginErr
}

func (b *fakeBrowser) AmOnPage(ctx context.Context, path string) error {
	b.calls = append(b.calls, "page "+path)
	return b.navErr
}

func (b *fakeBrowser) AmOnAdminPage(ctx context.Context, page string) error {
	b.calls = append(b.calls, "admin "+page)
	return b.navErr
}

func (b *fakeBrowser) FillField(ctx context.Context, selector, value string) error {
	b.calls = append(b.calls, "fill "+selector+"="+value)
	return nil
}

func (b *fakeBrowser) See(ctx context.Context, text string) error {
	b.calls = append(b.calls, "see "+text)
	if !strings.Contains(b.body, text) {
		return fmt.Errorf("expected to see %q", text)
	}
	return nil
}

// newTestScenario builds a scenario over fakes with an editor holding postID
func newTestScenario(postID int) (*Scenario, *fakeBrowser, *bridgetest.Recorder, *[]time.Duration) {
	b := &fakeBrowser{}
	rec := bridgetest.NewRecorder(bridgetest.Editor(postID))
	s := NewScenario(b, rec, config.EditorConfig{
		SaveStrategy: config.SaveStrategySettle,
		SaveWait:     2 * time.Second,
	}, nil)

	var settled []time.Duration
	s.settle = func(d time.Duration) { settled = append(settled, d) }
	return s, b, rec, &settled
}

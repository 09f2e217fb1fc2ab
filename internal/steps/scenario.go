// Package steps implements the step vocabulary of the reading-time acceptance
// suite: editor steps that manipulate a post through the block editor and
// front-end steps that assert on the rendered post.
package steps

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/themizzi/wpaccept/internal/bridge"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/state"
	"github.com/themizzi/wpaccept/internal/wait"
)

// Keys written to the scenario state
const (
	KeyPostID = "postId"
)

// Browser is the page collaborator the steps drive
type Browser interface {
	LoginAsAdmin(ctx context.Context) error
	AmOnPage(ctx context.Context, path string) error
	AmOnAdminPage(ctx context.Context, page string) error
	FillField(ctx context.Context, selector, value string) error
	See(ctx context.Context, text string) error
}

// Scenario is the context of one scenario run: its browser session, the bridge
// into that session's page, the state shared between its steps and whether it
// has logged in yet. Steps of a scenario run sequentially on one goroutine.
type Scenario struct {
	ID       uuid.UUID
	Browser  Browser
	Bridge   bridge.Evaluator
	State    *state.Store
	LoggedIn bool
	Editor   config.EditorConfig

	logger *log.Logger
	settle func(time.Duration)
}

// NewScenario creates the context for a new scenario with an empty state store
func NewScenario(b Browser, e bridge.Evaluator, editor config.EditorConfig, logger *log.Logger) *Scenario {
	id := uuid.New()
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Scenario{
		ID:      id,
		Browser: b,
		Bridge:  e,
		State:   state.NewStore(),
		Editor:  editor,
		logger:  log.New(logger.Writer(), fmt.Sprintf("[%s] ", id.String()[:8]), logger.Flags()),
		settle:  wait.Settle,
	}
}

// ensureLoggedIn logs in once per scenario
func (s *Scenario) ensureLoggedIn(ctx context.Context) error {
	if s.LoggedIn {
		return nil
	}
	if err := s.Browser.LoginAsAdmin(ctx); err != nil {
		return fmt.Errorf("failed to log in as admin: %w", err)
	}
	s.LoggedIn = true
	return nil
}

package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/themizzi/wpaccept/internal/bridge"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/script"
	"github.com/themizzi/wpaccept/internal/wait"
)

// Editor page selectors
const (
	postTitleField = "#post-title-0"
	newPostPage    = "post-new.php"
)

// AddBlock inserts a block of blockType ("namespace/name") into the current
// editor and returns its clientId. A nil position appends the block last.
func (s *Scenario) AddBlock(ctx context.Context, blockType string, props map[string]any, position *int) (string, error) {
	at := ""
	if position != nil {
		at = fmt.Sprintf(" at position %d", *position)
	}
	s.logger.Printf("Editor: adding block of type '%s'%s with props:\n%s", blockType, at, pretty(props))

	res, err := bridge.Run(ctx, s.Bridge, script.InsertBlock{Type: blockType, Props: props, Position: position})
	if err != nil {
		return "", fmt.Errorf("failed to add %s block: %w", blockType, err)
	}

	clientID := res.String()
	s.logger.Printf("Editor: added block of type '%s'%s, block clientId is '%s'.", blockType, at, clientID)
	return clientID, nil
}

// SavePost triggers the editor save and returns the saved post ID. The save
// completes asynchronously; SavePost waits for it according to the editor
// save strategy before returning.
func (s *Scenario) SavePost(ctx context.Context) (int, error) {
	s.logger.Printf("Editor: saving the post.")

	res, err := bridge.Run(ctx, s.Bridge, script.SavePost{})
	if err != nil {
		return 0, fmt.Errorf("failed to save post: %w", err)
	}
	postID, err := res.Int()
	if err != nil {
		return 0, fmt.Errorf("save post returned an invalid post ID: %w", err)
	}
	s.logger.Printf("Editor: saved the post, post ID is %d", postID)

	if err := s.awaitSave(ctx); err != nil {
		return 0, err
	}
	return postID, nil
}

func (s *Scenario) awaitSave(ctx context.Context) error {
	if s.Editor.SaveStrategy != config.SaveStrategyPoll {
		s.settle(s.Editor.SaveWait)
		return nil
	}

	err := wait.Until(ctx, func(ctx context.Context) (bool, error) {
		res, err := bridge.Run(ctx, s.Bridge, script.IsSavingPost{})
		if err != nil {
			return false, err
		}
		return !res.Bool(), nil
	}, s.savePollOptions())
	if err != nil {
		return fmt.Errorf("post save did not finish: %w", err)
	}
	return nil
}

// savePollOptions bounds the save poll by SaveWait and by an attempt budget of
// twice the polls that fit in SaveWait. The budget still stops the loop when
// SaveWait is not positive.
func (s *Scenario) savePollOptions() wait.Options {
	interval := s.Editor.PollInterval
	if interval <= 0 {
		interval = wait.DefaultInterval
	}

	attempts := 1
	if s.Editor.SaveWait > 0 {
		attempts += 2 * int(s.Editor.SaveWait/interval)
	}

	return wait.Options{Interval: interval, Timeout: s.Editor.SaveWait, MaxAttempts: attempts}
}

// EditPost sets properties on the current post without saving it and returns the post ID
func (s *Scenario) EditPost(ctx context.Context, props map[string]any) (int, error) {
	s.logger.Printf("Editor: editing the post with properties: %s", pretty(props))

	res, err := bridge.Run(ctx, s.Bridge, script.EditPost{Props: props})
	if err != nil {
		return 0, fmt.Errorf("failed to edit post: %w", err)
	}
	postID, err := res.Int()
	if err != nil {
		return 0, fmt.Errorf("edit post returned an invalid post ID: %w", err)
	}

	s.logger.Printf("Editor: edited the post, post ID is %d", postID)
	return postID, nil
}

// DisableEditorTips dismisses the editor tips for the current user
func (s *Scenario) DisableEditorTips(ctx context.Context) error {
	s.logger.Printf("Editor: disabling tips.")

	res, err := bridge.Run(ctx, s.Bridge, script.DisableTips{})
	if err != nil {
		return fmt.Errorf("failed to disable editor tips: %w", err)
	}
	if !res.Bool() {
		s.logger.Printf("Editor: no tips to disable.")
	}
	return nil
}

// APostOfWords creates and publishes a post whose content is wordCount words,
// and stores its ID for later steps.
//
// Step: a post of N words
func (s *Scenario) APostOfWords(ctx context.Context, wordCount int) error {
	if err := s.ensureLoggedIn(ctx); err != nil {
		return err
	}

	if err := s.Browser.AmOnAdminPage(ctx, newPostPage); err != nil {
		return err
	}
	if err := s.DisableEditorTips(ctx); err != nil {
		return err
	}
	if err := s.Browser.FillField(ctx, postTitleField, "Test post"); err != nil {
		return err
	}

	content, err := TestContent(wordCount)
	if err != nil {
		return err
	}
	if _, err := s.AddBlock(ctx, "core/paragraph", map[string]any{"content": content}, nil); err != nil {
		return err
	}

	// Publishing only takes effect once the post is saved
	if _, err := s.EditPost(ctx, map[string]any{"status": "publish"}); err != nil {
		return err
	}
	postID, err := s.SavePost(ctx)
	if err != nil {
		return err
	}

	s.State.Set(KeyPostID, postID)
	return nil
}

// TheBlockIsPlacedAtTheStartOfThePost inserts a blockType block as the first
// block of the post and saves it.
//
// Step: the "TYPE" block is placed at the start of the post
func (s *Scenario) TheBlockIsPlacedAtTheStartOfThePost(ctx context.Context, blockType string) error {
	if _, err := s.AddBlock(ctx, blockType, nil, script.At(0)); err != nil {
		return err
	}
	_, err := s.SavePost(ctx)
	return err
}

// TestContent returns the word "test" repeated wordCount times, separated by single spaces
func TestContent(wordCount int) (string, error) {
	if wordCount < 0 {
		return "", fmt.Errorf("word count must not be negative, got %d", wordCount)
	}
	words := make([]string, wordCount)
	for i := range words {
		words[i] = "test"
	}
	return strings.Join(words, " "), nil
}

func pretty(props map[string]any) string {
	if props == nil {
		return "{}"
	}
	b, err := json.MarshalIndent(props, "", "    ")
	if err != nil {
		return fmt.Sprintf("%v", props)
	}
	return string(b)
}

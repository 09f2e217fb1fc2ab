package cli

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/themizzi/wpaccept/internal/browser"
	"github.com/themizzi/wpaccept/internal/config"
	"github.com/themizzi/wpaccept/internal/models"
)

// CheckTitle is the title of the fixture post the smoke check looks for
const CheckTitle = "Test post"

// PostFixtures inserts and removes fixture posts
type PostFixtures interface {
	HavePostInDatabase(ctx context.Context, post *models.Post) (int64, error)
	DeletePost(ctx context.Context, id int64) error
}

// CheckDependencies holds everything the smoke check needs
type CheckDependencies struct {
	Config   *config.SuiteConfig
	Launcher PageLauncher
	Posts    PostFixtures
	Logger   *log.Logger
}

// RunCheck verifies the browser, the database and the site work together:
// it inserts a published post, opens the home page and expects to see the
// post title. The fixture is removed afterwards.
func RunCheck(ctx context.Context, deps CheckDependencies) error {
	post, err := models.NewPost(CheckTitle, models.PostStatusPublish)
	if err != nil {
		return err
	}

	id, err := deps.Posts.HavePostInDatabase(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to insert fixture post: %w", err)
	}
	log.Printf("Inserted fixture post %d", id)

	defer func() {
		// Cleanup must run even when ctx was cancelled
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := deps.Posts.DeletePost(cleanupCtx, id); err != nil {
			log.Printf("Warning: failed to remove fixture post %d: %v", id, err)
		}
	}()

	page, closePage, err := deps.Launcher.NewPage()
	if err != nil {
		return err
	}
	defer closePage()

	session := browser.NewSession(page, deps.Config.WordPress, deps.Config.Browser.Timeout, deps.Logger)
	if err := session.AmOnPage(ctx, "/"); err != nil {
		return err
	}
	if err := session.See(ctx, CheckTitle); err != nil {
		return err
	}

	log.Println("Check passed: browser, database and site are reachable")
	return nil
}

package steps

import (
	"context"
	"fmt"
)

// ISeeThePostOnTheFrontend opens the single page of the post an earlier step created.
//
// Step: I see the post on the frontend
func (s *Scenario) ISeeThePostOnTheFrontend(ctx context.Context) error {
	postID, err := s.State.Int(KeyPostID)
	if err != nil {
		return err
	}

	s.logger.Printf("Frontend: opening post %d", postID)
	return s.Browser.AmOnPage(ctx, fmt.Sprintf("/index.php?p=%d", postID))
}

// IShouldSeeTheBlockShowsAnEstimatedReadingTimeOf asserts the rendered page
// contains the estimate text.
//
// Step: I should see the block shows an estimated reading time of "X"
func (s *Scenario) IShouldSeeTheBlockShowsAnEstimatedReadingTimeOf(ctx context.Context, estimate string) error {
	return s.Browser.See(ctx, estimate)
}

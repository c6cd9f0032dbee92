package api

import (
	"context"
	"fmt"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ListCoverLetters fetches the user's cover letters, newest first.
func (c *Client) ListCoverLetters(ctx context.Context) (Page[models.CoverLetter], error) {
	var result Page[models.CoverLetter]
	err := c.get(ctx, "/api/cover-letters/", nil, &result)
	return result, err
}

// GetCoverLetter fetches one letter with content.
func (c *Client) GetCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	var result models.CoverLetter
	err := c.get(ctx, fmt.Sprintf("/api/cover-letters/%d/", id), nil, &result)
	return result, err
}

// GenerateCoverLetter kicks off generation for an opportunity. The returned
// record is usually still GENERATING.
func (c *Client) GenerateCoverLetter(ctx context.Context, opportunityID int64) (models.CoverLetter, error) {
	var result models.CoverLetter
	in := map[string]int64{"opportunity_id": opportunityID}
	err := c.post(ctx, "/api/cover-letters/generate/", in, &result)
	return result, err
}

// RegenerateCoverLetter requests a fresh generation, bumping the version.
func (c *Client) RegenerateCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	var result models.CoverLetter
	err := c.post(ctx, fmt.Sprintf("/api/cover-letters/%d/regenerate/", id), nil, &result)
	return result, err
}

// UpdateCoverLetter saves user edits to the letter body.
func (c *Client) UpdateCoverLetter(ctx context.Context, id int64, editedContent string) (models.CoverLetter, error) {
	var result models.CoverLetter
	in := map[string]string{"edited_content": editedContent}
	err := c.patch(ctx, fmt.Sprintf("/api/cover-letters/%d/", id), in, &result)
	return result, err
}

// FinalizeCoverLetter marks the letter as done. The server stamps
// finalized_at on the transition.
func (c *Client) FinalizeCoverLetter(ctx context.Context, id int64) (models.CoverLetter, error) {
	var result models.CoverLetter
	in := map[string]models.JobStatus{"status": models.JobFinalized}
	err := c.patch(ctx, fmt.Sprintf("/api/cover-letters/%d/", id), in, &result)
	return result, err
}

package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ListMatches fetches one page of the current user's matches, optionally
// filtered by status.
func (c *Client) ListMatches(ctx context.Context, status models.MatchStatus, page int) (Page[models.Match], error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", string(status))
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	var result Page[models.Match]
	err := c.get(ctx, "/api/matches/", q, &result)
	return result, err
}

// GetMatch fetches one match.
func (c *Client) GetMatch(ctx context.Context, id int64) (models.Match, error) {
	var result models.Match
	err := c.get(ctx, fmt.Sprintf("/api/matches/%d/", id), nil, &result)
	return result, err
}

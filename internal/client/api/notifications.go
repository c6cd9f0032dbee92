package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// ListNotifications fetches one page of the user's notifications.
func (c *Client) ListNotifications(ctx context.Context, page int) (Page[models.Notification], error) {
	q := url.Values{}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}

	var result Page[models.Notification]
	err := c.get(ctx, "/api/notifications/", q, &result)
	return result, err
}

// MarkNotificationViewed sets viewed_at on one notification.
func (c *Client) MarkNotificationViewed(ctx context.Context, id int64) error {
	return c.post(ctx, fmt.Sprintf("/api/notifications/%d/mark-viewed/", id), nil, nil)
}

// MarkAllNotificationsViewed sets viewed_at on every unread notification.
func (c *Client) MarkAllNotificationsViewed(ctx context.Context) error {
	return c.post(ctx, "/api/notifications/mark-all-viewed/", nil, nil)
}

// UnreadNotificationCount returns the badge counter.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int64, error) {
	var result struct {
		Count int64 `json:"unread_count"`
	}
	err := c.get(ctx, "/api/notifications/unread-count/", nil, &result)
	return result.Count, err
}

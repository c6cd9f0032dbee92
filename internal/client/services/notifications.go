package services

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/api"
	"github.com/findra-app/findra-cli/internal/client/models"
)

// NotificationAPI is the slice of the API client the notification center
// uses.
type NotificationAPI interface {
	ListNotifications(ctx context.Context, page int) (api.Page[models.Notification], error)
	MarkNotificationViewed(ctx context.Context, id int64) error
	MarkAllNotificationsViewed(ctx context.Context) error
	UnreadNotificationCount(ctx context.Context) (int64, error)
}

// NotificationService accumulates the notification history and keeps the
// unread badge in sync after mark-viewed calls.
type NotificationService struct {
	api   NotificationAPI
	pager *Pager[models.Notification]
}

func NewNotificationService(a NotificationAPI) *NotificationService {
	return &NotificationService{
		api: a,
		pager: NewPager(
			a.ListNotifications,
			func(n models.Notification) int64 { return n.ID },
		),
	}
}

// LoadMore fetches the next page of the history.
func (s *NotificationService) LoadMore(ctx context.Context) (bool, error) {
	return s.pager.LoadMore(ctx)
}

// Notifications returns the accumulated history.
func (s *NotificationService) Notifications() []models.Notification {
	return s.pager.Items()
}

// HasMore reports whether another page is available.
func (s *NotificationService) HasMore() bool {
	return s.pager.HasMore()
}

// MarkViewed marks one notification read and reloads the history so the
// viewed timestamp shows up on the next render.
func (s *NotificationService) MarkViewed(ctx context.Context, id int64) error {
	if err := s.api.MarkNotificationViewed(ctx, id); err != nil {
		return err
	}
	s.pager.Reset()
	_, err := s.pager.LoadMore(ctx)
	return err
}

// MarkAllViewed marks the whole history read.
func (s *NotificationService) MarkAllViewed(ctx context.Context) error {
	if err := s.api.MarkAllNotificationsViewed(ctx); err != nil {
		return err
	}
	s.pager.Reset()
	_, err := s.pager.LoadMore(ctx)
	return err
}

// UnreadCount returns the live unread badge value.
func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.api.UnreadNotificationCount(ctx)
}

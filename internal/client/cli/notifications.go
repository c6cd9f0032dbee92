package cli

import (
	"context"

	"github.com/fatih/color"
)

// Notifications lists the notification history, unread first-class.
func (a *App) Notifications(ctx context.Context) error {
	if _, err := a.notifications.LoadMore(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	items := a.notifications.Notifications()
	if len(items) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	for _, n := range items {
		printlnFn(notificationRow(n))
	}
	if a.notifications.HasMore() {
		printlnFn(color.New(color.FgHiBlack).Sprint("More available, run 'notifications' again to load the next page"))
	}
	return nil
}

// ReadNotification marks one notification viewed.
func (a *App) ReadNotification(ctx context.Context, arg string) error {
	id, err := parseID(arg, "read <id>")
	if err != nil {
		return err
	}
	if err := a.notifications.MarkViewed(ctx, id); err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn("Marked as read.")
	return nil
}

// ReadAllNotifications clears the unread badge entirely.
func (a *App) ReadAllNotifications(ctx context.Context) error {
	if err := a.notifications.MarkAllViewed(ctx); err != nil {
		a.reportError(ctx, err)
		return err
	}
	printlnFn("All notifications marked as read.")
	return nil
}

// showUnreadBadge prints the unread count after login; a failing badge
// fetch is not worth an error message.
func (a *App) showUnreadBadge(ctx context.Context) {
	count, err := a.notifications.UnreadCount(ctx)
	if err != nil || count == 0 {
		return
	}
	printlnFn(color.New(color.Bold, color.FgYellow).Sprintf("You have %d unread notifications.", count))
}

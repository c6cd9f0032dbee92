package models

import "time"

type NotificationChannel string

const (
	ChannelTelegram     NotificationChannel = "TELEGRAM"
	ChannelEmail        NotificationChannel = "EMAIL"
	ChannelWebDashboard NotificationChannel = "WEB_DASHBOARD"
)

// Notification is a delivered alert referencing a match.
type Notification struct {
	ID        int64               `json:"id"`
	Match     *Match              `json:"match"`
	Channel   NotificationChannel `json:"channel"`
	Subject   string              `json:"subject"`
	Message   string              `json:"message"`
	ViewedAt  *time.Time          `json:"viewed_at"`
	CreatedAt time.Time           `json:"created_at"`
}

// Unread reports whether the notification has not been viewed yet.
func (n *Notification) Unread() bool {
	return n.ViewedAt == nil
}

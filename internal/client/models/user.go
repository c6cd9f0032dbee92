// Package models defines the backend-owned record types the Findra client
// renders. The client never originates ids or scores; every struct here is a
// read model for a JSON payload produced by the API.
package models

import "time"

type SubscriptionLevel string

const (
	SubscriptionFree SubscriptionLevel = "FREE"
	SubscriptionPro  SubscriptionLevel = "PRO"
)

// User is the authenticated identity returned by /auth/me/.
type User struct {
	ID                int64             `json:"id"`
	Email             string            `json:"email"`
	IsActive          bool              `json:"is_active"`
	IsStaff           bool              `json:"is_staff"`
	SubscriptionLevel SubscriptionLevel `json:"subscription_level"`
}

type UpgradeRequestStatus string

const (
	UpgradePending  UpgradeRequestStatus = "PENDING"
	UpgradeApproved UpgradeRequestStatus = "APPROVED"
	UpgradeRejected UpgradeRequestStatus = "REJECTED"
)

// SubscriptionUpgradeRequest is a manually reviewed payment-proof
// submission.
type SubscriptionUpgradeRequest struct {
	ID            int64                `json:"id"`
	Status        UpgradeRequestStatus `json:"status"`
	PaymentMethod string               `json:"payment_method"`
	Reference     string               `json:"reference"`
	ReviewNote    string               `json:"review_note"`
	CreatedAt     time.Time            `json:"created_at"`
	ReviewedAt    *time.Time           `json:"reviewed_at"`
}

// Pending reports whether the request is still awaiting review. A pending
// request blocks duplicate submissions client-side.
func (r *SubscriptionUpgradeRequest) Pending() bool {
	return r.Status == UpgradePending
}

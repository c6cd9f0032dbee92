package api

import (
	"context"

	"github.com/findra-app/findra-cli/internal/client/models"
)

// MatchConfigUpdate is the write form of the preference record:
// relationship fields are PK lists, scalar fields are pointers so that only
// set fields travel in the PATCH.
type MatchConfigUpdate struct {
	ThresholdScore        *float64                      `json:"threshold_score,omitempty"`
	NotificationFrequency *models.NotificationFrequency `json:"notification_frequency,omitempty"`
	NotifyViaTelegram     *bool                         `json:"notify_via_telegram,omitempty"`
	NotifyViaEmail        *bool                         `json:"notify_via_email,omitempty"`
	NotifyViaWebPush      *bool                         `json:"notify_via_web_push,omitempty"`
	TelegramFrequency     *models.NotificationFrequency `json:"telegram_frequency,omitempty"`
	EmailFrequency        *models.NotificationFrequency `json:"email_frequency,omitempty"`
	WebPushFrequency      *models.NotificationFrequency `json:"web_push_frequency,omitempty"`
	MaxAlertsPerDay       *int64                        `json:"max_alerts_per_day,omitempty"`
	QuietHoursStart       *string                       `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd         *string                       `json:"quiet_hours_end,omitempty"`
	WorkMode              *models.WorkMode              `json:"work_mode,omitempty"`
	EmploymentType        *models.EmploymentType        `json:"employment_type,omitempty"`
	ExperienceLevel       *models.ExperienceLevel       `json:"experience_level,omitempty"`
	MinCompensation       *int64                        `json:"min_compensation,omitempty"`
	MaxCompensation       *int64                        `json:"max_compensation,omitempty"`
	DeadlineAfter         *string                       `json:"deadline_after,omitempty"`
	DeadlineBefore        *string                       `json:"deadline_before,omitempty"`

	// The relationship lists are always sent, even when empty, so that
	// deselecting everything clears the server-side state.
	PreferredOpportunityTypes []int64 `json:"preferred_opportunity_types"`
	MutedOpportunityTypes     []int64 `json:"muted_opportunity_types"`
	PreferredDomains          []int64 `json:"preferred_domains"`
	PreferredSpecializations  []int64 `json:"preferred_specializations"`
	PreferredLocations        []int64 `json:"preferred_locations"`
}

// GetMatchConfig fetches the user's preference record (read form, nested
// taxonomy objects).
func (c *Client) GetMatchConfig(ctx context.Context) (models.MatchConfig, error) {
	var result models.MatchConfig
	err := c.get(ctx, "/api/config/me/", nil, &result)
	return result, err
}

// UpdateMatchConfig patches the preference record and returns the fresh
// read form.
func (c *Client) UpdateMatchConfig(ctx context.Context, update MatchConfigUpdate) (models.MatchConfig, error) {
	var result models.MatchConfig
	err := c.patch(ctx, "/api/config/me/", update, &result)
	return result, err
}

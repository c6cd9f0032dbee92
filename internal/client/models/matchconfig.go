package models

import "time"

type NotificationFrequency string

const (
	FrequencyInstant NotificationFrequency = "INSTANT"
	FrequencyDaily   NotificationFrequency = "DAILY"
	FrequencyWeekly  NotificationFrequency = "WEEKLY"
)

// MatchConfig is the user's single preference record, one-to-one with the
// account. The read form nests taxonomy objects; the write form (see
// api.MatchConfigUpdate) sends PK lists.
type MatchConfig struct {
	ThresholdScore        float64               `json:"threshold_score"`
	NotificationFrequency NotificationFrequency `json:"notification_frequency"`
	NotifyViaTelegram     bool                  `json:"notify_via_telegram"`
	NotifyViaEmail        bool                  `json:"notify_via_email"`
	NotifyViaWebPush      bool                  `json:"notify_via_web_push"`

	// Per-channel overrides; nil means "use NotificationFrequency".
	TelegramFrequency *NotificationFrequency `json:"telegram_frequency"`
	EmailFrequency    *NotificationFrequency `json:"email_frequency"`
	WebPushFrequency  *NotificationFrequency `json:"web_push_frequency"`

	MaxAlertsPerDay *int64  `json:"max_alerts_per_day"`
	QuietHoursStart *string `json:"quiet_hours_start"`
	QuietHoursEnd   *string `json:"quiet_hours_end"`

	WorkMode        WorkMode        `json:"work_mode"`
	EmploymentType  EmploymentType  `json:"employment_type"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`

	MinCompensation *int64  `json:"min_compensation"`
	MaxCompensation *int64  `json:"max_compensation"`
	DeadlineAfter   *string `json:"deadline_after"`
	DeadlineBefore  *string `json:"deadline_before"`

	PreferredOpportunityTypes []OpportunityType `json:"preferred_opportunity_types"`
	MutedOpportunityTypes     []OpportunityType `json:"muted_opportunity_types"`
	PreferredDomains          []Domain          `json:"preferred_domains"`
	PreferredSpecializations  []Specialization  `json:"preferred_specializations"`
	PreferredLocations        []Location        `json:"preferred_locations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

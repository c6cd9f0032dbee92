package models

import "time"

// UserProfile is the one-to-one profile record behind /profile/me/.
// JSON-valued fields (academic info, languages) keep their backend shape.
type UserProfile struct {
	FullName     string           `json:"full_name"`
	TelegramID   *int64           `json:"telegram_id"`
	CVFile       string           `json:"cv_file"`
	CVText       string           `json:"cv_text"`
	AcademicInfo map[string]any   `json:"academic_info"`
	Skills       []string         `json:"skills"`
	Interests    []string         `json:"interests"`
	Languages    []map[string]any `json:"languages"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

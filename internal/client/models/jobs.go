package models

import "time"

// JobStatus is the lifecycle state shared by the three asynchronous job
// records (CV extraction, cover letters, skill-gap analyses). A FAILED job
// is a normal, displayable outcome carrying ErrorMessage; it is not a
// transport error.
type JobStatus string

const (
	JobUploaded   JobStatus = "UPLOADED"
	JobExtracting JobStatus = "EXTRACTING"
	JobGenerating JobStatus = "GENERATING"
	JobGenerated  JobStatus = "GENERATED"
	JobEdited     JobStatus = "EDITED"
	JobFinalized  JobStatus = "FINALIZED"
	JobCompleted  JobStatus = "COMPLETED"
	JobFailed     JobStatus = "FAILED"
)

// Terminal reports whether no further backend transitions are expected,
// i.e. polling must stop.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobUploaded, JobExtracting, JobGenerating:
		return false
	}
	return true
}

// CVExtractionSession tracks CV upload -> extraction -> review. Extracted
// fields stay on the session until the user applies them to the profile.
type CVExtractionSession struct {
	ID                int64            `json:"id"`
	FileName          string           `json:"file_name"`
	FileSize          int64            `json:"file_size"`
	Status            JobStatus        `json:"status"`
	ExtractedText     string           `json:"extracted_text"`
	ExtractedFullName string           `json:"extracted_full_name"`
	AcademicInfo      map[string]any   `json:"academic_info"`
	Skills            []string         `json:"skills"`
	Interests         []string         `json:"interests"`
	Languages         []map[string]any `json:"languages"`
	Experience        []map[string]any `json:"experience"`
	ConfidenceScore   *float64         `json:"confidence_score"`
	ErrorMessage      string           `json:"error_message"`
	CreatedAt         time.Time        `json:"created_at"`
	ExtractedAt       *time.Time       `json:"extracted_at"`
}

// CoverLetter is an AI-generated, user-editable letter for one
// user+opportunity pair. Version increments on regeneration.
type CoverLetter struct {
	ID               int64       `json:"id"`
	Opportunity      Opportunity `json:"opportunity"`
	GeneratedContent string      `json:"generated_content"`
	EditedContent    string      `json:"edited_content"`
	Status           JobStatus   `json:"status"`
	Version          int         `json:"version"`
	ErrorMessage     string      `json:"error_message"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
	FinalizedAt      *time.Time  `json:"finalized_at"`
}

// FinalContent returns edited content when present, else the generated one.
func (c *CoverLetter) FinalContent() string {
	if c.EditedContent != "" {
		return c.EditedContent
	}
	return c.GeneratedContent
}

// SkillGap describes one skill's current vs required proficiency.
type SkillGap struct {
	Skill    string `json:"skill"`
	Current  string `json:"current"`
	Required string `json:"required"`
}

// SkillGapAnalysis is the result of comparing the user profile against an
// opportunity's requirements.
type SkillGapAnalysis struct {
	ID                  int64       `json:"id"`
	Opportunity         Opportunity `json:"opportunity"`
	Status              JobStatus   `json:"status"`
	MissingSkills       []string    `json:"missing_skills"`
	SkillGaps           []SkillGap  `json:"skill_gaps"`
	RecommendedActions  []string    `json:"recommended_actions"`
	ConfidenceScore     *float64    `json:"confidence_score"`
	EstimatedTimeMonths *int        `json:"estimated_time_months"`
	ErrorMessage        string      `json:"error_message"`
	CreatedAt           time.Time   `json:"created_at"`
	CompletedAt         *time.Time  `json:"completed_at"`
}

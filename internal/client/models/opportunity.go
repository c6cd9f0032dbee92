package models

import "time"

type WorkMode string

const (
	WorkModeAny    WorkMode = "ANY"
	WorkModeRemote WorkMode = "REMOTE"
	WorkModeOnsite WorkMode = "ONSITE"
	WorkModeHybrid WorkMode = "HYBRID"
)

type EmploymentType string

const (
	EmploymentAny        EmploymentType = "ANY"
	EmploymentFullTime   EmploymentType = "FULL_TIME"
	EmploymentPartTime   EmploymentType = "PART_TIME"
	EmploymentContract   EmploymentType = "CONTRACT"
	EmploymentInternship EmploymentType = "INTERNSHIP"
)

type ExperienceLevel string

const (
	ExperienceAny      ExperienceLevel = "ANY"
	ExperienceStudent  ExperienceLevel = "STUDENT"
	ExperienceGraduate ExperienceLevel = "GRADUATE"
	ExperienceJunior   ExperienceLevel = "JUNIOR"
	ExperienceMid      ExperienceLevel = "MID"
	ExperienceSenior   ExperienceLevel = "SENIOR"
)

// Opportunity is a job/internship/scholarship posting. Read-only from the
// client's perspective.
type Opportunity struct {
	ID              int64            `json:"id"`
	Title           string           `json:"title"`
	Organization    string           `json:"organization"`
	DescriptionEN   string           `json:"description_en"`
	SourceURL       string           `json:"source_url"`
	OpType          *OpportunityType `json:"op_type"`
	Domain          *Domain          `json:"domain"`
	Specialization  *Specialization  `json:"specialization"`
	Location        *Location        `json:"location"`
	WorkMode        WorkMode         `json:"work_mode"`
	IsRemote        bool             `json:"is_remote"`
	EmploymentType  EmploymentType   `json:"employment_type"`
	ExperienceLevel ExperienceLevel  `json:"experience_level"`
	MinCompensation *int64           `json:"min_compensation"`
	MaxCompensation *int64           `json:"max_compensation"`
	Deadline        *time.Time       `json:"deadline"`
	Status          string           `json:"status"`
	PublishedAt     *time.Time       `json:"published_at"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

package models

import "time"

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
	JobTypeRemote     JobType = "remote"
)

// ValidJobType reports whether t is a recognized job type.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship, JobTypeRemote:
		return true
	}
	return false
}

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

// ValidExperienceLevel reports whether l is a recognized experience level.
func ValidExperienceLevel(l ExperienceLevel) bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	}
	return false
}

// Job is a posting owned by exactly one employer user. Salary bounds are
// stored as entered; min/max ordering is not validated.
type Job struct {
	ID               uint64          `gorm:"primarykey" json:"id"`
	EmployerID       uint64          `gorm:"not null;index" json:"employer_id"`
	Title            string          `gorm:"type:varchar(200);not null" json:"title"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Requirements     string          `gorm:"type:text;not null" json:"requirements"`
	Responsibilities string          `gorm:"type:text" json:"responsibilities"`
	JobType          JobType         `gorm:"type:varchar(20);not null;index" json:"job_type"`
	ExperienceLevel  ExperienceLevel `gorm:"type:varchar(20);not null" json:"experience_level"`
	Category         string          `gorm:"type:varchar(100);not null" json:"category"`
	Location         string          `gorm:"type:varchar(200);not null" json:"location"`
	SalaryMin        *float64        `json:"salary_min"`
	SalaryMax        *float64        `json:"salary_max"`
	// No default tag: gorm would drop a zero-value false from the INSERT
	// and the column default would resurrect the row as active.
	IsActive  bool       `gorm:"not null;index" json:"is_active"`
	Deadline  *time.Time `json:"deadline"`
	CreatedAt time.Time  `json:"posted_date"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Employer     User          `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

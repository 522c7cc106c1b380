package models

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewing   ApplicationStatus = "reviewing"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusAccepted    ApplicationStatus = "accepted"
)

// ValidStatus reports whether s is one of the five recognized statuses.
func ValidStatus(s ApplicationStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

// statusTransitions is the transition-validity table. Every status currently
// permits every status, including re-entering accepted and rejected;
// tightening the workflow is an edit here, not in the engine.
var statusTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusPending:     {StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted},
	StatusReviewing:   {StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted},
	StatusShortlisted: {StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted},
	StatusRejected:    {StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted},
	StatusAccepted:    {StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted},
}

// CanTransition reports whether an application may move from one status to
// another.
func CanTransition(from, to ApplicationStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Application is one seeker's candidacy for one job. The (job, applicant)
// pair is unique at the storage layer; a pre-check alone would leave a
// check-then-act race between concurrent applies.
type Application struct {
	ID          uint64            `gorm:"primarykey" json:"id"`
	JobID       uint64            `gorm:"not null;uniqueIndex:idx_job_applicant" json:"job_id"`
	ApplicantID uint64            `gorm:"not null;uniqueIndex:idx_job_applicant" json:"applicant_id"`
	Reference   string            `gorm:"type:varchar(36);not null" json:"reference"`
	CoverLetter string            `gorm:"type:text" json:"cover_letter"`
	Status      ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IsActive    bool              `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time         `json:"applied_date"`
	UpdatedAt   time.Time         `json:"updated_date"`

	// Relations
	Job       Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant User `gorm:"foreignKey:ApplicantID" json:"applicant,omitempty"`
}

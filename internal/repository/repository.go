package repository

import (
	"github.com/openhire/job-board-api/internal/models"
)

// UserRepository defines the interface for account and profile data access
type UserRepository interface {
	// CreateWithProfile creates a user and their role profile within a
	// single transaction. Exactly one of seeker/employer must be non-nil,
	// matching the user's role.
	CreateWithProfile(user *models.User, seeker *models.SeekerProfile, employer *models.EmployerProfile) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// FindSeekerProfile finds the seeker profile owned by a user
	FindSeekerProfile(userID uint64) (*models.SeekerProfile, error)

	// FindEmployerProfile finds the employer profile owned by a user
	FindEmployerProfile(userID uint64) (*models.EmployerProfile, error)

	// SaveSeekerProfile persists a seeker profile
	SaveSeekerProfile(profile *models.SeekerProfile) error

	// SaveEmployerProfile persists an employer profile
	SaveEmployerProfile(profile *models.EmployerProfile) error
}

// JobFilter holds the recognized search options. Zero-valued fields are
// no-ops; all provided filters AND-combine. Only active jobs are eligible.
type JobFilter struct {
	Search          string
	Location        string
	JobType         models.JobType
	Category        string
	ExperienceLevel models.ExperienceLevel
	Page            int
	PageSize        int
}

// JobRepository defines the interface for job posting data access
type JobRepository interface {
	// Create creates a new job
	Create(job *models.Job) error

	// FindByID finds a job by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Job, error)

	// FindActiveByID finds a job that is active
	FindActiveByID(id uint64) (*models.Job, error)

	// Search retrieves active jobs matching the filter, newest first
	Search(filter JobFilter) ([]models.Job, int64, error)

	// Recent returns the most recently posted active jobs
	Recent(limit int) ([]models.Job, error)

	// ListByEmployer lists all jobs posted by an employer, newest first
	ListByEmployer(employerID uint64) ([]models.Job, error)

	// Update updates a job
	Update(job *models.Job) error

	// Delete removes a job and all of its applications
	Delete(id uint64) error
}

// StatusCounts aggregates applications per status for one job.
type StatusCounts struct {
	Total       int64 `json:"total"`
	Pending     int64 `json:"pending"`
	Shortlisted int64 `json:"shortlisted"`
	Accepted    int64 `json:"accepted"`
}

// ApplicationRepository defines the interface for application data access
type ApplicationRepository interface {
	// Create inserts a new application; the (job, applicant) unique
	// constraint is enforced by the storage layer
	Create(application *models.Application) error

	// FindByID finds an application by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Application, error)

	// Exists reports whether an application exists for (job, applicant)
	Exists(jobID, applicantID uint64) (bool, error)

	// ListByJob lists all applications for a job, most recently applied
	// first
	ListByJob(jobID uint64) ([]models.Application, error)

	// ListByApplicant lists a seeker's applications, newest first
	ListByApplicant(applicantID uint64) ([]models.Application, error)

	// CountByStatus aggregates application counts for a job
	CountByStatus(jobID uint64) (StatusCounts, error)

	// Update persists changes to an application
	Update(application *models.Application) error

	// Delete permanently removes an application
	Delete(id uint64) error
}

// NotificationRepository defines the interface for in-app notifications
type NotificationRepository interface {
	// Create appends a notification
	Create(notification *models.Notification) error

	// ListByUser lists a user's notifications, newest first
	ListByUser(userID uint64) ([]models.Notification, error)

	// MarkRead marks one of the user's notifications as read
	MarkRead(id, userID uint64) error
}

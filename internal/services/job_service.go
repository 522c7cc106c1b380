package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrJobNotFound             = errors.New("job not found")
	ErrNotJobOwner             = errors.New("only the employer who posted this job can perform this action")
	ErrJobTitleRequired        = errors.New("title is required")
	ErrJobDescriptionRequired  = errors.New("description is required")
	ErrJobRequirementsRequired = errors.New("requirements are required")
	ErrJobCategoryRequired     = errors.New("category is required")
	ErrJobLocationRequired     = errors.New("location is required")
	ErrInvalidJobType          = errors.New("invalid job type")
	ErrInvalidExperienceLevel  = errors.New("invalid experience level")
)

// JobService handles the job catalog: posting, editing, deleting and search.
type JobService struct {
	jobRepo repository.JobRepository
	appRepo repository.ApplicationRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) *JobService {
	return &JobService{
		jobRepo: jobRepo,
		appRepo: appRepo,
	}
}

// CreateJobInput represents input for posting a job. Salary bounds and
// deadline are stored as given; min/max ordering and past deadlines are
// deliberately not validated.
type CreateJobInput struct {
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	JobType          models.JobType
	ExperienceLevel  models.ExperienceLevel
	Category         string
	Location         string
	SalaryMin        *float64
	SalaryMax        *float64
	Deadline         *time.Time
}

func (in CreateJobInput) validate() error {
	switch {
	case in.Title == "":
		return ErrJobTitleRequired
	case in.Description == "":
		return ErrJobDescriptionRequired
	case in.Requirements == "":
		return ErrJobRequirementsRequired
	case in.Category == "":
		return ErrJobCategoryRequired
	case in.Location == "":
		return ErrJobLocationRequired
	case !models.ValidJobType(in.JobType):
		return ErrInvalidJobType
	case !models.ValidExperienceLevel(in.ExperienceLevel):
		return ErrInvalidExperienceLevel
	}
	return nil
}

// CreateJob posts a new job owned by the employer.
func (s *JobService) CreateJob(employer *models.User, input CreateJobInput) (*models.Job, error) {
	if employer.Role != models.RoleEmployer {
		return nil, ErrNotEmployer
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	job := &models.Job{
		EmployerID:       employer.ID,
		Title:            input.Title,
		Description:      input.Description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		JobType:          input.JobType,
		ExperienceLevel:  input.ExperienceLevel,
		Category:         input.Category,
		Location:         input.Location,
		SalaryMin:        input.SalaryMin,
		SalaryMax:        input.SalaryMax,
		Deadline:         input.Deadline,
		IsActive:         true,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	return job, nil
}

// GetJob returns a job with its employer loaded, plus whether the given
// user (if any) has already applied.
func (s *JobService) GetJob(jobID uint64, viewerID uint64) (*models.Job, bool, error) {
	job, err := s.jobRepo.FindByID(jobID, "Employer", "Employer.EmployerProfile")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrJobNotFound
		}
		return nil, false, fmt.Errorf("failed to find job: %w", err)
	}

	hasApplied := false
	if viewerID != 0 {
		hasApplied, err = s.appRepo.Exists(jobID, viewerID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to check application: %w", err)
		}
	}

	return job, hasApplied, nil
}

// Search returns active jobs matching the filter, newest first.
func (s *JobService) Search(filter repository.JobFilter) ([]models.Job, int64, error) {
	jobs, total, err := s.jobRepo.Search(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search jobs: %w", err)
	}
	return jobs, total, nil
}

// Recent returns the most recently posted active jobs.
func (s *JobService) Recent(limit int) ([]models.Job, error) {
	jobs, err := s.jobRepo.Recent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJobInput represents input for editing a job. Nil pointers leave the
// stored value untouched; ClearSalary/ClearDeadline reset optional fields.
type UpdateJobInput struct {
	Title            *string
	Description      *string
	Requirements     *string
	Responsibilities *string
	JobType          *models.JobType
	ExperienceLevel  *models.ExperienceLevel
	Category         *string
	Location         *string
	SalaryMin        *float64
	SalaryMax        *float64
	ClearSalary      bool
	Deadline         *time.Time
	ClearDeadline    bool
	IsActive         *bool
}

// UpdateJob edits a job owned by the requesting employer.
func (s *JobService) UpdateJob(jobID, requesterID uint64, input UpdateJobInput) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	if job.EmployerID != requesterID {
		return nil, ErrNotJobOwner
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, ErrJobTitleRequired
		}
		job.Title = *input.Title
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.Responsibilities != nil {
		job.Responsibilities = *input.Responsibilities
	}
	if input.JobType != nil {
		if !models.ValidJobType(*input.JobType) {
			return nil, ErrInvalidJobType
		}
		job.JobType = *input.JobType
	}
	if input.ExperienceLevel != nil {
		if !models.ValidExperienceLevel(*input.ExperienceLevel) {
			return nil, ErrInvalidExperienceLevel
		}
		job.ExperienceLevel = *input.ExperienceLevel
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.ClearSalary {
		job.SalaryMin = nil
		job.SalaryMax = nil
	} else {
		if input.SalaryMin != nil {
			job.SalaryMin = input.SalaryMin
		}
		if input.SalaryMax != nil {
			job.SalaryMax = input.SalaryMax
		}
	}
	if input.ClearDeadline {
		job.Deadline = nil
	} else if input.Deadline != nil {
		job.Deadline = input.Deadline
	}
	if input.IsActive != nil {
		job.IsActive = *input.IsActive
	}

	if err := s.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return job, nil
}

// DeleteJob removes a job owned by the requesting employer. All of its
// applications go with it.
func (s *JobService) DeleteJob(jobID, requesterID uint64) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJobNotFound
		}
		return fmt.Errorf("failed to find job: %w", err)
	}

	if job.EmployerID != requesterID {
		return ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}

	return nil
}

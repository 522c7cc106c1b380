package dto

import (
	"time"

	"github.com/openhire/job-board-api/internal/models"
)

// JobDTO represents a job posting in API responses
type JobDTO struct {
	ID               uint64                 `json:"id"`
	EmployerID       uint64                 `json:"employer_id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	Requirements     string                 `json:"requirements"`
	Responsibilities string                 `json:"responsibilities,omitempty"`
	JobType          models.JobType         `json:"job_type"`
	ExperienceLevel  models.ExperienceLevel `json:"experience_level"`
	Category         string                 `json:"category"`
	Location         string                 `json:"location"`
	SalaryMin        *float64               `json:"salary_min,omitempty"`
	SalaryMax        *float64               `json:"salary_max,omitempty"`
	IsActive         bool                   `json:"is_active"`
	Deadline         *time.Time             `json:"deadline,omitempty"`
	PostedDate       time.Time              `json:"posted_date"`
	CompanyName      string                 `json:"company_name,omitempty"`
}

// JobListItemDTO represents a job in list responses (minimal data)
type JobListItemDTO struct {
	ID              uint64                 `json:"id"`
	Title           string                 `json:"title"`
	JobType         models.JobType         `json:"job_type"`
	ExperienceLevel models.ExperienceLevel `json:"experience_level"`
	Category        string                 `json:"category"`
	Location        string                 `json:"location"`
	PostedDate      time.Time              `json:"posted_date"`
	CompanyName     string                 `json:"company_name,omitempty"`
}

// JobListResponse represents a paginated job search result
type JobListResponse struct {
	Jobs       []JobListItemDTO `json:"jobs"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalCount int64            `json:"total_count"`
	TotalPages int              `json:"total_pages"`
}

// ToJobDTO converts a Job model to JobDTO
func ToJobDTO(job models.Job) JobDTO {
	dto := JobDTO{
		ID:               job.ID,
		EmployerID:       job.EmployerID,
		Title:            job.Title,
		Description:      job.Description,
		Requirements:     job.Requirements,
		Responsibilities: job.Responsibilities,
		JobType:          job.JobType,
		ExperienceLevel:  job.ExperienceLevel,
		Category:         job.Category,
		Location:         job.Location,
		SalaryMin:        job.SalaryMin,
		SalaryMax:        job.SalaryMax,
		IsActive:         job.IsActive,
		Deadline:         job.Deadline,
		PostedDate:       job.CreatedAt,
	}

	// Include company if the employer profile is preloaded
	if job.Employer.EmployerProfile != nil {
		dto.CompanyName = job.Employer.EmployerProfile.CompanyName
	}

	return dto
}

// ToJobListItemDTO converts a Job model to JobListItemDTO
func ToJobListItemDTO(job models.Job) JobListItemDTO {
	dto := JobListItemDTO{
		ID:              job.ID,
		Title:           job.Title,
		JobType:         job.JobType,
		ExperienceLevel: job.ExperienceLevel,
		Category:        job.Category,
		Location:        job.Location,
		PostedDate:      job.CreatedAt,
	}

	if job.Employer.EmployerProfile != nil {
		dto.CompanyName = job.Employer.EmployerProfile.CompanyName
	}

	return dto
}

// ToJobListResponse converts a slice of jobs to JobListResponse
func ToJobListResponse(jobs []models.Job, page, pageSize int, totalCount int64) JobListResponse {
	items := make([]JobListItemDTO, len(jobs))
	for i, job := range jobs {
		items[i] = ToJobListItemDTO(job)
	}

	totalPages := int(totalCount) / pageSize
	if int(totalCount)%pageSize > 0 {
		totalPages++
	}

	return JobListResponse{
		Jobs:       items,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}

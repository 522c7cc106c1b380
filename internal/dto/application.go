package dto

import (
	"time"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
)

// ApplicationDTO represents an application in API responses
type ApplicationDTO struct {
	ID          uint64                   `json:"id"`
	JobID       uint64                   `json:"job_id"`
	ApplicantID uint64                   `json:"applicant_id"`
	Reference   string                   `json:"reference"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	Status      models.ApplicationStatus `json:"status"`
	AppliedDate time.Time                `json:"applied_date"`
	UpdatedDate time.Time                `json:"updated_date"`
	Applicant   *UserDTO                 `json:"applicant,omitempty"`
	Job         *JobListItemDTO          `json:"job,omitempty"`
}

// JobApplicationsResponse bundles a job's applications with aggregates.
type JobApplicationsResponse struct {
	Applications []ApplicationDTO        `json:"applications"`
	Counts       repository.StatusCounts `json:"counts"`
}

// ToApplicationDTO converts an Application model to ApplicationDTO
func ToApplicationDTO(application models.Application) ApplicationDTO {
	dto := ApplicationDTO{
		ID:          application.ID,
		JobID:       application.JobID,
		ApplicantID: application.ApplicantID,
		Reference:   application.Reference,
		CoverLetter: application.CoverLetter,
		Status:      application.Status,
		AppliedDate: application.CreatedAt,
		UpdatedDate: application.UpdatedAt,
	}

	// Include applicant if preloaded
	if application.Applicant.ID != 0 {
		applicant := ToUserDTO(application.Applicant)
		dto.Applicant = &applicant
	}

	// Include job if preloaded
	if application.Job.ID != 0 {
		job := ToJobListItemDTO(application.Job)
		dto.Job = &job
	}

	return dto
}

// ToJobApplicationsResponse converts a listing with counts
func ToJobApplicationsResponse(applications []models.Application, counts repository.StatusCounts) JobApplicationsResponse {
	items := make([]ApplicationDTO, len(applications))
	for i, application := range applications {
		items[i] = ToApplicationDTO(application)
	}
	return JobApplicationsResponse{
		Applications: items,
		Counts:       counts,
	}
}

package repository

import (
	"github.com/openhire/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormApplicationRepository is a GORM implementation of ApplicationRepository
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Create inserts a new application. A duplicate (job, applicant) pair
// surfaces as gorm.ErrDuplicatedKey via the unique index, which closes the
// race left open by any pre-check.
func (r *GormApplicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

// FindByID finds an application by ID with optional preloading
func (r *GormApplicationRepository) FindByID(id uint64, preload ...string) (*models.Application, error) {
	var application models.Application
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&application, id).Error; err != nil {
		return nil, err
	}

	return &application, nil
}

// Exists reports whether an application exists for (job, applicant)
func (r *GormApplicationRepository) Exists(jobID, applicantID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByJob lists all applications for a job, most recently applied first
func (r *GormApplicationRepository) ListByJob(jobID uint64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Applicant").Preload("Applicant.SeekerProfile").
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ListByApplicant lists a seeker's applications, newest first
func (r *GormApplicationRepository) ListByApplicant(applicantID uint64) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Preload("Job.Employer").Preload("Job.Employer.EmployerProfile").
		Where("applicant_id = ?", applicantID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// CountByStatus aggregates application counts for a job
func (r *GormApplicationRepository) CountByStatus(jobID uint64) (StatusCounts, error) {
	var rows []struct {
		Status models.ApplicationStatus
		N      int64
	}

	err := r.db.Model(&models.Application{}).
		Select("status, COUNT(*) AS n").
		Where("job_id = ?", jobID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return StatusCounts{}, err
	}

	var counts StatusCounts
	for _, row := range rows {
		counts.Total += row.N
		switch row.Status {
		case models.StatusPending:
			counts.Pending = row.N
		case models.StatusShortlisted:
			counts.Shortlisted = row.N
		case models.StatusAccepted:
			counts.Accepted = row.N
		}
	}

	return counts, nil
}

// Update persists changes to an application
func (r *GormApplicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}

// Delete permanently removes an application
func (r *GormApplicationRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Application{}, id).Error
}

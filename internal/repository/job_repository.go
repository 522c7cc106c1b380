package repository

import (
	"strings"

	"github.com/openhire/job-board-api/internal/database"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/utils"
	"gorm.io/gorm"
)

// GormJobRepository is a GORM implementation of JobRepository
type GormJobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &GormJobRepository{db: db}
}

// Create creates a new job
func (r *GormJobRepository) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

// FindByID finds a job by ID with optional preloading
func (r *GormJobRepository) FindByID(id uint64, preload ...string) (*models.Job, error) {
	var job models.Job
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&job, id).Error; err != nil {
		return nil, err
	}

	return &job, nil
}

// FindActiveByID finds a job that is active. Inactive jobs are out of scope
// for applying, so they read as not found.
func (r *GormJobRepository) FindActiveByID(id uint64) (*models.Job, error) {
	var job models.Job
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Search retrieves active jobs matching the filter. Substring filters use
// LOWER(...) LIKE so behavior matches across postgres, mysql and sqlite.
func (r *GormJobRepository) Search(filter JobFilter) ([]models.Job, int64, error) {
	var jobs []models.Job

	query := r.db.Model(&models.Job{}).Where("jobs.is_active = ?", true)

	if filter.Search != "" {
		like := contains(filter.Search)
		query = query.Where(
			"LOWER(jobs.title) LIKE ? ESCAPE '!' OR LOWER(jobs.description) LIKE ? ESCAPE '!' OR LOWER(jobs.requirements) LIKE ? ESCAPE '!'",
			like, like, like,
		)
	}
	if filter.Location != "" {
		query = query.Where("LOWER(jobs.location) LIKE ? ESCAPE '!'", contains(filter.Location))
	}
	if filter.JobType != "" {
		query = query.Where("jobs.job_type = ?", filter.JobType)
	}
	if filter.Category != "" {
		query = query.Where("LOWER(jobs.category) LIKE ? ESCAPE '!'", contains(filter.Category))
	}
	if filter.ExperienceLevel != "" {
		query = query.Where("jobs.experience_level = ?", filter.ExperienceLevel)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Newest first; id breaks timestamp ties deterministically.
	listQuery := query.Order("jobs.created_at DESC, jobs.id DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		listQuery = listQuery.Scopes(database.Paginate(utils.PaginationParams{
			Page:   filter.Page,
			Limit:  filter.PageSize,
			Offset: (filter.Page - 1) * filter.PageSize,
		}))
	}

	if err := listQuery.Preload("Employer").Preload("Employer.EmployerProfile").Find(&jobs).Error; err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// likeEscaper neutralizes LIKE metacharacters so user input matches as a
// literal substring. '!' is the escape character; unlike backslash its SQL
// literal form is identical across postgres, mysql and sqlite.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func contains(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// Recent returns the most recently posted active jobs
func (r *GormJobRepository) Recent(limit int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListByEmployer lists all jobs posted by an employer, newest first
func (r *GormJobRepository) ListByEmployer(employerID uint64) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Update updates a job
func (r *GormJobRepository) Update(job *models.Job) error {
	return r.db.Save(job).Error
}

// Delete removes a job and cascades to its applications in one transaction
func (r *GormJobRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Job{}, id).Error
	})
}

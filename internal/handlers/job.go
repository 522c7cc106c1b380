package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/constants"
	"github.com/openhire/job-board-api/internal/dto"
	apierrors "github.com/openhire/job-board-api/internal/errors"
	"github.com/openhire/job-board-api/internal/middleware"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"github.com/openhire/job-board-api/internal/services"
	"github.com/openhire/job-board-api/internal/utils"
)

// JobHandler serves the job catalog.
type JobHandler struct {
	jobService  *services.JobService
	authService *services.AuthService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService *services.JobService, authService *services.AuthService) *JobHandler {
	return &JobHandler{
		jobService:  jobService,
		authService: authService,
	}
}

// SearchJobs lists active jobs matching the query filters.
// All filters AND-combine; empty ones are ignored.
func (h *JobHandler) SearchJobs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := repository.JobFilter{
		Search:          c.Query("search"),
		Location:        c.Query("location"),
		JobType:         models.JobType(c.Query("job_type")),
		Category:        c.Query("category"),
		ExperienceLevel: models.ExperienceLevel(c.Query("experience_level")),
		Page:            params.Page,
		PageSize:        params.Limit,
	}

	jobs, total, err := h.jobService.Search(filter)
	if err != nil {
		apierrors.InternalError(c, "Failed to search jobs")
		return
	}

	c.JSON(http.StatusOK, dto.ToJobListResponse(jobs, params.Page, params.Limit, total))
}

// RecentJobs lists the most recently posted active jobs for the home view.
func (h *JobHandler) RecentJobs(c *gin.Context) {
	jobs, err := h.jobService.Recent(constants.RecentJobsLimit)
	if err != nil {
		apierrors.InternalError(c, "Failed to list jobs")
		return
	}

	items := make([]dto.JobListItemDTO, len(jobs))
	for i, job := range jobs {
		items[i] = dto.ToJobListItemDTO(job)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items})
}

// GetJob returns job details; authenticated viewers also learn whether they
// already applied.
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	viewerID, _ := middleware.GetUserID(c)

	job, hasApplied, err := h.jobService.GetJob(jobID, viewerID)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"job":         dto.ToJobDTO(*job),
		"has_applied": hasApplied,
	})
}

// jobRequest is shared by create and update payloads.
type jobRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description" binding:"required"`
	Requirements     string     `json:"requirements" binding:"required"`
	Responsibilities string     `json:"responsibilities"`
	JobType          string     `json:"job_type" binding:"required"`
	ExperienceLevel  string     `json:"experience_level" binding:"required"`
	Category         string     `json:"category" binding:"required"`
	Location         string     `json:"location" binding:"required"`
	SalaryMin        *float64   `json:"salary_min"`
	SalaryMax        *float64   `json:"salary_max"`
	Deadline         *time.Time `json:"deadline"`
}

// CreateJob posts a new job. Employers only.
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employer, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return
	}

	job, err := h.jobService.CreateJob(employer, services.CreateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		JobType:          models.JobType(req.JobType),
		ExperienceLevel:  models.ExperienceLevel(req.ExperienceLevel),
		Category:         req.Category,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		Deadline:         req.Deadline,
	})
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobDTO(*job))
}

// UpdateJob edits a job owned by the caller.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	jobID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateJobRequest struct {
		Title            *string    `json:"title"`
		Description      *string    `json:"description"`
		Requirements     *string    `json:"requirements"`
		Responsibilities *string    `json:"responsibilities"`
		JobType          *string    `json:"job_type"`
		ExperienceLevel  *string    `json:"experience_level"`
		Category         *string    `json:"category"`
		Location         *string    `json:"location"`
		SalaryMin        *float64   `json:"salary_min"`
		SalaryMax        *float64   `json:"salary_max"`
		ClearSalary      bool       `json:"clear_salary"`
		Deadline         *time.Time `json:"deadline"`
		ClearDeadline    bool       `json:"clear_deadline"`
		IsActive         *bool      `json:"is_active"`
	}

	var req UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	input := services.UpdateJobInput{
		Title:            req.Title,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Category:         req.Category,
		Location:         req.Location,
		SalaryMin:        req.SalaryMin,
		SalaryMax:        req.SalaryMax,
		ClearSalary:      req.ClearSalary,
		Deadline:         req.Deadline,
		ClearDeadline:    req.ClearDeadline,
		IsActive:         req.IsActive,
	}
	if req.JobType != nil {
		jobType := models.JobType(*req.JobType)
		input.JobType = &jobType
	}
	if req.ExperienceLevel != nil {
		level := models.ExperienceLevel(*req.ExperienceLevel)
		input.ExperienceLevel = &level
	}

	job, err := h.jobService.UpdateJob(jobID, userID, input)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobDTO(*job))
}

// DeleteJob removes a job owned by the caller, applications included.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	jobID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.jobService.DeleteJob(jobID, userID); err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job deleted successfully",
	})
}

func parseIDParam(c *gin.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotEmployer):
		apierrors.RoleRequired(c, err.Error())
	case errors.Is(err, services.ErrNotJobOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrJobTitleRequired),
		errors.Is(err, services.ErrJobDescriptionRequired),
		errors.Is(err, services.ErrJobRequirementsRequired),
		errors.Is(err, services.ErrJobCategoryRequired),
		errors.Is(err, services.ErrJobLocationRequired),
		errors.Is(err, services.ErrInvalidJobType),
		errors.Is(err, services.ErrInvalidExperienceLevel):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

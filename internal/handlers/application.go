package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/job-board-api/internal/dto"
	apierrors "github.com/openhire/job-board-api/internal/errors"
	"github.com/openhire/job-board-api/internal/middleware"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/services"
)

// ApplicationHandler serves the application lifecycle endpoints.
type ApplicationHandler struct {
	applicationService *services.ApplicationService
	authService        *services.AuthService
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(applicationService *services.ApplicationService, authService *services.AuthService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
		authService:        authService,
	}
}

// Apply submits an application to a job. Seekers only; one per job.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid job ID")
		return
	}

	applicant, ok := h.currentUser(c)
	if !ok {
		return
	}

	type ApplyRequest struct {
		CoverLetter string `json:"cover_letter"`
	}

	var req ApplyRequest
	// Cover letter is optional, so an empty body is fine.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.BadRequest(c, "Invalid request body")
			return
		}
	}

	application, err := h.applicationService.Apply(applicant, services.ApplyInput{
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationDTO(*application))
}

// ListForJob returns a job's applications with status counts. Owner only.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
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

	result, err := h.applicationService.ListForJob(jobID, userID)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobApplicationsResponse(result.Applications, result.Counts))
}

// ListMine returns the caller's own applications.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	applications, err := h.applicationService.ListForApplicant(userID)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	items := make([]dto.ApplicationDTO, len(applications))
	for i, application := range applications {
		items[i] = dto.ToApplicationDTO(application)
	}
	c.JSON(http.StatusOK, gin.H{"applications": items})
}

// UpdateStatus transitions an application's status. Owning employer only.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid application ID")
		return
	}

	requester, ok := h.currentUser(c)
	if !ok {
		return
	}

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	application, err := h.applicationService.TransitionStatus(applicationID, requester, models.ApplicationStatus(req.Status))
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationDTO(*application))
}

// Delete removes an application. The response reports which role deleted it
// so the client can route to the applicant list or the seeker dashboard.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	applicationID, err := parseIDParam(c)
	if err != nil {
		apierrors.BadRequest(c, "Invalid application ID")
		return
	}

	requester, ok := h.currentUser(c)
	if !ok {
		return
	}

	deletedBy, err := h.applicationService.Delete(applicationID, requester)
	if err != nil {
		respondApplicationError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Application deleted successfully",
		"deleted_by": deletedBy,
	})
}

func (h *ApplicationHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return nil, false
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		respondAuthError(c, err)
		return nil, false
	}
	return user, true
}

func respondApplicationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrApplicationNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotSeeker):
		apierrors.RoleRequired(c, err.Error())
	case errors.Is(err, services.ErrNotJobOwner),
		errors.Is(err, services.ErrNotApplicationOwner),
		errors.Is(err, services.ErrNotApplicationParty):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrAlreadyApplied):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidTransition):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/openhire/job-board-api/internal/errors"
	"github.com/openhire/job-board-api/internal/middleware"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/services"
)

// ProfileHandler serves role profiles and dashboards.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetSeekerProfile returns the caller's seeker profile.
func (h *ProfileHandler) GetSeekerProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.profileService.GetSeekerProfile(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateSeekerProfile updates the caller's seeker profile.
func (h *ProfileHandler) UpdateSeekerProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateSeekerProfileRequest struct {
		Skills          *string `json:"skills"`
		ExperienceYears *int    `json:"experience_years"`
		Education       *string `json:"education"`
		Bio             *string `json:"bio"`
		Location        *string `json:"location"`
		LinkedinURL     *string `json:"linkedin_url"`
		PortfolioURL    *string `json:"portfolio_url"`
		ResumePath      *string `json:"resume_path"`
		PicturePath     *string `json:"picture_path"`
	}

	var req UpdateSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateSeekerProfile(userID, services.UpdateSeekerProfileInput{
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Education:       req.Education,
		Bio:             req.Bio,
		Location:        req.Location,
		LinkedinURL:     req.LinkedinURL,
		PortfolioURL:    req.PortfolioURL,
		ResumePath:      req.ResumePath,
		PicturePath:     req.PicturePath,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetEmployerProfile returns the caller's employer profile.
func (h *ProfileHandler) GetEmployerProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	profile, err := h.profileService.GetEmployerProfile(userID)
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateEmployerProfile updates the caller's employer profile.
func (h *ProfileHandler) UpdateEmployerProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateEmployerProfileRequest struct {
		CompanyName        *string `json:"company_name"`
		CompanyDescription *string `json:"company_description"`
		CompanyWebsite     *string `json:"company_website"`
		CompanySize        *string `json:"company_size"`
		Industry           *string `json:"industry"`
		Location           *string `json:"location"`
		LogoPath           *string `json:"logo_path"`
	}

	var req UpdateEmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateEmployerProfile(userID, services.UpdateEmployerProfileInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanyWebsite:     req.CompanyWebsite,
		CompanySize:        req.CompanySize,
		Industry:           req.Industry,
		Location:           req.Location,
		LogoPath:           req.LogoPath,
	})
	if err != nil {
		respondProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// GetDashboard returns the role-specific dashboard payload.
func (h *ProfileHandler) GetDashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	role, _ := middleware.GetUserRole(c)
	switch role {
	case models.RoleSeeker:
		dashboard, err := h.profileService.GetSeekerDashboard(userID)
		if err != nil {
			respondProfileError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":         models.RoleSeeker,
			"profile":      dashboard.Profile,
			"applications": dashboard.Applications,
		})
	case models.RoleEmployer:
		dashboard, err := h.profileService.GetEmployerDashboard(userID)
		if err != nil {
			respondProfileError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"role":    models.RoleEmployer,
			"profile": dashboard.Profile,
			"jobs":    dashboard.Jobs,
		})
	default:
		apierrors.InternalError(c, "Unknown role")
	}
}

func respondProfileError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCompanyNameRequired):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}

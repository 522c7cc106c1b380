package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotSeeker       = errors.New("only job seekers can perform this action")
	ErrNotEmployer     = errors.New("only employers can perform this action")
)

// ProfileService handles role profile reads and updates plus the
// role-specific dashboard payloads.
type ProfileService struct {
	userRepo repository.UserRepository
	jobRepo  repository.JobRepository
	appRepo  repository.ApplicationRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repository.UserRepository, jobRepo repository.JobRepository, appRepo repository.ApplicationRepository) *ProfileService {
	return &ProfileService{
		userRepo: userRepo,
		jobRepo:  jobRepo,
		appRepo:  appRepo,
	}
}

// GetSeekerProfile returns the seeker profile owned by the user.
func (s *ProfileService) GetSeekerProfile(userID uint64) (*models.SeekerProfile, error) {
	profile, err := s.userRepo.FindSeekerProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find seeker profile: %w", err)
	}
	return profile, nil
}

// GetEmployerProfile returns the employer profile owned by the user.
func (s *ProfileService) GetEmployerProfile(userID uint64) (*models.EmployerProfile, error) {
	profile, err := s.userRepo.FindEmployerProfile(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to find employer profile: %w", err)
	}
	return profile, nil
}

// UpdateSeekerProfileInput carries the editable seeker profile fields.
// Nil pointers leave the stored value untouched.
type UpdateSeekerProfileInput struct {
	Skills          *string
	ExperienceYears *int
	Education       *string
	Bio             *string
	Location        *string
	LinkedinURL     *string
	PortfolioURL    *string
	ResumePath      *string
	PicturePath     *string
}

// UpdateSeekerProfile updates the caller's seeker profile.
func (s *ProfileService) UpdateSeekerProfile(userID uint64, input UpdateSeekerProfileInput) (*models.SeekerProfile, error) {
	profile, err := s.GetSeekerProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.Skills != nil {
		profile.Skills = *input.Skills
	}
	if input.ExperienceYears != nil {
		profile.ExperienceYears = *input.ExperienceYears
	}
	if input.Education != nil {
		profile.Education = *input.Education
	}
	if input.Bio != nil {
		profile.Bio = *input.Bio
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.LinkedinURL != nil {
		profile.LinkedinURL = *input.LinkedinURL
	}
	if input.PortfolioURL != nil {
		profile.PortfolioURL = *input.PortfolioURL
	}
	if input.ResumePath != nil {
		profile.ResumePath = *input.ResumePath
	}
	if input.PicturePath != nil {
		profile.PicturePath = *input.PicturePath
	}

	if err := s.userRepo.SaveSeekerProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save seeker profile: %w", err)
	}

	return profile, nil
}

// UpdateEmployerProfileInput carries the editable employer profile fields.
type UpdateEmployerProfileInput struct {
	CompanyName        *string
	CompanyDescription *string
	CompanyWebsite     *string
	CompanySize        *string
	Industry           *string
	Location           *string
	LogoPath           *string
}

// UpdateEmployerProfile updates the caller's employer profile. The company
// name may change but never becomes empty.
func (s *ProfileService) UpdateEmployerProfile(userID uint64, input UpdateEmployerProfileInput) (*models.EmployerProfile, error) {
	profile, err := s.GetEmployerProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.CompanyName != nil {
		name := strings.TrimSpace(*input.CompanyName)
		if name == "" {
			return nil, ErrCompanyNameRequired
		}
		profile.CompanyName = name
	}
	if input.CompanyDescription != nil {
		profile.CompanyDescription = *input.CompanyDescription
	}
	if input.CompanyWebsite != nil {
		profile.CompanyWebsite = *input.CompanyWebsite
	}
	if input.CompanySize != nil {
		profile.CompanySize = *input.CompanySize
	}
	if input.Industry != nil {
		profile.Industry = *input.Industry
	}
	if input.Location != nil {
		profile.Location = *input.Location
	}
	if input.LogoPath != nil {
		profile.LogoPath = *input.LogoPath
	}

	if err := s.userRepo.SaveEmployerProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to save employer profile: %w", err)
	}

	return profile, nil
}

// SeekerDashboard bundles what a seeker sees after login.
type SeekerDashboard struct {
	Profile      *models.SeekerProfile
	Applications []models.Application
}

// EmployerDashboard bundles what an employer sees after login.
type EmployerDashboard struct {
	Profile *models.EmployerProfile
	Jobs    []models.Job
}

// GetSeekerDashboard returns the seeker's profile and their applications.
func (s *ProfileService) GetSeekerDashboard(userID uint64) (*SeekerDashboard, error) {
	profile, err := s.GetSeekerProfile(userID)
	if err != nil {
		return nil, err
	}

	applications, err := s.appRepo.ListByApplicant(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	return &SeekerDashboard{Profile: profile, Applications: applications}, nil
}

// GetEmployerDashboard returns the employer's profile and their jobs.
func (s *ProfileService) GetEmployerDashboard(userID uint64) (*EmployerDashboard, error) {
	profile, err := s.GetEmployerProfile(userID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByEmployer(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	return &EmployerDashboard{Profile: profile, Jobs: jobs}, nil
}

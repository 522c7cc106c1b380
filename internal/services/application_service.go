package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/notify"
	"github.com/openhire/job-board-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied for this job")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrInvalidTransition   = errors.New("status transition not permitted")
	ErrNotApplicationOwner = errors.New("only the employer who posted the job can update this application")
	ErrNotApplicationParty = errors.New("only the applicant or the job's employer can delete this application")
)

// ApplicationService is the application engine: it owns the candidacy
// lifecycle, its authorization rules, and the status-change notification
// side effect.
type ApplicationService struct {
	appRepo  repository.ApplicationRepository
	jobRepo  repository.JobRepository
	userRepo repository.UserRepository
	noteRepo repository.NotificationRepository
	notifier notify.Notifier
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(
	appRepo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	notifier notify.Notifier,
) *ApplicationService {
	return &ApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		noteRepo: noteRepo,
		notifier: notifier,
	}
}

// ApplyInput represents input for applying to a job.
type ApplyInput struct {
	JobID       uint64
	CoverLetter string
}

// Apply creates a pending application for the given seeker. The job must
// exist and be active; a seeker can hold at most one application per job.
func (s *ApplicationService) Apply(applicant *models.User, input ApplyInput) (*models.Application, error) {
	if applicant.Role != models.RoleSeeker {
		return nil, ErrNotSeeker
	}

	job, err := s.jobRepo.FindActiveByID(input.JobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to find job: %w", err)
	}

	exists, err := s.appRepo.Exists(job.ID, applicant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: applicant.ID,
		Reference:   uuid.NewString(),
		CoverLetter: input.CoverLetter,
		Status:      models.StatusPending,
		IsActive:    true,
	}

	if err := s.appRepo.Create(application); err != nil {
		// The unique index catches concurrent duplicate applies that
		// slipped past the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return application, nil
}

// TransitionStatus moves an application to a new status. Only the employer
// owning the application's job may transition it. The applicant is notified
// after the write; notification failure never affects the outcome.
func (s *ApplicationService) TransitionStatus(applicationID uint64, requester *models.User, newStatus models.ApplicationStatus) (*models.Application, error) {
	application, err := s.appRepo.FindByID(applicationID, "Job", "Applicant")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}

	if application.Job.EmployerID != requester.ID {
		return nil, ErrNotApplicationOwner
	}

	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	if !models.CanTransition(application.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	oldStatus := application.Status
	application.Status = newStatus

	if err := s.appRepo.Update(application); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	// Post-commit hook: the status write is durable at this point, so
	// delivery problems are logged and swallowed.
	s.notifyStatusChange(application, oldStatus, newStatus)

	return application, nil
}

func (s *ApplicationService) notifyStatusChange(application *models.Application, oldStatus, newStatus models.ApplicationStatus) {
	company := s.companyName(application.Job.EmployerID)

	subject := fmt.Sprintf("Application update: %s", application.Job.Title)
	body := fmt.Sprintf(
		"Your application for %q at %s moved from %s to %s.",
		application.Job.Title, company, oldStatus, newStatus,
	)

	if email := application.Applicant.Email; email != "" {
		if err := s.notifier.Send(email, subject, body); err != nil {
			log.Printf("status notification for application %d failed: %v", application.ID, err)
		}
	}

	note := &models.Notification{
		UserID:  application.ApplicantID,
		Message: body,
	}
	if err := s.noteRepo.Create(note); err != nil {
		log.Printf("in-app notification for application %d failed: %v", application.ID, err)
	}
}

func (s *ApplicationService) companyName(employerID uint64) string {
	profile, err := s.userRepo.FindEmployerProfile(employerID)
	if err != nil {
		return "the employer"
	}
	return profile.CompanyName
}

// DeletedBy identifies which authorized party removed an application, so the
// caller can pick the right post-deletion destination.
type DeletedBy string

const (
	DeletedByApplicant DeletedBy = "applicant"
	DeletedByEmployer  DeletedBy = "employer"
)

// Delete permanently removes an application. The applicant and the job's
// employer are each independently authorized.
func (s *ApplicationService) Delete(applicationID uint64, requester *models.User) (DeletedBy, error) {
	application, err := s.appRepo.FindByID(applicationID, "Job")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrApplicationNotFound
		}
		return "", fmt.Errorf("failed to find application: %w", err)
	}

	isApplicant := application.ApplicantID == requester.ID
	isEmployer := application.Job.EmployerID == requester.ID
	if !isApplicant && !isEmployer {
		return "", ErrNotApplicationParty
	}

	if err := s.appRepo.Delete(applicationID); err != nil {
		return "", fmt.Errorf("failed to delete application: %w", err)
	}

	if isEmployer && !isApplicant {
		return DeletedByEmployer, nil
	}
	return DeletedByApplicant, nil
}

// JobApplications bundles a job's applications with status aggregates.
type JobApplications struct {
	Applications []models.Application
	Counts       repository.StatusCounts
}

// ListForJob returns all applications for a job, newest first, with counts.
// Only the employer owning the job may list them.
func (s *ApplicationService) ListForJob(jobID uint64, requesterID uint64) (*JobApplications, error) {
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

	applications, err := s.appRepo.ListByJob(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	counts, err := s.appRepo.CountByStatus(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	return &JobApplications{Applications: applications, Counts: counts}, nil
}

// ListForApplicant returns a seeker's own applications, newest first.
func (s *ApplicationService) ListForApplicant(applicantID uint64) ([]models.Application, error) {
	applications, err := s.appRepo.ListByApplicant(applicantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return applications, nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/openhire/job-board-api/internal/constants"
	"github.com/openhire/job-board-api/internal/models"
	"github.com/openhire/job-board-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken         = errors.New("username already exists")
	ErrEmailTaken            = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrPasswordTooShort      = errors.New("password too short")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrInvalidRole           = errors.New("role must be seeker or employer")
	ErrCompanyNameRequired   = errors.New("company name is required for employers")
	ErrUserNotFound          = errors.New("user not found")
	ErrFailedToHashPassword  = errors.New("failed to hash password")
	ErrFailedToCreateUser    = errors.New("failed to create user")
	ErrFailedToCreateProfile = errors.New("failed to create role profile")
)

// AuthService handles registration and authentication.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create an account.
// Role is fixed at registration and never changes afterwards.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	Role            models.UserRole
	FirstName       string
	LastName        string
	Phone           string
	CompanyName     string
}

// Register creates an account together with its role profile in one
// transaction, so a user without a matching profile is never observable.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if input.Password != input.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !models.ValidRole(input.Role) {
		return nil, ErrInvalidRole
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
	}

	var seeker *models.SeekerProfile
	var employer *models.EmployerProfile
	switch input.Role {
	case models.RoleSeeker:
		seeker = &models.SeekerProfile{}
	case models.RoleEmployer:
		companyName := strings.TrimSpace(input.CompanyName)
		if companyName == "" {
			return nil, ErrCompanyNameRequired
		}
		employer = &models.EmployerProfile{CompanyName: companyName}
	}

	if err := s.userRepo.CreateWithProfile(user, seeker, employer); err != nil {
		switch {
		case errors.Is(err, repository.ErrCreateUser):
			return nil, ErrFailedToCreateUser
		case errors.Is(err, repository.ErrCreateProfile):
			return nil, ErrFailedToCreateProfile
		default:
			return nil, fmt.Errorf("failed to complete registration: %w", err)
		}
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

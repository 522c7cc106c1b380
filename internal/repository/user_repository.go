package repository

import (
	"errors"
	"fmt"

	"github.com/openhire/job-board-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating the account fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateProfile is returned when creating the role profile fails inside the registration transaction.
	ErrCreateProfile = errors.New("user repository: create role profile failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithProfile creates the account and its role profile atomically, so
// no profile-less user is ever observable.
func (r *GormUserRepository) CreateWithProfile(user *models.User, seeker *models.SeekerProfile, employer *models.EmployerProfile) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		switch {
		case seeker != nil:
			seeker.UserID = user.ID
			if err := tx.Create(seeker).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateProfile, err)
			}
		case employer != nil:
			employer.UserID = user.ID
			if err := tx.Create(employer).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateProfile, err)
			}
		default:
			return fmt.Errorf("%w: no profile supplied", ErrCreateProfile)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// FindSeekerProfile finds the seeker profile owned by a user
func (r *GormUserRepository) FindSeekerProfile(userID uint64) (*models.SeekerProfile, error) {
	var profile models.SeekerProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindEmployerProfile finds the employer profile owned by a user
func (r *GormUserRepository) FindEmployerProfile(userID uint64) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveSeekerProfile persists a seeker profile
func (r *GormUserRepository) SaveSeekerProfile(profile *models.SeekerProfile) error {
	return r.db.Save(profile).Error
}

// SaveEmployerProfile persists an employer profile
func (r *GormUserRepository) SaveEmployerProfile(profile *models.EmployerProfile) error {
	return r.db.Save(profile).Error
}

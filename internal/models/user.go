package models

import (
	"time"
)

type UserRole string

const (
	RoleSeeker   UserRole = "seeker"
	RoleEmployer UserRole = "employer"
)

// ValidRole reports whether the given role is one of the recognized roles.
func ValidRole(role UserRole) bool {
	return role == RoleSeeker || role == RoleEmployer
}

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(150);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(10);not null" json:"role"`
	FirstName    string    `gorm:"type:varchar(150)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(150)" json:"last_name"`
	Phone        string    `gorm:"type:varchar(20)" json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	SeekerProfile   *SeekerProfile   `gorm:"foreignKey:UserID" json:"seeker_profile,omitempty"`
	EmployerProfile *EmployerProfile `gorm:"foreignKey:UserID" json:"employer_profile,omitempty"`
	Jobs            []Job            `gorm:"foreignKey:EmployerID" json:"-"`
	Applications    []Application    `gorm:"foreignKey:ApplicantID" json:"-"`
}

package models

import "time"

// SeekerProfile holds the job-seeker side of a user account. Exactly one
// exists per seeker user, created in the same transaction as the account.
type SeekerProfile struct {
	ID              uint64    `gorm:"primarykey" json:"id"`
	UserID          uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	Skills          string    `gorm:"type:text" json:"skills"`
	ExperienceYears int       `gorm:"default:0" json:"experience_years"`
	Education       string    `gorm:"type:text" json:"education"`
	Bio             string    `gorm:"type:text" json:"bio"`
	Location        string    `gorm:"type:varchar(200)" json:"location"`
	LinkedinURL     string    `gorm:"type:varchar(255)" json:"linkedin_url"`
	PortfolioURL    string    `gorm:"type:varchar(255)" json:"portfolio_url"`
	ResumePath      string    `gorm:"type:varchar(255)" json:"resume_path"`
	PicturePath     string    `gorm:"type:varchar(255)" json:"picture_path"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

// EmployerProfile holds the employer side of a user account. CompanyName is
// the only required field.
type EmployerProfile struct {
	ID                 uint64    `gorm:"primarykey" json:"id"`
	UserID             uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName        string    `gorm:"type:varchar(200);not null" json:"company_name"`
	CompanyDescription string    `gorm:"type:text" json:"company_description"`
	CompanyWebsite     string    `gorm:"type:varchar(255)" json:"company_website"`
	CompanySize        string    `gorm:"type:varchar(50)" json:"company_size"`
	Industry           string    `gorm:"type:varchar(100)" json:"industry"`
	Location           string    `gorm:"type:varchar(200)" json:"location"`
	LogoPath           string    `gorm:"type:varchar(255)" json:"logo_path"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

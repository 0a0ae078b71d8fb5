package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email                string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash         string         `gorm:"not null" json:"-"`
	Name                 string         `gorm:"not null" json:"name"`
	EmailVerified        bool           `gorm:"default:false" json:"email_verified"`
	VerifyToken          string         `gorm:"index" json:"-"`
	ResetToken           string         `gorm:"index" json:"-"`
	ResetExpires         *time.Time     `json:"-"`
	ActiveOrganizationID *uuid.UUID     `gorm:"type:uuid" json:"active_organization_id,omitempty"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Profile     *UserProfile         `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Memberships []OrganizationMember `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// UserResponse is a safe representation without sensitive fields
type UserResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Email                string     `json:"email"`
	Name                 string     `json:"name"`
	EmailVerified        bool       `json:"email_verified"`
	ActiveOrganizationID *uuid.UUID `json:"active_organization_id,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                   u.ID,
		Email:                u.Email,
		Name:                 u.Name,
		EmailVerified:        u.EmailVerified,
		ActiveOrganizationID: u.ActiveOrganizationID,
		CreatedAt:            u.CreatedAt,
	}
}

type UserType string

const (
	UserTypeFounder  UserType = "FOUNDER"
	UserTypeInvestor UserType = "INVESTOR"
)

// UserProfile classifies an identity as founder or investor and tracks
// whether startup onboarding has been completed.
type UserProfile struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	UserType            UserType  `gorm:"type:varchar(20);not null" json:"user_type"`
	OnboardingCompleted bool      `gorm:"default:false" json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

package services

import (
	"errors"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProfileExists   = errors.New("user profile already exists")
	ErrProfileNotFound = errors.New("user profile not found")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Create inserts a profile for the user. At most one profile per user; the
// unique index on user_id backs up this pre-check.
func (s *ProfileService) Create(userID uuid.UUID, userType models.UserType) (*models.UserProfile, error) {
	var existing models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return nil, ErrProfileExists
	}

	profile := &models.UserProfile{
		UserID:   userID,
		UserType: userType,
	}
	if err := s.db.Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByUserID returns the user's profile, or nil without error when none
// exists.
func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Update changes the user's founder/investor classification.
func (s *ProfileService) Update(userID uuid.UUID, userType models.UserType) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	profile.UserType = userType
	if err := s.db.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

package services

import (
	"time"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CoFounderService struct {
	db *gorm.DB
}

func NewCoFounderService(db *gorm.DB) *CoFounderService {
	return &CoFounderService{db: db}
}

// CoFounderInput is one prospective co-founder from the wizard's team step.
type CoFounderInput struct {
	Name             string  `json:"name,omitempty"`
	Email            string  `json:"email"`
	Role             string  `json:"role"`
	EquityPercentage float64 `json:"equity_percentage"`
}

// CreateBatch inserts one PENDING invitation per entry. Inserts are
// sequential; an entry failing mid-batch leaves earlier invitations in place.
func (s *CoFounderService) CreateBatch(startupID, organizationID uuid.UUID, coFounders []CoFounderInput, invitedBy uuid.UUID) ([]models.CoFounderInvitation, error) {
	now := time.Now()
	invitations := make([]models.CoFounderInvitation, 0, len(coFounders))

	for _, coFounder := range coFounders {
		invitation := models.CoFounderInvitation{
			StartupID:        startupID,
			OrganizationID:   organizationID,
			Name:             coFounder.Name,
			Email:            coFounder.Email,
			Role:             coFounder.Role,
			EquityPercentage: coFounder.EquityPercentage,
			InvitationStatus: models.InvitationPending,
			InvitedBy:        invitedBy,
			InvitedAt:        now,
		}
		if err := s.db.Create(&invitation).Error; err != nil {
			return invitations, err
		}
		invitations = append(invitations, invitation)
	}

	return invitations, nil
}

func (s *CoFounderService) GetByStartupID(startupID uuid.UUID) ([]models.CoFounderInvitation, error) {
	var invitations []models.CoFounderInvitation
	if err := s.db.Where("startup_id = ?", startupID).Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

func (s *CoFounderService) GetByOrganizationID(organizationID uuid.UUID) ([]models.CoFounderInvitation, error) {
	var invitations []models.CoFounderInvitation
	if err := s.db.Where("organization_id = ?", organizationID).Find(&invitations).Error; err != nil {
		return nil, err
	}
	return invitations, nil
}

func (s *CoFounderService) GetByID(invitationID uuid.UUID) (*models.CoFounderInvitation, error) {
	var invitation models.CoFounderInvitation
	if err := s.db.Preload("Startup").First(&invitation, "id = ?", invitationID).Error; err != nil {
		return nil, err
	}
	return &invitation, nil
}

// AcceptInvitation marks the invitation ACCEPTED and records who accepted
// and when. A second call, or a call on a declined invitation, overwrites
// the previous outcome and re-stamps responded_at.
func (s *CoFounderService) AcceptInvitation(invitationID, userID uuid.UUID) error {
	now := time.Now()
	return s.db.Model(&models.CoFounderInvitation{}).
		Where("id = ?", invitationID).
		Updates(map[string]interface{}{
			"invitation_status": models.InvitationAccepted,
			"user_id":           userID,
			"responded_at":      now,
		}).Error
}

// DeclineInvitation marks the invitation DECLINED, with the same overwrite
// behavior as AcceptInvitation.
func (s *CoFounderService) DeclineInvitation(invitationID uuid.UUID) error {
	now := time.Now()
	return s.db.Model(&models.CoFounderInvitation{}).
		Where("id = ?", invitationID).
		Updates(map[string]interface{}{
			"invitation_status": models.InvitationDeclined,
			"responded_at":      now,
		}).Error
}

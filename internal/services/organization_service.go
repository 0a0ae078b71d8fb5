package services

import (
	"errors"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDuplicateOrgSlug = errors.New("an organization with this slug already exists")
	ErrNotMember        = errors.New("user is not a member of this organization")
)

// OrganizationService owns tenant membership. Organizations live in the
// same database as everything else; the orchestrator only sees the
// OrganizationProvider slice of this service.
type OrganizationService struct {
	db           *gorm.DB
	emailService *EmailService
}

func NewOrganizationService(db *gorm.DB, emailService *EmailService) *OrganizationService {
	return &OrganizationService{db: db, emailService: emailService}
}

// CreateOrganization creates the tenant and its owner membership.
func (s *OrganizationService) CreateOrganization(name, slug string, createdBy uuid.UUID) (*models.Organization, error) {
	var existing models.Organization
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrDuplicateOrgSlug
	}

	org := &models.Organization{
		Name:      name,
		Slug:      slug,
		CreatedBy: createdBy,
	}
	if err := s.db.Create(org).Error; err != nil {
		return nil, err
	}

	member := &models.OrganizationMember{
		OrganizationID: org.ID,
		UserID:         createdBy,
		Role:           models.MemberRoleOwner,
	}
	if err := s.db.Create(member).Error; err != nil {
		return nil, err
	}

	return org, nil
}

// DeleteOrganization removes the tenant and its memberships. Used by the
// submission orchestrator to compensate when startup creation fails after
// the organization was already created. The delete is unscoped: a
// soft-deleted row would still hold the slug's unique index and block
// every retry of the same name.
func (s *OrganizationService) DeleteOrganization(id uuid.UUID) error {
	if err := s.db.Where("organization_id = ?", id).Delete(&models.OrganizationMember{}).Error; err != nil {
		return err
	}
	return s.db.Unscoped().Delete(&models.Organization{}, "id = ?", id).Error
}

// InviteMember emails an organization invitation to a prospective
// co-founder. The invitation record itself is owned by the co-founder store.
func (s *OrganizationService) InviteMember(organizationID uuid.UUID, invitation models.CoFounderInvitation) error {
	var org models.Organization
	if err := s.db.First(&org, "id = ?", organizationID).Error; err != nil {
		return err
	}

	var inviter models.User
	if err := s.db.First(&inviter, "id = ?", invitation.InvitedBy).Error; err != nil {
		return err
	}

	return s.emailService.SendOrganizationInviteEmail(invitation.Email, org.Name, inviter.Name, invitation.ID)
}

// SetActiveOrganization records which organization the user currently acts
// for. The user must already be a member.
func (s *OrganizationService) SetActiveOrganization(userID, organizationID uuid.UUID) error {
	var member models.OrganizationMember
	if err := s.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotMember
		}
		return err
	}

	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("active_organization_id", organizationID).Error
}

// AddMember inserts a membership if one does not already exist.
func (s *OrganizationService) AddMember(organizationID, userID uuid.UUID, role models.MemberRole) error {
	var existing models.OrganizationMember
	if err := s.db.Where("organization_id = ? AND user_id = ?", organizationID, userID).First(&existing).Error; err == nil {
		return nil
	}

	member := &models.OrganizationMember{
		OrganizationID: organizationID,
		UserID:         userID,
		Role:           role,
	}
	return s.db.Create(member).Error
}

func (s *OrganizationService) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	if err := s.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// HasOrganizations reports whether the user belongs to at least one
// organization.
func (s *OrganizationService) HasOrganizations(userID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.OrganizationMember{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetUserOrganizationIDs returns every organization the user is a member of.
func (s *OrganizationService) GetUserOrganizationIDs(userID uuid.UUID) ([]uuid.UUID, error) {
	var members []models.OrganizationMember
	if err := s.db.Where("user_id = ?", userID).Find(&members).Error; err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.OrganizationID)
	}
	return ids, nil
}

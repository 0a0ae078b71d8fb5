package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "PENDING"
	InvitationAccepted InvitationStatus = "ACCEPTED"
	InvitationDeclined InvitationStatus = "DECLINED"
)

// CoFounderInvitation links a prospective co-founder to a startup. The
// organization id is a denormalized copy of the startup's organization so
// invitations can be looked up without loading the startup first.
type CoFounderInvitation struct {
	ID               uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	StartupID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"startup_id"`
	OrganizationID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"organization_id"`
	Email            string           `gorm:"not null;index" json:"email"`
	Name             string           `json:"name,omitempty"`
	Role             string           `gorm:"not null" json:"role"`
	EquityPercentage float64          `json:"equity_percentage"`
	InvitationStatus InvitationStatus `gorm:"type:varchar(20);default:'PENDING'" json:"invitation_status"`
	InvitedBy        uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by"`
	UserID           *uuid.UUID       `gorm:"type:uuid" json:"user_id,omitempty"`
	InvitedAt        time.Time        `gorm:"not null" json:"invited_at"`
	RespondedAt      *time.Time       `json:"responded_at,omitempty"`

	// Relations
	Startup *Startup `gorm:"foreignKey:StartupID" json:"startup,omitempty"`
}

func (i *CoFounderInvitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.InvitedAt.IsZero() {
		i.InvitedAt = time.Now()
	}
	return nil
}

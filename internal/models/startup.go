package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StartupStage string

const (
	StageIdea     StartupStage = "IDEA"
	StageMVP      StartupStage = "MVP"
	StageLaunched StartupStage = "LAUNCHED"
	StageGrowth   StartupStage = "GROWTH"
	StageScaling  StartupStage = "SCALING"
)

type FundingStage string

const (
	FundingPreSeed      FundingStage = "PRE_SEED"
	FundingSeed         FundingStage = "SEED"
	FundingSeriesA      FundingStage = "SERIES_A"
	FundingSeriesB      FundingStage = "SERIES_B"
	FundingSeriesCPlus  FundingStage = "SERIES_C_PLUS"
	FundingBootstrapped FundingStage = "BOOTSTRAPPED"
)

type AppliedBefore string

const (
	AppliedFirstTime     AppliedBefore = "first_time"
	AppliedSameIdea      AppliedBefore = "same_idea"
	AppliedDifferentIdea AppliedBefore = "different_idea"
)

// Startup is a founder's company profile. Each startup belongs to exactly
// one organization and is reachable by a URL-safe slug derived from its name.
type Startup struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"organization_id"`
	Name           string    `gorm:"not null" json:"name"`
	Slug           string    `gorm:"uniqueIndex;not null" json:"slug"`

	ShortDescription string `gorm:"size:200;not null" json:"short_description"`
	Description      string `gorm:"type:text;not null" json:"description"`
	Website          string `json:"website,omitempty"`
	DemoVideo        string `json:"demo_video,omitempty"`
	Industry         string `json:"industry"`
	Category         string `json:"category"`

	Stage               StartupStage `gorm:"type:varchar(20);default:'IDEA'" json:"stage"`
	FoundedDate         string       `json:"founded_date,omitempty"`
	Location            string       `json:"location,omitempty"`
	FutureLocation      string       `json:"future_location,omitempty"`
	LocationExplanation string       `gorm:"type:text" json:"location_explanation,omitempty"`

	WhyThisIdea  string `gorm:"type:text" json:"why_this_idea"`
	CustomerNeed string `gorm:"type:text" json:"customer_need"`
	TargetMarket string `gorm:"type:text" json:"target_market,omitempty"`
	Competitors  string `gorm:"type:text" json:"competitors"`
	Monetization string `gorm:"type:text" json:"monetization"`

	HowFarAlong     string `gorm:"type:text" json:"how_far_along"`
	WorkingTime     string `gorm:"type:text" json:"working_time"`
	TechStack       string `gorm:"type:text" json:"tech_stack"`
	Traction        string `gorm:"type:text" json:"traction,omitempty"`
	PeopleUsing     bool   `gorm:"default:false" json:"people_using"`
	VersionTimeline string `gorm:"type:text" json:"version_timeline,omitempty"`
	HasRevenue      bool   `gorm:"default:false" json:"has_revenue"`

	AppliedBefore            AppliedBefore `gorm:"type:varchar(20);default:'first_time'" json:"applied_before"`
	PreviousApplicationNotes string        `gorm:"type:text" json:"previous_application_notes,omitempty"`
	IncubatorInfo            string        `gorm:"type:text" json:"incubator_info,omitempty"`

	HasLegalEntity       bool          `gorm:"default:false" json:"has_legal_entity"`
	LegalEntities        string        `gorm:"type:text" json:"legal_entities,omitempty"`
	EquityBreakdown      string        `gorm:"type:text" json:"equity_breakdown,omitempty"`
	InvestmentTaken      bool          `gorm:"default:false" json:"investment_taken"`
	CurrentlyFundraising bool          `gorm:"default:false" json:"currently_fundraising"`
	FundingStage         *FundingStage `gorm:"type:varchar(20)" json:"funding_stage,omitempty"`
	TeamSize             int           `gorm:"default:1" json:"team_size"`

	CreatedBy uuid.UUID      `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	CoFounders []CoFounderInvitation `gorm:"foreignKey:StartupID" json:"co_founders,omitempty"`
}

func (s *Startup) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// StartupSummary is the limited card shown in listings and previews
type StartupSummary struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Slug                 string    `json:"slug"`
	ShortDescription     string    `json:"short_description"`
	Category             string    `json:"category"`
	PeopleUsing          bool      `json:"people_using"`
	HasRevenue           bool      `json:"has_revenue"`
	CurrentlyFundraising bool      `json:"currently_fundraising"`
	CreatedAt            time.Time `json:"created_at"`
}

func (s *Startup) ToSummary() StartupSummary {
	return StartupSummary{
		ID:                   s.ID,
		Name:                 s.Name,
		Slug:                 s.Slug,
		ShortDescription:     s.ShortDescription,
		Category:             s.Category,
		PeopleUsing:          s.PeopleUsing,
		HasRevenue:           s.HasRevenue,
		CurrentlyFundraising: s.CurrentlyFundraising,
		CreatedAt:            s.CreatedAt,
	}
}

package services

import (
	"errors"
	"time"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrDuplicateSlug = errors.New("a startup with this name already exists")

type StartupService struct {
	db *gorm.DB
}

func NewStartupService(db *gorm.DB) *StartupService {
	return &StartupService{db: db}
}

// CreateStartupInput carries every field collected by the onboarding wizard.
type CreateStartupInput struct {
	OrganizationID uuid.UUID
	CreatedBy      uuid.UUID

	Name             string
	ShortDescription string
	Description      string
	Website          string
	DemoVideo        string
	Category         string

	FutureLocation      string
	LocationExplanation string
	FoundedDate         string
	Location            string

	WhyThisIdea  string
	CustomerNeed string
	TargetMarket string
	Competitors  string
	Monetization string

	HowFarAlong     string
	WorkingTime     string
	TechStack       string
	Traction        string
	PeopleUsing     bool
	VersionTimeline string
	HasRevenue      bool

	AppliedBefore            models.AppliedBefore
	PreviousApplicationNotes string
	IncubatorInfo            string

	HasLegalEntity       bool
	LegalEntities        string
	EquityBreakdown      string
	InvestmentTaken      bool
	CurrentlyFundraising bool
	FundingStage         *models.FundingStage
	TeamSize             int
}

// Create inserts a new startup. The slug is derived from the name; a name
// that slugifies to an existing slug is rejected. On success the creating
// user's profile is marked onboarding-completed when one exists.
func (s *StartupService) Create(input CreateStartupInput) (*models.Startup, error) {
	slug := Slugify(input.Name)

	var existing models.Startup
	if err := s.db.Where("slug = ?", slug).First(&existing).Error; err == nil {
		return nil, ErrDuplicateSlug
	}

	stage := models.StageIdea
	appliedBefore := input.AppliedBefore
	if appliedBefore == "" {
		appliedBefore = models.AppliedFirstTime
	}
	teamSize := input.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}

	startup := &models.Startup{
		OrganizationID:           input.OrganizationID,
		Name:                     input.Name,
		Slug:                     slug,
		ShortDescription:         input.ShortDescription,
		Description:              input.Description,
		Website:                  input.Website,
		DemoVideo:                input.DemoVideo,
		Industry:                 input.Category,
		Category:                 input.Category,
		Stage:                    stage,
		FoundedDate:              input.FoundedDate,
		Location:                 input.Location,
		FutureLocation:           input.FutureLocation,
		LocationExplanation:      input.LocationExplanation,
		WhyThisIdea:              input.WhyThisIdea,
		CustomerNeed:             input.CustomerNeed,
		TargetMarket:             input.TargetMarket,
		Competitors:              input.Competitors,
		Monetization:             input.Monetization,
		HowFarAlong:              input.HowFarAlong,
		WorkingTime:              input.WorkingTime,
		TechStack:                input.TechStack,
		Traction:                 input.Traction,
		PeopleUsing:              input.PeopleUsing,
		VersionTimeline:          input.VersionTimeline,
		HasRevenue:               input.HasRevenue,
		AppliedBefore:            appliedBefore,
		PreviousApplicationNotes: input.PreviousApplicationNotes,
		IncubatorInfo:            input.IncubatorInfo,
		HasLegalEntity:           input.HasLegalEntity,
		LegalEntities:            input.LegalEntities,
		EquityBreakdown:          input.EquityBreakdown,
		InvestmentTaken:          input.InvestmentTaken,
		CurrentlyFundraising:     input.CurrentlyFundraising,
		FundingStage:             input.FundingStage,
		TeamSize:                 teamSize,
		CreatedBy:                input.CreatedBy,
	}

	if err := s.db.Create(startup).Error; err != nil {
		return nil, err
	}

	// Creating a startup completes the founder's onboarding. A missing
	// profile is not an error here.
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", input.CreatedBy).First(&profile).Error; err == nil {
		s.db.Model(&profile).Update("onboarding_completed", true)
	}

	return startup, nil
}

// GetByOrganizationID returns the organization's startup, or nil without
// error when the organization has none.
func (s *StartupService) GetByOrganizationID(organizationID uuid.UUID) (*models.Startup, error) {
	var startup models.Startup
	if err := s.db.Where("organization_id = ?", organizationID).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &startup, nil
}

// GetByOrganizationIDs fetches each organization's startup independently and
// drops the misses. Result order is not tied to the input order.
func (s *StartupService) GetByOrganizationIDs(organizationIDs []uuid.UUID) ([]models.Startup, error) {
	startups := make([]models.Startup, 0, len(organizationIDs))
	for _, orgID := range organizationIDs {
		startup, err := s.GetByOrganizationID(orgID)
		if err != nil {
			return nil, err
		}
		if startup != nil {
			startups = append(startups, *startup)
		}
	}
	return startups, nil
}

func (s *StartupService) GetBySlug(slug string) (*models.Startup, error) {
	var startup models.Startup
	if err := s.db.Where("slug = ?", slug).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &startup, nil
}

func (s *StartupService) GetByID(id uuid.UUID) (*models.Startup, error) {
	var startup models.Startup
	if err := s.db.First(&startup, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &startup, nil
}

// UpdateStartupInput carries the patchable subset of startup fields. Nil
// pointers leave the stored value untouched.
type UpdateStartupInput struct {
	Name             *string
	ShortDescription *string
	Description      *string
	Website          *string
	Industry         *string
	Stage            *models.StartupStage
	FoundedDate      *string
	Location         *string
	WhyThisIdea      *string
	TargetMarket     *string
	Traction         *string
	FundingStage     *models.FundingStage
	TeamSize         *int
}

// Update applies a partial update and always stamps updated_at. There is no
// optimistic concurrency check; the last writer wins.
func (s *StartupService) Update(id uuid.UUID, input UpdateStartupInput) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.ShortDescription != nil {
		updates["short_description"] = *input.ShortDescription
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Website != nil {
		updates["website"] = *input.Website
	}
	if input.Industry != nil {
		updates["industry"] = *input.Industry
	}
	if input.Stage != nil {
		updates["stage"] = *input.Stage
	}
	if input.FoundedDate != nil {
		updates["founded_date"] = *input.FoundedDate
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.WhyThisIdea != nil {
		updates["why_this_idea"] = *input.WhyThisIdea
	}
	if input.TargetMarket != nil {
		updates["target_market"] = *input.TargetMarket
	}
	if input.Traction != nil {
		updates["traction"] = *input.Traction
	}
	if input.FundingStage != nil {
		updates["funding_stage"] = *input.FundingStage
	}
	if input.TeamSize != nil {
		updates["team_size"] = *input.TeamSize
	}

	return s.db.Model(&models.Startup{}).Where("id = ?", id).Updates(updates).Error
}

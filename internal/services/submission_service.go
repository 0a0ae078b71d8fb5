package services

import (
	"errors"
	"log"

	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
)

var (
	ErrNotAuthenticated     = errors.New("you must be logged in to create a startup")
	ErrOrganizationCreation = errors.New("failed to create organization")
	ErrSubmissionFailed     = errors.New("failed to complete onboarding, please try again")
)

// ValidationError carries per-field messages from the final full-form
// validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "application has invalid fields"
}

// OrganizationProvider is the slice of the organization service the
// submission sequence depends on.
type OrganizationProvider interface {
	CreateOrganization(name, slug string, createdBy uuid.UUID) (*models.Organization, error)
	DeleteOrganization(id uuid.UUID) error
	InviteMember(organizationID uuid.UUID, invitation models.CoFounderInvitation) error
	SetActiveOrganization(userID, organizationID uuid.UUID) error
}

// SubmissionService runs the final onboarding sequence: organization
// creation, startup creation, co-founder invitations, activation.
type SubmissionService struct {
	startups   *StartupService
	coFounders *CoFounderService
	orgs       OrganizationProvider
	onboarding *OnboardingService
}

func NewSubmissionService(startups *StartupService, coFounders *CoFounderService, orgs OrganizationProvider, onboarding *OnboardingService) *SubmissionService {
	return &SubmissionService{
		startups:   startups,
		coFounders: coFounders,
		orgs:       orgs,
		onboarding: onboarding,
	}
}

type SubmissionResult struct {
	StartupID      uuid.UUID `json:"startup_id"`
	Slug           string    `json:"slug"`
	OrganizationID uuid.UUID `json:"organization_id"`
	RedirectTo     string    `json:"redirect_to"`
}

// Submit executes the submission sequence in strict order. If the startup
// cannot be created after the organization already was, the organization is
// deleted again so a retry starts clean.
func (s *SubmissionService) Submit(userID uuid.UUID, values FormValues) (*SubmissionResult, error) {
	if userID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	if fieldErrs := ValidateAll(values); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	slug := Slugify(values.CompanyName)
	org, err := s.orgs.CreateOrganization(values.CompanyName, slug, userID)
	if err != nil || org == nil {
		// The organization slug is derived from the startup name, so a
		// collision here is the same duplicate-name condition as in the
		// startup store.
		if errors.Is(err, ErrDuplicateOrgSlug) {
			return nil, ErrDuplicateSlug
		}
		return nil, ErrOrganizationCreation
	}

	startup, err := s.startups.Create(startupInputFromForm(values, org.ID, userID))
	if err != nil {
		if compErr := s.orgs.DeleteOrganization(org.ID); compErr != nil {
			log.Printf("failed to clean up organization %s after startup creation error: %v", org.ID, compErr)
		}
		if errors.Is(err, ErrDuplicateSlug) {
			return nil, err
		}
		return nil, ErrSubmissionFailed
	}

	invitations, err := s.coFounders.CreateBatch(startup.ID, org.ID, values.CoFounders, userID)
	if err != nil {
		// Earlier invitations stay committed; the startup itself exists.
		return nil, ErrSubmissionFailed
	}

	for _, invitation := range invitations {
		if err := s.orgs.InviteMember(org.ID, invitation); err != nil {
			// Some co-founders end up invited and some not; none of it is
			// retried or rolled back.
			log.Printf("failed to invite %s to organization %s: %v", invitation.Email, org.ID, err)
		}
	}

	if err := s.orgs.SetActiveOrganization(userID, org.ID); err != nil {
		return nil, ErrSubmissionFailed
	}

	if err := s.onboarding.ClearDraft(userID); err != nil {
		log.Printf("failed to clear onboarding draft for %s: %v", userID, err)
	}

	return &SubmissionResult{
		StartupID:      startup.ID,
		Slug:           startup.Slug,
		OrganizationID: org.ID,
		RedirectTo:     "/dashboard",
	}, nil
}

func startupInputFromForm(v FormValues, organizationID, userID uuid.UUID) CreateStartupInput {
	return CreateStartupInput{
		OrganizationID:           organizationID,
		CreatedBy:                userID,
		Name:                     v.CompanyName,
		ShortDescription:         v.ShortDescription,
		Description:              v.WhatMaking,
		Website:                  v.CompanyURL,
		DemoVideo:                v.DemoVideo,
		Category:                 v.Category,
		FutureLocation:           v.FutureLocation,
		LocationExplanation:      v.LocationExplanation,
		WhyThisIdea:              v.WhyThisIdea,
		CustomerNeed:             v.CustomerNeed,
		Competitors:              v.Competitors,
		Monetization:             v.Monetization,
		HowFarAlong:              v.HowFarAlong,
		WorkingTime:              v.WorkingTime,
		TechStack:                v.TechStack,
		PeopleUsing:              v.PeopleUsing == "yes",
		VersionTimeline:          v.VersionTimeline,
		HasRevenue:               v.HasRevenue == "yes",
		AppliedBefore:            models.AppliedBefore(v.AppliedBefore),
		PreviousApplicationNotes: v.PreviousApplicationNotes,
		IncubatorInfo:            v.IncubatorInfo,
		HasLegalEntity:           v.HasLegalEntity == "yes",
		LegalEntities:            v.LegalEntities,
		EquityBreakdown:          v.EquityBreakdown,
		InvestmentTaken:          v.InvestmentTaken == "yes",
		CurrentlyFundraising:     v.CurrentlyFundraising == "yes",
		TeamSize:                 1 + len(v.CoFounders),
	}
}

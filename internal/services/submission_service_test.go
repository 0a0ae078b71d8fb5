package services

import (
	"errors"
	"testing"

	"github.com/catalys/platform/internal/config"
	"github.com/catalys/platform/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubOrgProvider records the calls the submission sequence makes so tests
// can assert on ordering and compensation without a real membership layer.
type stubOrgProvider struct {
	created      []*models.Organization
	deleted      []uuid.UUID
	invited      []models.CoFounderInvitation
	activated    map[uuid.UUID]uuid.UUID
	createErr    error
	inviteErr    error
	setActiveErr error
}

func newStubOrgProvider() *stubOrgProvider {
	return &stubOrgProvider{activated: map[uuid.UUID]uuid.UUID{}}
}

func (s *stubOrgProvider) CreateOrganization(name, slug string, createdBy uuid.UUID) (*models.Organization, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	org := &models.Organization{ID: uuid.New(), Name: name, Slug: slug, CreatedBy: createdBy}
	s.created = append(s.created, org)
	return org, nil
}

func (s *stubOrgProvider) DeleteOrganization(id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubOrgProvider) InviteMember(organizationID uuid.UUID, invitation models.CoFounderInvitation) error {
	if s.inviteErr != nil {
		return s.inviteErr
	}
	s.invited = append(s.invited, invitation)
	return nil
}

func (s *stubOrgProvider) SetActiveOrganization(userID, organizationID uuid.UUID) error {
	if s.setActiveErr != nil {
		return s.setActiveErr
	}
	s.activated[userID] = organizationID
	return nil
}

func newSubmissionFixture(t *testing.T) (*SubmissionService, *stubOrgProvider, *gorm.DB) {
	db := newTestDB(t)
	orgs := newStubOrgProvider()
	svc := NewSubmissionService(
		NewStartupService(db),
		NewCoFounderService(db),
		orgs,
		NewOnboardingService(db),
	)
	return svc, orgs, db
}

func TestSubmitRequiresAuthentication(t *testing.T) {
	svc, orgs, _ := newSubmissionFixture(t)

	_, err := svc.Submit(uuid.Nil, validFormValues())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, orgs.created, "nothing runs before the auth check")
}

func TestSubmitRejectsInvalidForm(t *testing.T) {
	svc, orgs, _ := newSubmissionFixture(t)

	values := validFormValues()
	values.CompanyName = ""
	values.Monetization = ""

	_, err := svc.Submit(uuid.New(), values)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "company_name")
	assert.Contains(t, validationErr.Fields, "monetization")
	assert.Empty(t, orgs.created)
}

func TestSubmitHappyPath(t *testing.T) {
	svc, orgs, db := newSubmissionFixture(t)
	userID := uuid.New()

	onboarding := NewOnboardingService(db)
	values := validFormValues()
	values.CoFounders = []CoFounderInput{
		{Name: "Ada", Email: "ada@example.com", Role: "CTO", EquityPercentage: 30},
		{Name: "Grace", Email: "grace@example.com", Role: "COO", EquityPercentage: 20},
	}
	wizard := NewWizard()
	wizard.Values = values
	require.NoError(t, onboarding.SaveWizard(userID, wizard))

	result, err := svc.Submit(userID, values)
	require.NoError(t, err)

	require.Len(t, orgs.created, 1)
	org := orgs.created[0]
	assert.Equal(t, "Acme Inc", org.Name)
	assert.Equal(t, "acme-inc", org.Slug)

	assert.Equal(t, "acme-inc", result.Slug)
	assert.Equal(t, org.ID, result.OrganizationID)
	assert.Equal(t, "/dashboard", result.RedirectTo)

	var startup models.Startup
	require.NoError(t, db.Where("slug = ?", "acme-inc").First(&startup).Error)
	assert.Equal(t, org.ID, startup.OrganizationID)
	assert.Equal(t, 3, startup.TeamSize, "founder plus two co-founders")

	var invitations []models.CoFounderInvitation
	require.NoError(t, db.Where("startup_id = ?", startup.ID).Find(&invitations).Error)
	assert.Len(t, invitations, 2)
	for _, inv := range invitations {
		assert.Equal(t, models.InvitationPending, inv.InvitationStatus)
	}
	assert.Len(t, orgs.invited, 2)

	assert.Equal(t, org.ID, orgs.activated[userID])

	var draftCount int64
	db.Model(&models.OnboardingDraft{}).Where("user_id = ?", userID).Count(&draftCount)
	assert.Equal(t, int64(0), draftCount, "draft cleared after submission")
}

func TestSubmitOrganizationCreationFailure(t *testing.T) {
	svc, orgs, db := newSubmissionFixture(t)
	orgs.createErr = errors.New("upstream unavailable")

	_, err := svc.Submit(uuid.New(), validFormValues())
	assert.ErrorIs(t, err, ErrOrganizationCreation)

	var count int64
	db.Model(&models.Startup{}).Count(&count)
	assert.Equal(t, int64(0), count, "no startup without an organization")
}

func TestSubmitDuplicateNameCompensates(t *testing.T) {
	svc, orgs, _ := newSubmissionFixture(t)

	_, err := svc.Submit(uuid.New(), validFormValues())
	require.NoError(t, err)

	// A second founder picks a name that slugifies identically.
	values := validFormValues()
	values.CompanyName = "ACME, Inc!"
	_, err = svc.Submit(uuid.New(), values)
	assert.ErrorIs(t, err, ErrDuplicateSlug)

	// The organization created for the failed attempt is deleted again.
	require.Len(t, orgs.created, 2)
	require.Len(t, orgs.deleted, 1)
	assert.Equal(t, orgs.created[1].ID, orgs.deleted[0])
}

func TestSubmitInviteFailureDoesNotAbort(t *testing.T) {
	svc, orgs, _ := newSubmissionFixture(t)
	orgs.inviteErr = errors.New("smtp down")
	userID := uuid.New()

	values := validFormValues()
	values.CoFounders = []CoFounderInput{
		{Name: "Ada", Email: "ada@example.com", Role: "CTO", EquityPercentage: 30},
	}

	result, err := svc.Submit(userID, values)
	require.NoError(t, err, "invitation delivery errors are logged, not fatal")
	assert.Equal(t, "/dashboard", result.RedirectTo)
	assert.Equal(t, orgs.created[0].ID, orgs.activated[userID])
}

func TestSubmitSetActiveFailure(t *testing.T) {
	svc, orgs, _ := newSubmissionFixture(t)
	orgs.setActiveErr = errors.New("write refused")

	_, err := svc.Submit(uuid.New(), validFormValues())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
}

// newWiredSubmissionService builds the submission service against the real
// OrganizationService, as routes.go does.
func newWiredSubmissionService(t *testing.T) (*SubmissionService, *gorm.DB) {
	db := newTestDB(t)
	email := NewEmailService(&config.Config{AppName: "Catalys", AppURL: "http://localhost:3000"})
	orgs := NewOrganizationService(db, email)
	svc := NewSubmissionService(
		NewStartupService(db),
		NewCoFounderService(db),
		orgs,
		NewOnboardingService(db),
	)
	return svc, db
}

func TestSubmitDuplicateNameWithOrganizationService(t *testing.T) {
	svc, _ := newWiredSubmissionService(t)

	_, err := svc.Submit(uuid.New(), validFormValues())
	require.NoError(t, err)

	// The second founder's collision surfaces at the organization layer,
	// but the caller still gets the duplicate-name error.
	values := validFormValues()
	values.CompanyName = "ACME, Inc!"
	_, err = svc.Submit(uuid.New(), values)
	assert.ErrorIs(t, err, ErrDuplicateSlug)
}

func TestSubmitRetryAfterCompensation(t *testing.T) {
	svc, db := newWiredSubmissionService(t)

	// A startup under another organization already holds the slug, so the
	// first submission fails after its organization was created.
	blocker, err := NewStartupService(db).Create(validStartupInput("Acme Inc"))
	require.NoError(t, err)

	userID := uuid.New()
	_, err = svc.Submit(userID, validFormValues())
	require.ErrorIs(t, err, ErrDuplicateSlug)

	require.NoError(t, db.Unscoped().Delete(&models.Startup{}, "id = ?", blocker.ID).Error)

	// The compensated organization must not block the retry once the name
	// frees up.
	result, err := svc.Submit(userID, validFormValues())
	require.NoError(t, err)
	assert.Equal(t, "acme-inc", result.Slug)
}
